package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound signals that the requested note does not exist.
var ErrNotFound = errors.New("note not found")

// Note is a single stored note.
type Note struct {
	// ID is the note's primary key.
	ID uuid.UUID `json:"id"`
	// Title is the short note heading; required on creation.
	Title string `json:"title"`
	// Body is the free-form note content.
	Body string `json:"body"`
	// CreatedAt is set once when the note is first stored.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt tracks the most recent modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteStore persists notes.
type NoteStore interface {
	CreateNote(ctx context.Context, note Note) error
	GetNote(ctx context.Context, id uuid.UUID) (Note, error)
	ListNotes(ctx context.Context) ([]Note, error)
	UpdateNote(ctx context.Context, note Note) error
	DeleteNote(ctx context.Context, id uuid.UUID) error
}
