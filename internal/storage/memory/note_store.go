// Package memory provides in-memory persistence implementations for
// development and testing.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mountkit/mountkit/internal/store"
)

// NoteStore implements store.NoteStore with a mutex-guarded map.
type NoteStore struct {
	mu    sync.RWMutex
	notes map[uuid.UUID]store.Note
}

// NewNoteStore constructs an empty NoteStore.
func NewNoteStore() *NoteStore {
	return &NoteStore{
		notes: make(map[uuid.UUID]store.Note),
	}
}

// CreateNote stores a new note.
func (s *NoteStore) CreateNote(_ context.Context, note store.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[note.ID] = note
	return nil
}

// GetNote returns the note with the given id.
func (s *NoteStore) GetNote(_ context.Context, id uuid.UUID) (store.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	note, ok := s.notes[id]
	if !ok {
		return store.Note{}, store.ErrNotFound
	}
	return note, nil
}

// ListNotes returns all notes ordered by creation time.
func (s *NoteStore) ListNotes(_ context.Context) ([]store.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]store.Note, 0, len(s.notes))
	for _, note := range s.notes {
		out = append(out, note)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateNote replaces the stored note's title, body, and update time.
func (s *NoteStore) UpdateNote(_ context.Context, note store.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.notes[note.ID]
	if !ok {
		return store.ErrNotFound
	}
	existing.Title = note.Title
	existing.Body = note.Body
	existing.UpdatedAt = note.UpdatedAt
	s.notes[note.ID] = existing
	return nil
}

// DeleteNote removes the note with the given id.
func (s *NoteStore) DeleteNote(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notes[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.notes, id)
	return nil
}
