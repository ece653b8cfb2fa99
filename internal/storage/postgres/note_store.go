// Package postgres provides Postgres-backed persistence implementations.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mountkit/mountkit/internal/store"
)

// DB is the subset of pgxpool.Pool the store uses. pgxmock satisfies it in
// tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// NoteStore implements store.NoteStore on Postgres. Expected schema:
//
//	CREATE TABLE notes (
//	    id UUID PRIMARY KEY,
//	    title TEXT NOT NULL,
//	    body TEXT NOT NULL DEFAULT '',
//	    created_at TIMESTAMPTZ NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL
//	);
type NoteStore struct {
	db DB
}

// NewNoteStore connects a pool for the given DSN and pings it to verify the
// connection is usable.
func NewNoteStore(ctx context.Context, dsn string) (*NoteStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &NoteStore{db: pool}, nil
}

// NewNoteStoreWithDB wraps an existing connection, used by tests.
func NewNoteStoreWithDB(db DB) *NoteStore {
	return &NoteStore{db: db}
}

// Close releases the underlying connection pool.
func (s *NoteStore) Close() {
	s.db.Close()
}

// CreateNote inserts a new note row.
func (s *NoteStore) CreateNote(ctx context.Context, note store.Note) error {
	query := `
		INSERT INTO notes (id, title, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.Exec(ctx, query, note.ID, note.Title, note.Body, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// GetNote fetches a single note by id.
func (s *NoteStore) GetNote(ctx context.Context, id uuid.UUID) (store.Note, error) {
	query := `
		SELECT id, title, body, created_at, updated_at
		FROM notes
		WHERE id = $1
	`
	var note store.Note
	err := s.db.QueryRow(ctx, query, id).Scan(
		&note.ID,
		&note.Title,
		&note.Body,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return store.Note{}, store.ErrNotFound
	}
	if err != nil {
		return store.Note{}, fmt.Errorf("select note: %w", err)
	}
	return note, nil
}

// ListNotes returns all notes ordered by creation time.
func (s *NoteStore) ListNotes(ctx context.Context) ([]store.Note, error) {
	query := `
		SELECT id, title, body, created_at, updated_at
		FROM notes
		ORDER BY created_at, id
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}
	defer rows.Close()

	var notes []store.Note
	for rows.Next() {
		var note store.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Body, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}

// UpdateNote replaces the title, body, and update time of an existing note.
func (s *NoteStore) UpdateNote(ctx context.Context, note store.Note) error {
	query := `
		UPDATE notes
		SET title = $1, body = $2, updated_at = $3
		WHERE id = $4
	`
	tag, err := s.db.Exec(ctx, query, note.Title, note.Body, note.UpdatedAt, note.ID)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteNote removes a note by id.
func (s *NoteStore) DeleteNote(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM notes WHERE id = $1`
	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
