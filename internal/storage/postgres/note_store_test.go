package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/mountkit/mountkit/internal/store"
)

func sampleNote() store.Note {
	now := time.Unix(1700000000, 0).UTC()
	return store.Note{
		ID:        uuid.MustParse("5f6a1f7e-7a61-4a3f-9c5e-2b7d2f1c9a01"),
		Title:     "groceries",
		Body:      "milk, eggs",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateNoteInsertsRow(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := NewNoteStoreWithDB(mock)
	note := sampleNote()

	mock.ExpectExec("INSERT INTO notes").
		WithArgs(note.ID, note.Title, note.Body, note.CreatedAt, note.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, s.CreateNote(context.Background(), note))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNoteScansRow(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := NewNoteStoreWithDB(mock)
	note := sampleNote()

	rows := pgxmock.NewRows([]string{"id", "title", "body", "created_at", "updated_at"}).
		AddRow(note.ID, note.Title, note.Body, note.CreatedAt, note.UpdatedAt)
	mock.ExpectQuery("SELECT id, title, body, created_at, updated_at").
		WithArgs(note.ID).
		WillReturnRows(rows)

	got, err := s.GetNote(context.Background(), note.ID)
	require.NoError(t, err)
	require.Equal(t, note, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNoteMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := NewNoteStoreWithDB(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT id, title, body, created_at, updated_at").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err = s.GetNote(context.Background(), id)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListNotesScansAllRows(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := NewNoteStoreWithDB(mock)
	note := sampleNote()
	other := note
	other.ID = uuid.MustParse("9d1b7c3a-1e5f-4b2d-8a0c-4f6e8d2b7c30")
	other.Title = "errands"

	rows := pgxmock.NewRows([]string{"id", "title", "body", "created_at", "updated_at"}).
		AddRow(note.ID, note.Title, note.Body, note.CreatedAt, note.UpdatedAt).
		AddRow(other.ID, other.Title, other.Body, other.CreatedAt, other.UpdatedAt)
	mock.ExpectQuery("SELECT id, title, body, created_at, updated_at").
		WillReturnRows(rows)

	notes, err := s.ListNotes(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 2)
	require.Equal(t, "groceries", notes[0].Title)
	require.Equal(t, "errands", notes[1].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNoteMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := NewNoteStoreWithDB(mock)
	note := sampleNote()

	mock.ExpectExec("UPDATE notes").
		WithArgs(note.Title, note.Body, note.UpdatedAt, note.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.ErrorIs(t, s.UpdateNote(context.Background(), note), store.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNoteRemovesRow(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := NewNoteStoreWithDB(mock)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, s.DeleteNote(context.Background(), id))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNoteQueryFailureWraps(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := NewNoteStoreWithDB(mock)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs(id).
		WillReturnError(errors.New("connection reset"))

	err = s.DeleteNote(context.Background(), id)
	require.Error(t, err)
	require.Contains(t, err.Error(), "delete note")
	require.NoError(t, mock.ExpectationsWereMet())
}
