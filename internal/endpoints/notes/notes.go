// Package notes implements the notes CRUD endpoint unit.
package notes

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mountkit/mountkit/internal/respond"
	"github.com/mountkit/mountkit/internal/store"
)

// Endpoint serves the /notes routes backed by a store.NoteStore.
type Endpoint struct {
	store  store.NoteStore
	logger *zap.Logger
}

// New constructs the notes endpoint unit. The store is a required
// dependency: without one the endpoint cannot be resolved.
func New(st store.NoteStore, logger *zap.Logger) (*Endpoint, error) {
	if st == nil {
		return nil, errors.New("note store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Endpoint{store: st, logger: logger}, nil
}

// Routes attaches the CRUD routes.
func (e *Endpoint) Routes(r chi.Router) {
	r.Route("/notes", func(r chi.Router) {
		r.Post("/", e.createNote)
		r.Get("/", e.listNotes)
		r.Route("/{note_id}", func(r chi.Router) {
			r.Get("/", e.getNote)
			r.Put("/", e.updateNote)
			r.Delete("/", e.deleteNote)
		})
	})
}

type noteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (e *Endpoint) createNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Title == "" {
		respond.Error(w, http.StatusBadRequest, "title required")
		return
	}
	now := time.Now().UTC()
	note := store.Note{
		ID:        uuid.New(),
		Title:     req.Title,
		Body:      req.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := e.store.CreateNote(r.Context(), note); err != nil {
		e.logger.Error("create note failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to create note")
		return
	}
	respond.JSON(w, http.StatusCreated, note)
}

func (e *Endpoint) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := e.store.ListNotes(r.Context())
	if err != nil {
		e.logger.Error("list notes failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to list notes")
		return
	}
	if notes == nil {
		notes = []store.Note{}
	}
	respond.JSON(w, http.StatusOK, map[string]any{"notes": notes})
}

func (e *Endpoint) getNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}
	note, err := e.store.GetNote(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, "note not found")
		return
	}
	if err != nil {
		e.logger.Error("get note failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to fetch note")
		return
	}
	respond.JSON(w, http.StatusOK, note)
}

func (e *Endpoint) updateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Title == "" {
		respond.Error(w, http.StatusBadRequest, "title required")
		return
	}
	note := store.Note{
		ID:        id,
		Title:     req.Title,
		Body:      req.Body,
		UpdatedAt: time.Now().UTC(),
	}
	err := e.store.UpdateNote(r.Context(), note)
	if errors.Is(err, store.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, "note not found")
		return
	}
	if err != nil {
		e.logger.Error("update note failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to update note")
		return
	}
	updated, err := e.store.GetNote(r.Context(), id)
	if err != nil {
		e.logger.Error("fetch updated note failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to fetch note")
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

func (e *Endpoint) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}
	err := e.store.DeleteNote(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, "note not found")
		return
	}
	if err != nil {
		e.logger.Error("delete note failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to delete note")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func noteID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "note_id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid note id")
		return uuid.Nil, false
	}
	return id, true
}
