package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

type generationService interface {
	Generate(ctx context.Context, topicID uuid.UUID) (*domain.Note, error)
	Regenerate(ctx context.Context, topicID uuid.UUID) (*domain.Note, error)
	DeleteNote(ctx context.Context, noteID uuid.UUID) error
}

// GenerationHandler serves the endpoints that drive a topic's status machine.
type GenerationHandler struct {
	svc generationService
	log *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(svc generationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{svc: svc, log: logger.With("handler", "generation")}
}

// Generate handles POST /api/topics/{id}/generate.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, h.svc.Generate)
}

// Regenerate handles POST /api/topics/{id}/regenerate.
func (h *GenerationHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, h.svc.Regenerate)
}

func (h *GenerationHandler) generate(
	w http.ResponseWriter,
	r *http.Request,
	run func(context.Context, uuid.UUID) (*domain.Note, error),
) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	note, err := run(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toNoteResponse(*note))
}

// DeleteNote handles DELETE /api/notes/{id}; the topic goes back to pending.
func (h *GenerationHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteNote(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
