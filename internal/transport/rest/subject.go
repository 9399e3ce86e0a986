package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/internal/service/subject"
)

type subjectService interface {
	CreateSubject(ctx context.Context, input subject.CreateSubjectInput) (*domain.Subject, error)
	ListSubjects(ctx context.Context) ([]domain.Subject, error)
	GetSubject(ctx context.Context, id uuid.UUID) (*domain.Subject, error)
	DeleteSubject(ctx context.Context, id uuid.UUID) error
}

// SubjectHandler serves /api/subjects.
type SubjectHandler struct {
	svc subjectService
	log *slog.Logger
}

// NewSubjectHandler creates a SubjectHandler.
func NewSubjectHandler(svc subjectService, logger *slog.Logger) *SubjectHandler {
	return &SubjectHandler{svc: svc, log: logger.With("handler", "subject")}
}

type createSubjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// List handles GET /api/subjects.
func (h *SubjectHandler) List(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.svc.ListSubjects(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[subjectResponse]{
		Items: mapSlice(subjects, toSubjectResponse),
		Total: len(subjects),
	})
}

// Create handles POST /api/subjects.
func (h *SubjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSubjectRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.CreateSubject(r.Context(), subject.CreateSubjectInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSubjectResponse(*created))
}

// Get handles GET /api/subjects/{id}.
func (h *SubjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	s, err := h.svc.GetSubject(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubjectResponse(*s))
}

// Delete handles DELETE /api/subjects/{id}.
func (h *SubjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteSubject(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
