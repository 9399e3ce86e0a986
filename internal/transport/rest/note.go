package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/internal/service/note"
)

type noteService interface {
	GetNote(ctx context.Context, noteID uuid.UUID) (*note.NoteDetail, error)
	ListNotes(ctx context.Context, input note.ListNotesInput) (*note.ListResult, error)
	UpdateNote(ctx context.Context, input note.UpdateNoteInput) (*domain.Note, error)
	RateNote(ctx context.Context, input note.RateNoteInput) (*domain.NoteAnalytics, error)
}

// NoteHandler serves note reads, edits and ratings.
type NoteHandler struct {
	svc noteService
	log *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc noteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, log: logger.With("handler", "note")}
}

type updateNoteRequest struct {
	Content    *string  `json:"content"`
	Summary    *string  `json:"summary"`
	KeyPoints  []string `json:"keyPoints"`
	References []string `json:"references"`
}

type rateNoteRequest struct {
	Rating int `json:"rating"`
}

// List handles GET /api/notes.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := note.ListNotesInput{
		ModelUsed: q.Get("modelUsed"),
		Search:    q.Get("search"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	var err error
	if input.Limit, input.Offset, err = paging(r); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ListNotes(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[noteResponse]{
		Items: mapSlice(result.Notes, toNoteResponse),
		Total: result.Total,
	})
}

// Get handles GET /api/notes/{id}. Each read counts as a view.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	detail, err := h.svc.GetNote(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, noteDetailResponse{
		noteResponse: toNoteResponse(*detail.Note),
		Analytics:    toAnalyticsResponse(detail.Analytics),
	})
}

// Update handles PATCH /api/notes/{id}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateNoteRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	updated, err := h.svc.UpdateNote(r.Context(), note.UpdateNoteInput{
		NoteID: id,
		NoteUpdateParams: domain.NoteUpdateParams{
			Content:    req.Content,
			Summary:    req.Summary,
			KeyPoints:  req.KeyPoints,
			References: req.References,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(*updated))
}

// Rate handles POST /api/notes/{id}/rate.
func (h *NoteHandler) Rate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req rateNoteRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	analytics, err := h.svc.RateNote(r.Context(), note.RateNoteInput{NoteID: id, Rating: req.Rating})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalyticsResponse(analytics))
}
