package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/internal/service/topic"
)

type topicService interface {
	CreateTopic(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListTopics(ctx context.Context, input topic.ListTopicsInput) (*topic.ListResult, error)
	UpdateTopic(ctx context.Context, input topic.UpdateTopicInput) (*domain.Topic, error)
	DeleteTopic(ctx context.Context, topicID uuid.UUID) error
	TopicStats(ctx context.Context) (*domain.TopicStats, error)
}

// TopicHandler serves /api/topics CRUD and stats.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topic")}
}

type createTopicRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	SubjectID   *uuid.UUID `json:"subjectId"`
	Difficulty  string     `json:"difficulty"`
	Tags        []string   `json:"tags"`
}

type updateTopicRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	SubjectID    *uuid.UUID `json:"subjectId"`
	ClearSubject bool       `json:"clearSubject"`
	Difficulty   *string    `json:"difficulty"`
	Tags         []string   `json:"tags"`
}

// List handles GET /api/topics.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := listTopicsInput(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ListTopics(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[topicResponse]{
		Items: mapSlice(result.Topics, toTopicResponse),
		Total: result.Total,
	})
}

func listTopicsInput(r *http.Request) (topic.ListTopicsInput, error) {
	q := r.URL.Query()
	input := topic.ListTopicsInput{
		Search:    q.Get("search"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	if v := q.Get("status"); v != "" {
		s := domain.TopicStatus(v)
		input.Status = &s
	}
	if v := q.Get("difficulty"); v != "" {
		d := domain.Difficulty(v)
		input.Difficulty = &d
	}

	var err error
	if input.SubjectID, err = queryUUID(r, "subjectId"); err != nil {
		return input, err
	}
	if input.Limit, input.Offset, err = paging(r); err != nil {
		return input, err
	}
	return input, nil
}

// Create handles POST /api/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.CreateTopic(r.Context(), topic.CreateTopicInput{
		Title:       req.Title,
		Description: req.Description,
		SubjectID:   req.SubjectID,
		Difficulty:  domain.Difficulty(req.Difficulty),
		Tags:        req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTopicResponse(*created))
}

// Get handles GET /api/topics/{id}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	t, err := h.svc.GetTopic(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTopicResponse(*t))
}

// Update handles PATCH /api/topics/{id}. Status is not client-writable.
func (h *TopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateTopicRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := topic.UpdateTopicInput{
		TopicID:      id,
		Title:        req.Title,
		Description:  req.Description,
		SubjectID:    req.SubjectID,
		ClearSubject: req.ClearSubject,
		Tags:         req.Tags,
	}
	if req.Difficulty != nil {
		d := domain.Difficulty(*req.Difficulty)
		input.Difficulty = &d
	}

	updated, err := h.svc.UpdateTopic(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTopicResponse(*updated))
}

// Delete handles DELETE /api/topics/{id}.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteTopic(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/topics/stats.
func (h *TopicHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.TopicStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTopicStatsResponse(stats))
}
