package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/internal/service/calllog"
)

type templateLister interface {
	ListTemplates(ctx context.Context) ([]domain.Template, error)
}

type callLogService interface {
	ListCallLogs(ctx context.Context, input calllog.ListCallLogsInput) ([]domain.CallLogEntry, error)
	CallLogStats(ctx context.Context) (*domain.CallLogStats, error)
}

type modelStatusChecker interface {
	ModelStatus(ctx context.Context) domain.ModelStatus
}

// AIHandler serves templates, the call log and the model health probe.
type AIHandler struct {
	templates templateLister
	calls     callLogService
	model     modelStatusChecker
	log       *slog.Logger
}

// NewAIHandler creates an AIHandler.
func NewAIHandler(templates templateLister, calls callLogService, model modelStatusChecker, logger *slog.Logger) *AIHandler {
	return &AIHandler{
		templates: templates,
		calls:     calls,
		model:     model,
		log:       logger.With("handler", "ai"),
	}
}

// Templates handles GET /api/ai/templates.
func (h *AIHandler) Templates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templates.ListTemplates(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[templateResponse]{
		Items: mapSlice(templates, toTemplateResponse),
		Total: len(templates),
	})
}

// Logs handles GET /api/ai/logs.
func (h *AIHandler) Logs(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := paging(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	entries, err := h.calls.ListCallLogs(r.Context(), calllog.ListCallLogsInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[callLogResponse]{
		Items: mapSlice(entries, toCallLogResponse),
		Total: len(entries),
	})
}

// Stats handles GET /api/ai/stats.
func (h *AIHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.calls.CallLogStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, callLogStatsResponse{
		TotalRequests:       stats.Total,
		SuccessfulRequests:  stats.Successful,
		FailedRequests:      stats.Failed,
		AverageResponseTime: stats.AverageResponseTime,
		ModelUsage:          stats.ModelUsage,
	})
}

// Status handles GET /api/ai/status. It always answers 200; the body carries
// the probe outcome.
func (h *AIHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.model.ModelStatus(r.Context())
	writeJSON(w, http.StatusOK, modelStatusResponse{
		Status:     st.Status,
		Model:      st.Model,
		APIWorking: st.APIWorking,
		Error:      st.Error,
	})
}
