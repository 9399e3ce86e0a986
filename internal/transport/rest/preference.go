package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/internal/service/preference"
)

type preferenceService interface {
	GetPreferences(ctx context.Context) (*domain.Preference, error)
	UpdatePreferences(ctx context.Context, input preference.UpdatePreferencesInput) (*domain.Preference, error)
}

// PreferenceHandler serves /api/preferences.
type PreferenceHandler struct {
	svc preferenceService
	log *slog.Logger
}

// NewPreferenceHandler creates a PreferenceHandler.
func NewPreferenceHandler(svc preferenceService, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{svc: svc, log: logger.With("handler", "preference")}
}

type updatePreferencesRequest struct {
	PreferredDifficulty *string `json:"preferredDifficulty"`
	PreferredStyle      *string `json:"preferredStyle"`
	IncludeExamples     *bool   `json:"includeExamples"`
	IncludeSummary      *bool   `json:"includeSummary"`
	IncludeKeyPoints    *bool   `json:"includeKeyPoints"`
	MaxWordCount        *int    `json:"maxWordCount"`
}

// Get handles GET /api/preferences; defaults are created on first read.
func (h *PreferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	pref, err := h.svc.GetPreferences(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPreferenceResponse(pref))
}

// Update handles PATCH /api/preferences.
func (h *PreferenceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePreferencesRequest
	if err := decodeJSON(r, w, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	params := domain.PreferenceUpdateParams{
		IncludeExamples:  req.IncludeExamples,
		IncludeSummary:   req.IncludeSummary,
		IncludeKeyPoints: req.IncludeKeyPoints,
		MaxWordCount:     req.MaxWordCount,
	}
	if req.PreferredDifficulty != nil {
		d := domain.Difficulty(*req.PreferredDifficulty)
		params.PreferredDifficulty = &d
	}
	if req.PreferredStyle != nil {
		s := domain.TemplateType(*req.PreferredStyle)
		params.PreferredStyle = &s
	}

	pref, err := h.svc.UpdatePreferences(r.Context(), preference.UpdatePreferencesInput{PreferenceUpdateParams: params})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPreferenceResponse(pref))
}
