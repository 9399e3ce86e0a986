package rest

import (
	"net/http"

	"github.com/heartmarshall/studynotes-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health      *HealthHandler
	Subjects    *SubjectHandler
	Topics      *TopicHandler
	Generation  *GenerationHandler
	Notes       *NoteHandler
	Preferences *PreferenceHandler
	AI          *AIHandler
}

// NewRouter registers all routes. Health probes are public; everything under
// /api requires an authenticated user. generateLimit wraps the two
// model-calling endpoints and may be nil.
func NewRouter(h Handlers, generateLimit middleware.Middleware) *http.ServeMux {
	if generateLimit == nil {
		generateLimit = func(next http.Handler) http.Handler { return next }
	}

	api := http.NewServeMux()

	api.HandleFunc("GET /api/subjects", h.Subjects.List)
	api.HandleFunc("POST /api/subjects", h.Subjects.Create)
	api.HandleFunc("GET /api/subjects/{id}", h.Subjects.Get)
	api.HandleFunc("DELETE /api/subjects/{id}", h.Subjects.Delete)

	api.HandleFunc("GET /api/topics", h.Topics.List)
	api.HandleFunc("POST /api/topics", h.Topics.Create)
	api.HandleFunc("GET /api/topics/stats", h.Topics.Stats)
	api.HandleFunc("GET /api/topics/{id}", h.Topics.Get)
	api.HandleFunc("PATCH /api/topics/{id}", h.Topics.Update)
	api.HandleFunc("DELETE /api/topics/{id}", h.Topics.Delete)
	api.Handle("POST /api/topics/{id}/generate", generateLimit(http.HandlerFunc(h.Generation.Generate)))
	api.Handle("POST /api/topics/{id}/regenerate", generateLimit(http.HandlerFunc(h.Generation.Regenerate)))

	api.HandleFunc("GET /api/notes", h.Notes.List)
	api.HandleFunc("GET /api/notes/{id}", h.Notes.Get)
	api.HandleFunc("PATCH /api/notes/{id}", h.Notes.Update)
	api.HandleFunc("DELETE /api/notes/{id}", h.Generation.DeleteNote)
	api.HandleFunc("POST /api/notes/{id}/rate", h.Notes.Rate)

	api.HandleFunc("GET /api/preferences", h.Preferences.Get)
	api.HandleFunc("PATCH /api/preferences", h.Preferences.Update)

	api.HandleFunc("GET /api/ai/templates", h.AI.Templates)
	api.HandleFunc("GET /api/ai/logs", h.AI.Logs)
	api.HandleFunc("GET /api/ai/stats", h.AI.Stats)
	api.HandleFunc("GET /api/ai/status", h.AI.Status)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("/api/", middleware.RequireUser(api))

	return mux
}
