package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"momgyeot-ai/internal/handlers"
	"momgyeot-ai/internal/service"
)

const maxBodyBytes = 1 << 20

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ChatService    service.ChatService
	HistoryService service.HistoryService
	AdminService   service.AdminService
	Retriever      service.Retriever

	// StoreConfigured reports whether a record store backend is set up.
	StoreConfigured        bool
	SearchMinContentLength int

	// Forwarder is nil when no messages API key is configured.
	Forwarder handlers.Forwarder
	// Store is nil when no record store is configured.
	Store          handlers.Pinger
	GeneratorReady bool
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(SentryMiddleware)
	r.Use(CORS)
	r.Use(MaxBodyBytes(maxBodyBytes))

	r.Route("/api", func(r chi.Router) {
		r.Handle("/search", handlers.NewSearchHandler(deps.Retriever, deps.StoreConfigured, deps.SearchMinContentLength))
		r.Handle("/chat", handlers.NewChatHandler(deps.ChatService))
		r.Handle("/history", handlers.NewHistoryHandler(deps.HistoryService))
		r.Handle("/admin", handlers.NewAdminHandler(deps.AdminService))
		r.Handle("/messages", handlers.NewMessagesHandler(deps.Forwarder))
		r.Handle("/health", handlers.NewHealthHandler(deps.Store, deps.GeneratorReady))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Not found"}`))
	})

	return r
}
