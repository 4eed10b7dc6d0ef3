// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"networth-tracker/internal/api/handler"
	"networth-tracker/internal/auth"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(
	sourceHandler *handler.SourceHandler,
	updateHandler *handler.UpdateHandler,
	netWorthHandler *handler.NetWorthHandler,
	eventHandler *handler.EventHandler,
	authenticator auth.Authenticator,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(authenticator))

		r.Route("/financial-sources", func(r chi.Router) {
			r.Get("/", sourceHandler.List)
			r.Post("/", sourceHandler.Create)
			r.Get("/types", sourceHandler.Types)
			r.Get("/net-worth", netWorthHandler.Current)
			r.Get("/historical-net-worth", netWorthHandler.Historical)

			r.Route("/{sourceID}", func(r chi.Router) {
				r.Get("/", sourceHandler.Get)
				r.Patch("/", sourceHandler.Update)
				r.Delete("/", sourceHandler.Delete)

				r.Route("/updates", func(r chi.Router) {
					r.Get("/", updateHandler.List)
					r.Post("/", updateHandler.Create)
					r.Get("/{updateID}", updateHandler.Get)
					r.Patch("/{updateID}", updateHandler.Update)
					r.Delete("/{updateID}", updateHandler.Delete)
				})
			})
		})

		r.Route("/net-worth-events", func(r chi.Router) {
			r.Get("/", eventHandler.List)
			r.Post("/", eventHandler.Record)
			r.Get("/latest", eventHandler.Latest)
			r.Get("/{eventID}", eventHandler.Get)
			r.Delete("/{eventID}", eventHandler.Delete)
		})
	})

	return r
}
