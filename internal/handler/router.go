package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter assembles the full route table and middleware stack.
func NewRouter(h *ActivityHandler, log *zap.Logger, staticDir, instanceID string) chi.Router {
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(AccessLog(log))          // structured access log
	r.Use(Metrics)                 // prometheus counters
	r.Use(CORS)                    // permissive CORS for the demo frontend

	// Health and metrics
	r.Get("/health", HealthCheck(instanceID))
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.ListActivities)
		r.Post("/{name}/signup", h.Signup)
		r.Post("/{name}/remove", h.Remove)
	})

	// Static frontend: / redirects to the index page, assets are served
	// verbatim from staticDir.
	r.Get("/", Root)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	return r
}
