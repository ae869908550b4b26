// Package server exposes the editing session over a JSON HTTP API.
//
// The core never validates; this is the boundary that rejects malformed
// submissions with a message and no state change. It also owns all
// user-facing concerns the core has no opinion on: status codes, the
// export download headers, and request observability.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MitulNakrani003/GroupBillSplitter/internal/service"
)

// Server wires the bill service into an HTTP router.
type Server struct {
	svc      *service.BillService
	validate *validator.Validate
	metrics  *Metrics
	router   chi.Router
}

// New constructs a Server. Pass a fresh registry per server so tests
// can spin up several without collector collisions; nil uses a new one.
func New(svc *service.BillService, reg *prometheus.Registry) *Server {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	s := &Server{
		svc:      svc,
		validate: validator.New(),
		metrics:  NewMetrics(reg),
	}

	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(s.recordMetrics)
	r.Use(corsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/bill", s.handleNewBill)
		r.Get("/bill/summary", s.handleSummary)
		r.Get("/bill/totals", s.handleTotals)
		r.Get("/bill/export", s.handleExport)
		r.Post("/bill/items", s.handleAddItem)
		r.Delete("/bill/items/{name}", s.handleRemoveItem)
		r.Post("/bill/participants", s.handleAddParticipant)
		r.Get("/participants", s.handleKnownParticipants)
		r.Get("/groups", s.handleGroups)
		r.Put("/groups", s.handleSaveGroups)
	})

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}
