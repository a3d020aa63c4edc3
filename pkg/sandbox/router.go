package sandbox

import (
	"log/slog"
	"net/http"

	"github.com/chambagt/chamba-payments/pkg/middleware"
	"github.com/go-chi/chi/v5"
)

// NewRouter mounts the payments contract. Everything under /api/payments is
// protected by the bearer token; login and the websocket endpoint are not.
func NewRouter(h *PaymentsHandler, ws http.Handler, logger *slog.Logger) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(logger))

	router.Post("/api/login", h.Login)

	router.Route("/api/payments", func(r chi.Router) {
		r.Use(middleware.RequireBearer(h.Token))
		r.Get("/project/{projectId}", h.GetProjectPayment)
		r.Post("/escrow/deposit", h.Deposit)
		r.Post("/release", h.Release)
		r.Get("/freelancer/history", h.FreelancerHistory)
		r.Get("/client/pending", h.ClientPending)
	})

	if ws != nil {
		router.Handle("/ws", ws)
	}

	return router
}
