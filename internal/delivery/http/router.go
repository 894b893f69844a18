package http //nolint:revive // directory-based package name, imported with alias

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const requestTimeout = 30 * time.Second

func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/api/qr/{shop_id}", h.HandleQR)
	r.Get("/api/payload/{shop_id}", h.HandlePayload)
	r.Post("/api/verify", h.HandleVerify)
	r.Get("/api/issued/{id}", h.HandleIssued)

	return r
}
