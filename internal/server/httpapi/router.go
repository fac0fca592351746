// Package httpapi is the HTTP boundary: routing, token authentication,
// role-policy authorization and the JSON request/response envelope.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akarpenko/warehouse-api/internal/logging"
	"github.com/akarpenko/warehouse-api/internal/server/auth"
	"github.com/akarpenko/warehouse-api/internal/server/authz"
	"github.com/akarpenko/warehouse-api/internal/server/services"
)

// Handler bundles the services behind the HTTP routes.
type Handler struct {
	auth      *services.AuthService
	inventory *services.InventoryService
	codec     *auth.Codec
	metrics   *Metrics
	logger    logging.Logger
}

func NewHandler(authSvc *services.AuthService, inventorySvc *services.InventoryService, codec *auth.Codec, metrics *Metrics, logger logging.Logger) *Handler {
	return &Handler{
		auth:      authSvc,
		inventory: inventorySvc,
		codec:     codec,
		metrics:   metrics,
		logger:    logger.With("module", "httpapi"),
	}
}

// Router wires the full route table. Policy choice per route:
// inventory reads are open to any authenticated role, writes need User or
// Admin, deletes and stats are Admin only.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Recover(h.logger))
	r.Use(h.metrics.Instrument)
	r.Use(RequestLogger(h.logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.login)

			r.Group(func(r chi.Router) {
				r.Use(Authenticate(h.codec))
				r.Get("/me", h.me)
			})
		})

		r.Route("/warehouse", func(r chi.Router) {
			r.Use(Authenticate(h.codec))

			r.Group(func(r chi.Router) {
				r.Use(RequirePolicy(authz.ViewerOrHigher))
				r.Get("/inventory", h.listInventory)
			})

			r.Group(func(r chi.Router) {
				r.Use(RequirePolicy(authz.UserOrAdmin))
				r.Post("/inventory", h.addInventory)
			})

			r.Group(func(r chi.Router) {
				r.Use(RequirePolicy(authz.AdminOnly))
				r.Delete("/inventory/{id}", h.deleteInventory)
				r.Get("/admin/stats", h.adminStats)
			})
		})
	})

	return r
}
