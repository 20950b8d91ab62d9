// internal/routes/campaign_routes.go
package routes

import (
	"github.com/go-chi/chi/v5"

	"campaignadmin/internal/handlers"
)

func RegisterCampaignRoutes(router chi.Router, h *handlers.CampaignHandler) {
	router.Route("/campaigns", func(r chi.Router) {
		r.Get("/", h.ListCampaigns)
		r.Post("/", h.CreateCampaign)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetCampaign)
			r.Put("/", h.UpdateCampaign)
			r.Delete("/", h.DeleteCampaign)
			r.Get("/rewards", h.GetCampaignRewards)
			r.Post("/entries", h.UpdateEntries)
		})
	})
}
