package routes

import (
	"github.com/go-chi/chi/v5"

	"campaignadmin/internal/handlers"
)

func RegisterRewardRoutes(router chi.Router, h *handlers.RewardHandler) {
	router.Route("/rewards", func(r chi.Router) {
		r.Post("/", h.CreateReward)
		r.Put("/{id}", h.UpdateReward)
	})
}

func RegisterAdminRoutes(router chi.Router, h *handlers.AdminHandler) {
	router.Get("/admins/me", h.Me)
}
