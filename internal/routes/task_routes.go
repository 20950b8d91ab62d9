package routes

import (
	"github.com/go-chi/chi/v5"

	"campaignadmin/internal/handlers"
)

func RegisterTaskRoutes(router chi.Router, h *handlers.TaskHandler) {
	router.Put("/tasks/{id}", h.ReviewTask)
}

func RegisterReportRoutes(router chi.Router, h *handlers.ReportHandler) {
	router.Route("/reports", func(r chi.Router) {
		r.Get("/", h.GetReport)
		r.Post("/export", h.ExportReport)
	})
}
