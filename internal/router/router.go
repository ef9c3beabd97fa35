package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/summitinspect/leadgate/internal/handler"
	mw "github.com/summitinspect/leadgate/internal/middleware"
)

func New(flowH *handler.FlowHandler, healthH *handler.HealthHandler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS)

	r.Get("/healthz", healthH.Health)

	r.Route("/api/v1/flows", func(r chi.Router) {
		r.Post("/schedule", flowH.ScheduleInspection)
		r.Post("/contact", flowH.ContactMessage)
		r.Post("/checklist/generate", flowH.GenerateChecklist)
		r.Post("/checklist/deliver", flowH.DeliverChecklist)
		r.Post("/estimate", flowH.EstimateCost)
	})

	return r
}
