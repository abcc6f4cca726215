package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures all API routes.
func SetupRoutes(h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(MetricsMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.HealthCheck)
	r.Method("GET", "/metrics", MetricsHandler())

	r.Route("/api", func(r chi.Router) {
		// Scoring engines
		r.Post("/benchmark/{catalog}", h.HandleBenchmarkAnalyze)
		r.Post("/campaigns/score", h.HandleCampaignScore)
		r.Post("/channels/mix", h.HandleChannelMix)
		r.Post("/channels/roi", h.HandleChannelROI)
		r.Post("/funnel/analyze", h.HandleFunnelAnalyze)
		r.Post("/funnel/simulate", h.HandleFunnelSimulate)
		r.Post("/alerts/check", h.HandleAlertsCheck)

		// Assistant
		r.Get("/modes", h.HandleModes)
		r.Post("/chat", h.HandleChat)
		r.Get("/context/{orgID}", h.HandleOrganizationContext)
		r.Post("/suggestions", h.HandleSuggestions)
		r.Post("/suggestions/topics", h.HandleRecordTopics)
		r.Post("/suggestions/{session}/dismiss", h.HandleDismissPrompt)

		// Organizations and their campaigns/channels
		r.Route("/organizations", func(r chi.Router) {
			r.Get("/", h.HandleListOrganizations)
			r.Post("/", h.HandleCreateOrganization)
			r.Route("/{orgID}", func(r chi.Router) {
				r.Get("/", h.HandleGetOrganization)
				r.Put("/", h.HandleUpdateOrganization)
				r.Delete("/", h.HandleDeleteOrganization)

				r.Route("/campaigns", func(r chi.Router) {
					r.Get("/", h.HandleListCampaigns)
					r.Post("/", h.HandleCreateCampaign)
					r.Get("/{campaignID}", h.HandleGetCampaign)
					r.Put("/{campaignID}/metrics", h.HandleUpdateCampaignMetrics)
					r.Delete("/{campaignID}", h.HandleDeleteCampaign)
				})

				r.Route("/channels", func(r chi.Router) {
					r.Get("/", h.HandleListChannels)
					r.Post("/", h.HandleCreateChannel)
					r.Get("/{channelID}", h.HandleGetChannel)
					r.Put("/{channelID}/metrics", h.HandleUpdateChannelMetrics)
					r.Delete("/{channelID}", h.HandleDeleteChannel)
				})
			})
		})
	})

	return r
}
