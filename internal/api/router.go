package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/stagewatch/sleepchart/docs"
	"github.com/stagewatch/sleepchart/internal/api/handler"
	"github.com/stagewatch/sleepchart/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler   *handler.UserHandler
	sampleHandler *handler.SampleHandler
	chartHandler  *handler.ChartHandler
}

func NewRouter(userHandler *handler.UserHandler, sampleHandler *handler.SampleHandler, chartHandler *handler.ChartHandler) *Router {
	return &Router{
		userHandler:   userHandler,
		sampleHandler: sampleHandler,
		chartHandler:  chartHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			// Sleep samples (nested under users)
			r.Route("/{userId}/sleep-samples", func(r chi.Router) {
				r.Post("/", rt.sampleHandler.Create)
				r.Get("/", rt.sampleHandler.List)
				r.Post("/import", rt.sampleHandler.Import)
			})

			// Weekly chart views
			r.Route("/{userId}/chart", func(r chi.Router) {
				r.Get("/weekly", rt.chartHandler.Weekly)
				r.Get("/weekly/insights", rt.chartHandler.WeeklyInsights)
			})
		})
	})

	return r
}
