// Sleep Chart API
//
// REST API for weekly sleep-stage chart data.
//
//	@title			Sleep Chart API
//	@version		1.0
//	@description	Import sleep-stage samples and read weekly chart geometry, daily quality metrics, and AI insights.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			sleep-samples
//	@tag.description	Sleep-stage sample recording and import endpoints
//
//	@tag.name			chart
//	@tag.description	Weekly chart and insights endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/stagewatch/sleepchart/internal/api"
	"github.com/stagewatch/sleepchart/internal/api/handler"
	"github.com/stagewatch/sleepchart/internal/config"
	"github.com/stagewatch/sleepchart/internal/domain"
	"github.com/stagewatch/sleepchart/internal/llm"
	"github.com/stagewatch/sleepchart/internal/repository"
	"github.com/stagewatch/sleepchart/internal/seed"
	"github.com/stagewatch/sleepchart/internal/service"
	"github.com/stagewatch/sleepchart/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when no OTLP endpoint is configured)
	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleepchart-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.SleepSample{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sampleRepo := repository.NewSampleRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	sampleService := service.NewSampleService(sampleRepo, userRepo)
	chartService := service.NewChartService(sampleRepo, userRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}

	// Initialize insights service
	insightsService := service.NewInsightsService(chartService, openaiClient, userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	sampleHandler := handler.NewSampleHandler(sampleService)
	chartHandler := handler.NewChartHandler(chartService, insightsService)

	// Setup router
	router := api.NewRouter(userHandler, sampleHandler, chartHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
