package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"smartcity/internal/ai"
	"smartcity/internal/config"
	"smartcity/internal/controller"
	"smartcity/internal/repository"
	"smartcity/internal/routes"
	"smartcity/internal/service"
	"smartcity/internal/viz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	// Stores are constructed once and handed to every component that
	// needs them; there is no package-level registry state.
	registry := repository.NewSensorRepository(repository.SeedSensors())
	catalog := repository.NewNeighborhoodCatalog()
	history := repository.NewReviewHistory()

	gateway := ai.NewClient(ai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
		Timeout: cfg.OpenAI.Timeout,
	}, logger)

	sink := viz.NewLogSink(logger)

	advisoryService := service.NewAdvisoryService(
		registry, catalog, history, gateway, sink, logger,
		cfg.Proximity.RadiusKm,
		service.Budgets{
			Prompt: cfg.OpenAI.MaxTokensPrompt,
			Review: cfg.OpenAI.MaxTokensReview,
		})

	advisoryController := controller.NewAdvisoryController(advisoryService, logger)
	sensorController := controller.NewSensorController(registry, catalog, logger)

	router := routes.SetupRouter(advisoryController, sensorController)

	// CORS setup
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := c.Handler(router)

	logger.Info("server is running",
		zap.String("port", cfg.Port),
		zap.String("model", cfg.OpenAI.Model),
		zap.Int("seed_sensors", len(registry.ListAll())))
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if level == "debug" {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapConfig.Build()
}
