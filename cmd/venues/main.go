package main

import (
	"venuehub/internal/venues/handler"
	"venuehub/internal/venues/repository"
	"venuehub/internal/venues/service"
	"venuehub/internal/venues/validator"
	"venuehub/pkg/app"
	"venuehub/pkg/auth"
	"venuehub/pkg/catalog"
	"venuehub/pkg/config"
	"venuehub/pkg/events"
	kafka_middleware "venuehub/pkg/kafka/middleware"
)

const ServiceName = "venues"

func main() {
	cfg := config.Load(ServiceName)
	cfg.RequireJWTSecret()
	cfg.SetMongo()

	cfg.Log.Info("Starting Venues service")
	metrics := kafka_middleware.NewMetrics()
	publisher, err := events.Connect(cfg, ServiceName, metrics)
	if err != nil {
		cfg.Log.Fatal("Failed to connect event publisher", "error", err)
	}

	venueService := initServices(cfg, publisher)
	serverApp := app.NewApplication(ServiceName)
	serverApp.OnShutdown(cfg.GracefulShutdown)
	if pinger, ok := publisher.(events.Pinger); ok {
		serverApp.AddReadinessCheck("events", pinger.Ping)
	}
	serverApp.SetApp(cfg, auth.NewVerifier(cfg.JWTSecret), handler.NewVenueHandler(venueService, cfg.Log))
	serverApp.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
		cfg.Log.Info("Event publisher stopped", metrics.Snapshot().LogAttrs()...)
	})
	serverApp.Run()
}

func initServices(cfg *config.Config, publisher events.Publisher) service.VenueService {
	c, err := catalog.Default()
	if err != nil {
		cfg.Log.Fatal("Failed to load venue catalog", "error", err)
	}

	venueService := service.NewVenueService(
		service.Repositories{
			Venues:    repository.NewMongoVenueRepository(cfg),
			Reviews:   repository.NewMongoReviewRepository(cfg),
			Inquiries: repository.NewMongoInquiryRepository(cfg),
		},
		validator.NewVenueValidator(),
		publisher,
		c.Amenities,
		cfg,
	)

	cfg.Log.Info("Venue service initialized", "database", cfg.MongoDatabaseName, "amenities", len(c.Amenities))
	return venueService
}
