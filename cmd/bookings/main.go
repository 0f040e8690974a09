package main

import (
	"venuehub/internal/bookings/flow"
	"venuehub/internal/bookings/handler"
	"venuehub/internal/bookings/repository"
	"venuehub/internal/bookings/service"
	"venuehub/internal/bookings/validator"
	"venuehub/pkg/app"
	"venuehub/pkg/auth"
	"venuehub/pkg/config"
	"venuehub/pkg/events"
	kafka_middleware "venuehub/pkg/kafka/middleware"
	"venuehub/pkg/sealer"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.RequireJWTSecret()
	cfg.SetMongo()

	cfg.Log.Info("Starting Bookings service")
	metrics := kafka_middleware.NewMetrics()
	publisher, err := events.Connect(cfg, ServiceName, metrics)
	if err != nil {
		cfg.Log.Fatal("Failed to connect event publisher", "error", err)
	}

	flows := flow.NewStore(cfg.BookingFlowTTL)
	bookingService := initServices(cfg, flows, publisher)

	serverApp := app.NewApplication(ServiceName)
	serverApp.OnShutdown(cfg.GracefulShutdown)
	if pinger, ok := publisher.(events.Pinger); ok {
		serverApp.AddReadinessCheck("events", pinger.Ping)
	}
	serverApp.SetApp(cfg, auth.NewVerifier(cfg.JWTSecret), handler.NewBookingHandler(bookingService, cfg.Log))
	serverApp.OnShutdown(flows.Stop)
	serverApp.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
		cfg.Log.Info("Event publisher stopped", metrics.Snapshot().LogAttrs()...)
	})
	serverApp.Run()
}

func initServices(cfg *config.Config, flows *flow.Store, publisher events.Publisher) service.BookingService {
	tokens, err := sealer.New(cfg.FlowTokenKey)
	if err != nil {
		cfg.Log.Fatal("Failed to create flow token sealer", "error", err)
	}

	bookingService := service.NewBookingService(
		repository.NewMongoBookingRepository(cfg),
		repository.NewMongoVenueReader(cfg),
		flows,
		tokens,
		validator.NewBookingValidator(),
		publisher,
		cfg,
	)

	cfg.Log.Info("Booking service initialized",
		"database", cfg.MongoDatabaseName,
		"flow_ttl", cfg.BookingFlowTTL,
		"deposit_rate", cfg.BookingDepositRate,
	)
	return bookingService
}
