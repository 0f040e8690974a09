package main

import (
	notificationhandler "venuehub/internal/notifications/handler"
	notificationrepo "venuehub/internal/notifications/repository"
	notificationservice "venuehub/internal/notifications/service"
	profilehandler "venuehub/internal/profiles/handler"
	profilerepo "venuehub/internal/profiles/repository"
	profileservice "venuehub/internal/profiles/service"
	profilevalidator "venuehub/internal/profiles/validator"
	wishlisthandler "venuehub/internal/wishlists/handler"
	wishlistrepo "venuehub/internal/wishlists/repository"
	wishlistservice "venuehub/internal/wishlists/service"
	wishlistvalidator "venuehub/internal/wishlists/validator"
	"venuehub/pkg/app"
	"venuehub/pkg/auth"
	"venuehub/pkg/config"
	"venuehub/pkg/contracts"
	"venuehub/pkg/events"
	kafka_middleware "venuehub/pkg/kafka/middleware"
)

// ServiceName covers everything scoped to the signed-in user: the wishlist,
// the profile and the notification inbox.
const ServiceName = "accounts"

func main() {
	cfg := config.Load(ServiceName)
	cfg.RequireJWTSecret()
	cfg.SetMongo()

	cfg.Log.Info("Starting Accounts service")
	metrics := kafka_middleware.NewMetrics()
	publisher, err := events.Connect(cfg, ServiceName, metrics)
	if err != nil {
		cfg.Log.Fatal("Failed to connect event publisher", "error", err)
	}

	serverApp := app.NewApplication(ServiceName)
	serverApp.OnShutdown(cfg.GracefulShutdown)
	if pinger, ok := publisher.(events.Pinger); ok {
		serverApp.AddReadinessCheck("events", pinger.Ping)
	}
	serverApp.SetApp(cfg, auth.NewVerifier(cfg.JWTSecret), initHandlers(cfg, publisher)...)
	serverApp.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
		cfg.Log.Info("Event publisher stopped", metrics.Snapshot().LogAttrs()...)
	})
	serverApp.Run()
}

func initHandlers(cfg *config.Config, publisher events.Publisher) []contracts.Handler {
	wishlists := wishlistservice.NewWishlistService(
		wishlistrepo.NewMongoWishlistRepository(cfg),
		wishlistrepo.NewMongoVenueReader(cfg),
		wishlistvalidator.NewWishlistValidator(),
		publisher,
		cfg,
	)
	profiles := profileservice.NewProfileService(
		profilerepo.NewMongoProfileRepository(cfg),
		profilevalidator.NewProfileValidator(),
		publisher,
		cfg,
	)
	notifications := notificationservice.NewNotificationService(
		notificationrepo.NewMongoNotificationRepository(cfg),
		cfg,
	)

	cfg.Log.Info("Account services initialized", "database", cfg.MongoDatabaseName)
	return []contracts.Handler{
		wishlisthandler.NewWishlistHandler(wishlists, cfg.Log),
		profilehandler.NewProfileHandler(profiles, cfg.Log),
		notificationhandler.NewNotificationHandler(notifications, cfg.Log),
	}
}
