package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "venuehub"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultBookingSubmissionDelay = 1500 * time.Millisecond
	DefaultBookingFlowTTL         = 2 * time.Hour
	DefaultBookingDepositRate     = 0.2
	DefaultDefaultGuestCount      = 50

	DefaultEventsEnabled   = true
	DefaultEventsTopic     = "venuehub.domain-events"
	DefaultEventsDLQTopic  = "venuehub.dlq"
	DefaultNotifierGroupID = "venuehub-notifier"

	DefaultPaginationLimit = 10
	MaxPaginationLimit     = 100

	MinJWTSecretLength = 32
)
