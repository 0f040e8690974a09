package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"venuehub/pkg/client"
	"venuehub/pkg/logger"
)

type Config struct {
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	Port string

	JWTSecret    string
	FlowTokenKey string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	BookingSubmissionDelay time.Duration
	BookingFlowTTL         time.Duration
	BookingDepositRate     float64
	DefaultGuestCount      int

	EventsEnabled   bool
	EventsTopic     string
	EventsDLQTopic  string
	NotifierGroupID string

	Log    *logger.Logger
	Client *client.Client
}

var (
	mongoURIRegex   = regexp.MustCompile(`^mongodb(\+srv)?://.+`)
	credentialRegex = regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
)

// flowTokenKeySize is the AES-256 key length used by the flow token sealer.
const flowTokenKeySize = 32

func Load(serviceName string) *Config {
	cfg := &Config{
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Port: getEnvStr(EnvPort, DefaultPort),

		JWTSecret:    getEnvStr(EnvJWTSecret, ""),
		FlowTokenKey: getEnvStr(EnvFlowTokenKey, ""),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		BookingSubmissionDelay: getEnvDuration(EnvBookingSubmissionDelay, DefaultBookingSubmissionDelay),
		BookingFlowTTL:         getEnvDuration(EnvBookingFlowTTL, DefaultBookingFlowTTL),
		BookingDepositRate:     getEnvFloat(EnvBookingDepositRate, DefaultBookingDepositRate),
		DefaultGuestCount:      getEnvNum(EnvDefaultGuestCount, DefaultDefaultGuestCount),

		EventsEnabled:   getEnvBool(EnvEventsEnabled, DefaultEventsEnabled),
		EventsTopic:     getEnvStr(EnvEventsTopic, DefaultEventsTopic),
		EventsDLQTopic:  getEnvStr(EnvEventsDLQTopic, DefaultEventsDLQTopic),
		NotifierGroupID: getEnvStr(EnvNotifierGroupID, DefaultNotifierGroupID),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.NewClient(),
	}

	if cfg.FlowTokenKey == "" {
		cfg.FlowTokenKey = generateKey()
		cfg.Log.Warn("FLOW_TOKEN_KEY not set, generated an ephemeral key; booking flow tokens will not survive a restart")
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

// RequireJWTSecret stops the process when no usable signing secret is configured.
// Only the HTTP services call it; jobs and consumers never see bearer tokens.
func (cfg *Config) RequireJWTSecret() {
	if len(cfg.JWTSecret) < MinJWTSecretLength {
		cfg.Log.Fatal(fmt.Sprintf("%s must be at least %d characters", EnvJWTSecret, MinJWTSecretLength))
	}
}

func (cfg *Config) Validate() error {
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		addf("Port must be between 1 and 65535, got: %s", cfg.Port)
	}

	switch {
	case cfg.MongoURI == "":
		addf("MongoURI cannot be empty")
	case !mongoURIRegex.MatchString(cfg.MongoURI):
		addf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI))
	}
	if cfg.MongoDatabaseName == "" {
		addf("MongoDatabaseName cannot be empty")
	}

	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"MongoConnTimeout", cfg.MongoConnTimeout},
		{"RateLimitWindow", cfg.RateLimitWindow},
		{"RequestTimeout", cfg.RequestTimeout},
		{"IdempotencyTTL", cfg.IdempotencyTTL},
		{"ReadTimeout", cfg.ReadTimeout},
		{"WriteTimeout", cfg.WriteTimeout},
		{"IdleTimeout", cfg.IdleTimeout},
		{"ShutdownTimeout", cfg.ShutdownTimeout},
		{"BookingFlowTTL", cfg.BookingFlowTTL},
	} {
		if d.value <= 0 {
			addf("%s must be positive, got: %s", d.name, d.value)
		}
	}
	for _, n := range []struct {
		name  string
		value int
	}{
		{"RateLimitRequests", cfg.RateLimitRequests},
		{"MaxRequestSize", cfg.MaxRequestSize},
		{"DefaultGuestCount", cfg.DefaultGuestCount},
	} {
		if n.value <= 0 {
			addf("%s must be positive, got: %d", n.name, n.value)
		}
	}

	if cfg.BookingSubmissionDelay < 0 {
		addf("BookingSubmissionDelay cannot be negative, got: %s", cfg.BookingSubmissionDelay)
	} else if cfg.BookingSubmissionDelay >= cfg.RequestTimeout {
		addf("BookingSubmissionDelay (%s) must be shorter than RequestTimeout (%s)", cfg.BookingSubmissionDelay, cfg.RequestTimeout)
	}
	if cfg.BookingDepositRate < 0 || cfg.BookingDepositRate > 1 {
		addf("BookingDepositRate must be between 0 and 1, got: %g", cfg.BookingDepositRate)
	}
	if key, err := base64.StdEncoding.DecodeString(cfg.FlowTokenKey); err != nil || len(key) != flowTokenKeySize {
		addf("FlowTokenKey must be a base64 encoded %d byte key", flowTokenKeySize)
	}
	if cfg.EventsEnabled && cfg.EventsTopic == "" {
		addf("EventsTopic cannot be empty when events are enabled")
	}

	if len(problems) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("Configuration validation failed:\n")
	for i, problem := range problems {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, problem)
	}
	return errors.New(b.String())
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"port", cfg.Port,
		"jwt_secret_set", cfg.JWTSecret != "",
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"booking_submission_delay", cfg.BookingSubmissionDelay,
		"booking_flow_ttl", cfg.BookingFlowTTL,
		"booking_deposit_rate", cfg.BookingDepositRate,
		"default_guest_count", cfg.DefaultGuestCount,
		"events_enabled", cfg.EventsEnabled,
		"events_topic", cfg.EventsTopic,
		"events_dlq_topic", cfg.EventsDLQTopic,
	)
}

func redactMongoURI(uri string) string {
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func generateKey() string {
	key := make([]byte, flowTokenKeySize)
	_, _ = rand.Read(key)
	return base64.StdEncoding.EncodeToString(key)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnv parses key with parse, keeping fallback when the variable is unset
// or malformed.
func getEnv[T any](key string, fallback T, parse func(string) (T, error)) T {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := parse(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvNum(key string, fallback int) int {
	return getEnv(key, fallback, strconv.Atoi)
}

func getEnvFloat(key string, fallback float64) float64 {
	return getEnv(key, fallback, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

func getEnvBool(key string, fallback bool) bool {
	return getEnv(key, fallback, strconv.ParseBool)
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	return getEnv(key, fallback, time.ParseDuration)
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log, cfg.ShutdownTimeout)
}

func NormalizePaginationLimit(limit int) int {
	if limit <= 0 {
		return DefaultPaginationLimit
	}
	if limit > MaxPaginationLimit {
		return MaxPaginationLimit
	}
	return limit
}

func NormalizeOffset(offset int64) int64 {
	return max(0, offset)
}
