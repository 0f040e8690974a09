package config

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		MongoURI:               DefaultMongoURI,
		MongoDatabaseName:      DefaultMongoDatabaseName,
		MongoConnTimeout:       DefaultMongoConnTimeout,
		Port:                   DefaultPort,
		FlowTokenKey:           base64.StdEncoding.EncodeToString(make([]byte, 32)),
		RateLimitRequests:      DefaultRateLimitRequests,
		RateLimitWindow:        DefaultRateLimitWindow,
		RequestTimeout:         DefaultRequestTimeout,
		IdempotencyTTL:         DefaultIdempotencyTTL,
		MaxRequestSize:         DefaultMaxRequestSize,
		ReadTimeout:            DefaultReadTimeout,
		WriteTimeout:           DefaultWriteTimeout,
		IdleTimeout:            DefaultIdleTimeout,
		ShutdownTimeout:        DefaultShutdownTimeout,
		BookingSubmissionDelay: DefaultBookingSubmissionDelay,
		BookingFlowTTL:         DefaultBookingFlowTTL,
		BookingDepositRate:     DefaultBookingDepositRate,
		DefaultGuestCount:      DefaultDefaultGuestCount,
		EventsEnabled:          true,
		EventsTopic:            DefaultEventsTopic,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "port out of range", mutate: func(c *Config) { c.Port = "70000" }, wantErr: "Port"},
		{name: "port not a number", mutate: func(c *Config) { c.Port = "http" }, wantErr: "Port"},
		{name: "bad mongo scheme", mutate: func(c *Config) { c.MongoURI = "postgres://localhost" }, wantErr: "MongoURI"},
		{name: "empty database", mutate: func(c *Config) { c.MongoDatabaseName = "" }, wantErr: "MongoDatabaseName"},
		{name: "negative delay", mutate: func(c *Config) { c.BookingSubmissionDelay = -time.Second }, wantErr: "BookingSubmissionDelay"},
		{
			name: "delay longer than request timeout",
			mutate: func(c *Config) {
				c.BookingSubmissionDelay = time.Minute
				c.RequestTimeout = 30 * time.Second
			},
			wantErr: "shorter than RequestTimeout",
		},
		{name: "zero flow ttl", mutate: func(c *Config) { c.BookingFlowTTL = 0 }, wantErr: "BookingFlowTTL"},
		{name: "deposit above one", mutate: func(c *Config) { c.BookingDepositRate = 1.5 }, wantErr: "BookingDepositRate"},
		{name: "zero guest count", mutate: func(c *Config) { c.DefaultGuestCount = 0 }, wantErr: "DefaultGuestCount"},
		{name: "short flow key", mutate: func(c *Config) { c.FlowTokenKey = base64.StdEncoding.EncodeToString([]byte("short")) }, wantErr: "FlowTokenKey"},
		{name: "flow key not base64", mutate: func(c *Config) { c.FlowTokenKey = "%%%" }, wantErr: "FlowTokenKey"},
		{name: "events without topic", mutate: func(c *Config) { c.EventsTopic = "" }, wantErr: "EventsTopic"},
		{
			name: "events disabled without topic",
			mutate: func(c *Config) {
				c.EventsEnabled = false
				c.EventsTopic = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate_NumbersEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "0"
	cfg.BookingFlowTTL = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "1. ") || !strings.Contains(err.Error(), "2. ") {
		t.Errorf("expected numbered errors, got %q", err.Error())
	}
}

func TestNormalizePaginationLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, DefaultPaginationLimit},
		{-5, DefaultPaginationLimit},
		{25, 25},
		{MaxPaginationLimit, MaxPaginationLimit},
		{MaxPaginationLimit + 1, MaxPaginationLimit},
	}
	for _, tt := range tests {
		if got := NormalizePaginationLimit(tt.in); got != tt.want {
			t.Errorf("NormalizePaginationLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeOffset(t *testing.T) {
	if got := NormalizeOffset(-3); got != 0 {
		t.Errorf("NormalizeOffset(-3) = %d", got)
	}
	if got := NormalizeOffset(40); got != 40 {
		t.Errorf("NormalizeOffset(40) = %d", got)
	}
}

func TestRedactMongoURI(t *testing.T) {
	got := redactMongoURI("mongodb://admin:hunter2@db:27017/venuehub")
	if strings.Contains(got, "hunter2") || strings.Contains(got, "admin") {
		t.Errorf("credentials leaked: %s", got)
	}
	if got != "mongodb://***:***@db:27017/venuehub" {
		t.Errorf("unexpected redaction %q", got)
	}

	plain := "mongodb://localhost:27017"
	if redactMongoURI(plain) != plain {
		t.Errorf("URI without credentials should be unchanged")
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("VENUEHUB_TEST_NUM", "12")
	t.Setenv("VENUEHUB_TEST_BAD_NUM", "twelve")
	t.Setenv("VENUEHUB_TEST_FLOAT", "0.35")
	t.Setenv("VENUEHUB_TEST_BOOL", "false")
	t.Setenv("VENUEHUB_TEST_DURATION", "750ms")

	if got := getEnvNum("VENUEHUB_TEST_NUM", 1); got != 12 {
		t.Errorf("getEnvNum = %d", got)
	}
	if got := getEnvNum("VENUEHUB_TEST_BAD_NUM", 1); got != 1 {
		t.Errorf("getEnvNum should fall back on parse error, got %d", got)
	}
	if got := getEnvFloat("VENUEHUB_TEST_FLOAT", 0.2); got != 0.35 {
		t.Errorf("getEnvFloat = %g", got)
	}
	if got := getEnvBool("VENUEHUB_TEST_BOOL", true); got {
		t.Errorf("getEnvBool = %v", got)
	}
	if got := getEnvDuration("VENUEHUB_TEST_DURATION", time.Second); got != 750*time.Millisecond {
		t.Errorf("getEnvDuration = %s", got)
	}
	if got := getEnvStr("VENUEHUB_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("getEnvStr = %q", got)
	}
}
