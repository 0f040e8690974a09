//go:build integration

package testutil

import (
	"os"
	"testing"
	"time"
)

const (
	DefaultHealthCheckTimeout = 30 * time.Second

	DefaultJWTSecret = "integration-secret-with-at-least-32-chars"
)

// TestEnv points the suites at the running services. Every service must be
// started with the same JWT_SECRET and database.
type TestEnv struct {
	MongoURI     string
	DatabaseName string
	VenuesURL    string
	BookingsURL  string
	AccountsURL  string
	JWTSecret    string
}

func NewTestEnv() *TestEnv {
	return &TestEnv{
		MongoURI:     getEnv("TEST_MONGO_URI", DefaultMongoURI),
		DatabaseName: getEnv("TEST_DB_NAME", DefaultDatabaseName),
		VenuesURL:    getEnv("TEST_VENUES_URL", "http://localhost:8080"),
		BookingsURL:  getEnv("TEST_BOOKINGS_URL", "http://localhost:8081"),
		AccountsURL:  getEnv("TEST_ACCOUNTS_URL", "http://localhost:8082"),
		JWTSecret:    getEnv("TEST_JWT_SECRET", DefaultJWTSecret),
	}
}

// Setup resets the database to the migrated catalog and waits for baseURL.
func (e *TestEnv) Setup(t *testing.T, baseURL string) (*MongoHelper, *Client) {
	t.Helper()

	mongo := NewMongoHelper(t, e.MongoURI, e.DatabaseName)
	mongo.CleanDatabase(t)
	mongo.MigrateAndSeed(t)
	t.Cleanup(func() { mongo.Close(t) })

	client := NewClient(baseURL)
	client.WaitForHealthy(t, DefaultHealthCheckTimeout)
	return mongo, client
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
