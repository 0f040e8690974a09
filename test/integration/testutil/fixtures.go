//go:build integration

package testutil

import (
	"testing"
	"time"

	"venuehub/internal/bookings/flow"
	"venuehub/pkg/auth"
)

// Token signs a bearer token for id with the secret the services share.
func (e *TestEnv) Token(t *testing.T, id auth.Identity) string {
	t.Helper()
	token, err := auth.NewVerifier(e.JWTSecret).Issue(id, time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

func Ada() auth.Identity {
	return auth.Identity{UserID: "it-user-ada", Email: "ada@example.com", FullName: "Ada Lovelace"}
}

func Grace() auth.Identity {
	return auth.Identity{UserID: "it-user-grace", Email: "grace@example.com", FullName: "Grace Hopper"}
}

// DetailsBuilder builds a valid details step submission for the Grand Palace.
type DetailsBuilder struct {
	d flow.Details
}

func NewDetailsBuilder() *DetailsBuilder {
	return &DetailsBuilder{
		d: flow.Details{
			Date:   "2024-06-15",
			Guests: 200,
			Name:   "Ada Lovelace",
			Email:  "ada@example.com",
			Phone:  "+12025550143",
		},
	}
}

func (b *DetailsBuilder) WithDate(date string) *DetailsBuilder {
	b.d.Date = date
	return b
}

func (b *DetailsBuilder) WithGuests(guests int) *DetailsBuilder {
	b.d.Guests = guests
	return b
}

func (b *DetailsBuilder) WithPhone(phone string) *DetailsBuilder {
	b.d.Phone = phone
	return b
}

func (b *DetailsBuilder) Build() flow.Details {
	return b.d
}
