//go:build integration

package accounts

import (
	"net/http"
	"testing"

	"venuehub/pkg/model"
	"venuehub/test/integration/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*testutil.TestEnv, *testutil.Client) {
	t.Helper()
	env := testutil.NewTestEnv()
	_, client := env.Setup(t, env.AccountsURL)
	return env, client
}

func TestWishlist(t *testing.T) {
	env, client := setup(t)
	ada := client.As(env.Token(t, testutil.Ada()))
	grace := client.As(env.Token(t, testutil.Grace()))

	testutil.AssertStatusCode(t, client.GET(t, "/api/v1/wishlist"), http.StatusUnauthorized)

	resp := ada.POST(t, "/api/v1/wishlist", map[string]string{"venue_id": "urban-loft"})
	testutil.AssertStatusCode(t, resp, http.StatusCreated)
	var item model.WishlistItem
	resp.DecodeData(t, &item)
	assert.Equal(t, "San Francisco", item.VenueCity)
	assert.Equal(t, 6200.0, item.VenuePrice)

	resp = ada.POST(t, "/api/v1/wishlist", map[string]string{"venue_id": "urban-loft"})
	testutil.AssertStatusCode(t, resp, http.StatusConflict)

	resp = ada.POST(t, "/api/v1/wishlist", map[string]string{"venue_id": "atlantis"})
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)

	testutil.AssertStatusCode(t, ada.POST(t, "/api/v1/wishlist", map[string]string{"venue_id": "mountain-lodge"}), http.StatusCreated)

	resp = ada.GET(t, "/api/v1/wishlist")
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	var items []model.WishlistItem
	resp.DecodeData(t, &items)
	require.Len(t, items, 2)
	assert.Equal(t, "mountain-lodge", items[0].VenueID)

	resp = grace.GET(t, "/api/v1/wishlist")
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	items = nil
	resp.DecodeData(t, &items)
	assert.Empty(t, items)

	testutil.AssertStatusCode(t, grace.DELETE(t, "/api/v1/wishlist/venue/urban-loft"), http.StatusNotFound)
	testutil.AssertStatusCode(t, ada.DELETE(t, "/api/v1/wishlist/venue/urban-loft"), http.StatusNoContent)
	testutil.AssertStatusCode(t, ada.DELETE(t, "/api/v1/wishlist/venue/urban-loft"), http.StatusNotFound)
}

func TestProfile(t *testing.T) {
	env, client := setup(t)
	ada := client.As(env.Token(t, testutil.Ada()))

	resp := ada.GET(t, "/api/v1/profile")
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	var profile model.Profile
	resp.DecodeData(t, &profile)
	assert.Equal(t, testutil.Ada().UserID, profile.ID)
	assert.Equal(t, "Ada Lovelace", profile.FullName)
	assert.Equal(t, "ada@example.com", profile.Email)

	resp = ada.PATCH(t, "/api/v1/profile", map[string]string{"phone": "+1 (650) 253-0000"})
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	resp.DecodeData(t, &profile)
	assert.Equal(t, "+16502530000", profile.Phone)
	assert.Equal(t, "Ada Lovelace", profile.FullName)

	testutil.AssertStatusCode(t, ada.PATCH(t, "/api/v1/profile", map[string]string{}), http.StatusBadRequest)
	testutil.AssertStatusCode(t, ada.PATCH(t, "/api/v1/profile", map[string]string{"avatar_url": "not a url"}), http.StatusUnprocessableEntity)
}

func TestNotifications_RequireIdentity(t *testing.T) {
	env, client := setup(t)

	testutil.AssertStatusCode(t, client.GET(t, "/api/v1/notifications"), http.StatusUnauthorized)

	resp := client.As(env.Token(t, testutil.Grace())).GET(t, "/api/v1/notifications?limit=5")
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	page := testutil.DecodePage[model.Notification](t, resp)
	assert.Equal(t, 5, page.Limit)
}
