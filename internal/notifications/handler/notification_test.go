package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"venuehub/pkg/auth"
	httputil "venuehub/pkg/http"
	"venuehub/pkg/kafka"
	"venuehub/pkg/logger"
	"venuehub/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockNotificationService struct {
	gotUser  string
	gotLimit int
}

func (m *mockNotificationService) Handle(context.Context, kafka.Message) error { return nil }

func (m *mockNotificationService) GetAll(_ context.Context, userID string, limit int, _ int64) ([]*model.Notification, int64, error) {
	m.gotUser, m.gotLimit = userID, limit
	return []*model.Notification{{Title: "Booking successful!"}}, 1, nil
}

func TestGetAll(t *testing.T) {
	svc := &mockNotificationService{}
	router := httprouter.New()
	NewNotificationHandler(svc, logger.Discard()).RegisterRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: status = %d, want 401", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications?limit=3", nil)
	req = req.WithContext(auth.WithIdentity(req.Context(), &auth.Identity{UserID: "user-1"}))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if svc.gotUser != "user-1" || svc.gotLimit != 3 {
		t.Errorf("service got user=%q limit=%d", svc.gotUser, svc.gotLimit)
	}
	var body httputil.PaginatedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.TotalCount != 1 {
		t.Errorf("total_count = %d", body.TotalCount)
	}
}
