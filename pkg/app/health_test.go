package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/julienschmidt/httprouter"

	"venuehub/pkg/logger"
)

func TestHealthHandler(t *testing.T) {
	down := errors.New("no reachable servers")

	tests := []struct {
		name       string
		path       string
		deps       map[string]error
		wantStatus int
		wantBody   HealthResponse
	}{
		{
			name:       "health",
			path:       "/health",
			deps:       map[string]error{"mongo": nil},
			wantStatus: http.StatusOK,
			wantBody:   HealthResponse{Status: "ok", Service: "venues"},
		},
		{
			name:       "health ignores dependencies",
			path:       "/health",
			deps:       map[string]error{"mongo": down},
			wantStatus: http.StatusOK,
			wantBody:   HealthResponse{Status: "ok", Service: "venues"},
		},
		{
			name:       "ready",
			path:       "/ready",
			deps:       map[string]error{"mongo": nil, "events": nil},
			wantStatus: http.StatusOK,
			wantBody:   HealthResponse{Status: "ready", Service: "venues", Checks: map[string]string{"mongo": "ok", "events": "ok"}},
		},
		{
			name:       "ready with one dependency down",
			path:       "/ready",
			deps:       map[string]error{"mongo": down, "events": nil},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   HealthResponse{Status: "unavailable", Service: "venues", Checks: map[string]string{"mongo": "error", "events": "ok"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler("venues", logger.Discard())
			for name, err := range tt.deps {
				err := err
				h.AddCheck(name, func(context.Context) error { return err })
			}
			router := httprouter.New()
			h.RegisterRoutes(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var body HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if !reflect.DeepEqual(body, tt.wantBody) {
				t.Errorf("body = %+v, want %+v", body, tt.wantBody)
			}
		})
	}
}
