package app

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"

	httputil "venuehub/pkg/http"
	"venuehub/pkg/logger"
)

const readinessTimeout = 2 * time.Second

// Check reports whether one dependency can serve traffic.
type Check func(ctx context.Context) error

type HealthResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// HealthHandler answers liveness unconditionally and readiness by running
// every registered check in parallel.
type HealthHandler struct {
	service string
	deps    map[string]Check
	log     *logger.Logger
}

func NewHealthHandler(service string, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		deps:    make(map[string]Check),
		log:     log,
	}
}

// MongoCheck pings the primary.
func MongoCheck(client *mongo.Client) Check {
	return func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	}
}

func (h *HealthHandler) AddCheck(name string, check Check) {
	h.deps[name] = check
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.write(w, "Health", http.StatusOK, HealthResponse{Status: "ok", Service: h.service})
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	checks, healthy := h.runChecks(ctx, r.URL.Path)
	if !healthy {
		h.write(w, "Ready", http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Service: h.service, Checks: checks})
		return
	}
	h.write(w, "Ready", http.StatusOK, HealthResponse{Status: "ready", Service: h.service, Checks: checks})
}

func (h *HealthHandler) runChecks(ctx context.Context, path string) (map[string]string, bool) {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		checks  = make(map[string]string, len(h.deps))
		healthy = true
	)
	for name, check := range h.deps {
		wg.Add(1)
		go func(name string, check Check) {
			defer wg.Done()
			err := check(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				h.log.Error("Readiness check failed", "check", name, "path", path, "error", err)
				checks[name] = "error"
				healthy = false
				return
			}
			checks[name] = "ok"
		}(name, check)
	}
	wg.Wait()
	return checks, healthy
}

func (h *HealthHandler) write(w http.ResponseWriter, handler string, status int, body HealthResponse) {
	if err := httputil.WriteJSON(w, status, body); err != nil {
		h.log.Error("failed to write JSON response", "handler", handler, "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
