package handlers

import (
	"context"
	"net/http"
	"time"

	"momgyeot-ai/internal/contextutil"
)

const (
	checkOK            = "ok"
	checkError         = "error"
	checkNotConfigured = "not_configured"

	healthCheckTimeout = 5 * time.Second
)

// Pinger reports whether a backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports the state of the record store and the answer generator.
type HealthHandler struct {
	store          Pinger
	generatorReady bool
	timeout        time.Duration
}

// NewHealthHandler creates a new HealthHandler. A nil store reports not_configured.
func NewHealthHandler(store Pinger, generatorReady bool) *HealthHandler {
	return &HealthHandler{
		store:          store,
		generatorReady: generatorReady,
		timeout:        healthCheckTimeout,
	}
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
	// StoreLatencyMS is the duration of the store ping, when one was made.
	StoreLatencyMS *int64 `json:"storeLatencyMs,omitempty"`
}

// ServeHTTP answers 503 only when a configured store cannot be pinged.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks: map[string]string{
			"store":     checkNotConfigured,
			"generator": checkNotConfigured,
		},
	}
	if h.generatorReady {
		resp.Checks["generator"] = checkOK
	}

	status := http.StatusOK
	if h.store != nil {
		latency, err := h.pingStore(ctx)
		resp.StoreLatencyMS = &latency
		if err != nil {
			contextutil.LoggerFromContext(ctx).WarnContext(ctx, "store health check failed", "error", err, "duration_ms", latency)
			resp.Checks["store"] = checkError
			resp.Status = "unhealthy"
			status = http.StatusServiceUnavailable
		} else {
			resp.Checks["store"] = checkOK
		}
	}

	writeJSON(ctx, w, status, resp)
}

func (h *HealthHandler) pingStore(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	err := h.store.Ping(ctx)
	return time.Since(start).Milliseconds(), err
}
