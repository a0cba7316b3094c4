package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gfranca/atalho/internal/infrastructure/db"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthResponse is the /healthz payload. It is not enveloped: the health
// dashboard consumes it directly.
type HealthResponse struct {
	OK          bool    `json:"ok"`
	Status      string  `json:"status"`
	MongoStatus string  `json:"mongoStatus"`
	Uptime      float64 `json:"uptime"`
	Version     string  `json:"version"`
	Timestamp   string  `json:"timestamp"`
}

// HealthHandler handles health and metrics endpoints
type HealthHandler struct {
	version   string
	startedAt time.Time
	mongo     *db.Mongo
}

func NewHealthHandler(version string, mongo *db.Mongo) *HealthHandler {
	return &HealthHandler{
		version:   version,
		startedAt: time.Now(),
		mongo:     mongo,
	}
}

// Health reports process uptime and the store connection state.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	mongoStatus := h.mongo.Status(ctx)
	status := "healthy"
	if mongoStatus != "connected" {
		status = "degraded"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(HealthResponse{
		OK:          true,
		Status:      status,
		MongoStatus: mongoStatus,
		Uptime:      time.Since(h.startedAt).Seconds(),
		Version:     h.version,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

// Metrics returns Prometheus metrics
func (h *HealthHandler) Metrics() http.Handler {
	return promhttp.Handler()
}
