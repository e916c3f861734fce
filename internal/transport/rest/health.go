package rest

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const pingTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// Component is a dependency reported by the health endpoints. Failures of
// optional components degrade /health but do not fail /ready.
type Component struct {
	Name     string
	Pinger   pinger
	Optional bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	components []Component
	version    string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, components ...Component) *HealthHandler {
	return &HealthHandler{components: components, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 if every required component answers,
// 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	overall, _ := h.check(r.Context())
	if overall == "down" {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports every component with its latency, plus the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	overall, components := h.check(r.Context())

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// check pings all components concurrently. The overall status is "down" when
// a required component fails and "degraded" when only optional ones do.
func (h *HealthHandler) check(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	type result struct {
		status  CompStatus
		failed  bool
		require bool
	}
	results := make([]result, len(h.components))

	var wg sync.WaitGroup
	for i, c := range h.components {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			if err := c.Pinger.Ping(ctx); err != nil {
				results[i] = result{status: CompStatus{Status: "down"}, failed: true, require: !c.Optional}
				return
			}
			results[i] = result{status: CompStatus{Status: "ok", Latency: time.Since(start).String()}}
		}()
	}
	wg.Wait()

	overall := "ok"
	components := make(map[string]CompStatus, len(results))
	for i, res := range results {
		components[h.components[i].Name] = res.status
		switch {
		case res.failed && res.require:
			overall = "down"
		case res.failed && overall == "ok":
			overall = "degraded"
		}
	}
	return overall, components
}
