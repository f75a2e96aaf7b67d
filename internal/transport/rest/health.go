package rest

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const healthTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck is one dependency probed by /ready and /health. A failing
// critical check takes the service out of rotation. A failing non-critical
// check only reports "degraded"; the rate limiter is one, since
// submissions fail open without it.
type HealthCheck struct {
	Name     string
	Pinger   pinger
	Critical bool
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	version string
	checks  []HealthCheck
}

func NewHealthHandler(version string, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{version: version, checks: checks}
}

// HealthResponse is the body of all three endpoints.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live answers 200 while the process can serve HTTP at all.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 when any critical dependency is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.probe(r.Context(), true)
	writeJSON(w, httpStatus(status), HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health probes every dependency and reports per-component latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.probe(r.Context(), false)
	writeJSON(w, httpStatus(status), HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// probe pings the checks concurrently and folds them into "ok", "degraded"
// or "down".
func (h *HealthHandler) probe(ctx context.Context, criticalOnly bool) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	results := make([]CompStatus, len(h.checks))
	var wg sync.WaitGroup
	for i, c := range h.checks {
		if criticalOnly && !c.Critical {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = ping(ctx, c.Pinger)
		}()
	}
	wg.Wait()

	overall := "ok"
	components := make(map[string]CompStatus, len(h.checks))
	for i, c := range h.checks {
		if criticalOnly && !c.Critical {
			continue
		}
		components[c.Name] = results[i]
		if results[i].Status == "ok" {
			continue
		}
		if c.Critical {
			overall = "down"
		} else if overall == "ok" {
			overall = "degraded"
		}
	}
	return overall, components
}

func ping(ctx context.Context, p pinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func httpStatus(health string) int {
	if health == "down" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
