package appstate

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/kubesight/internal/infra/pinger"
)

type checkStatus struct {
	Healthy     bool      `json:"healthy"`
	Ready       bool      `json:"ready"`
	LastRun     time.Time `json:"lastRun"`
	LastLatency string    `json:"lastLatency"`
	LastError   string    `json:"lastError,omitempty"`
}

type statusResponse struct {
	State     string                 `json:"state"`
	Uptime    string                 `json:"uptime"`
	StartTime time.Time              `json:"startTime"`
	UptimeSec float64                `json:"uptimeSeconds"`
	Checks    map[string]checkStatus `json:"checks,omitempty"`
}

// HandleHealthz returns an http.HandlerFunc for the /-/healthz endpoint
func HandleHealthz(
	logger *slog.Logger,
	appState healthChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := middleware.GetReqID(ctx)
		logger = logger.With("traceID", requestID)

		if !appState.IsHealthy() {
			w.WriteHeader(http.StatusServiceUnavailable)
			logger.DebugContext(ctx, "health check failed")

			return
		}

		for name, stats := range appState.GetAllStats() {
			if !stats.IsHealthy {
				w.WriteHeader(http.StatusServiceUnavailable)
				logger.DebugContext(ctx, "health check failed", "check", name, "reason", stats.LastError)

				return
			}
		}

		w.WriteHeader(http.StatusOK)
		logger.DebugContext(ctx, "health check passed")
	}
}

// HandleReadyz returns an http.HandlerFunc for the /-/readyz endpoint
func HandleReadyz(
	logger *slog.Logger,
	appState readyChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := middleware.GetReqID(ctx)
		logger = logger.With("traceID", requestID)

		if !appState.IsReady() {
			w.WriteHeader(http.StatusServiceUnavailable)
			logger.DebugContext(ctx, "readiness check failed")

			return
		}

		for name, stats := range appState.GetAllStats() {
			if !stats.IsReady {
				w.WriteHeader(http.StatusServiceUnavailable)
				logger.DebugContext(ctx, "readiness check failed", "check", name, "reason", stats.LastError)

				return
			}
		}

		w.WriteHeader(http.StatusOK)
		logger.DebugContext(ctx, "readiness check passed")
	}
}

// HandleStatus returns an http.HandlerFunc for the /-/status endpoint
func HandleStatus(
	logger *slog.Logger,
	appState statusGetter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := middleware.GetReqID(ctx)
		logger = logger.With("traceID", requestID)

		state := appState.GetState()
		uptime := appState.GetUptime()
		startTime := appState.GetStartTime()

		response := statusResponse{
			State:     string(state),
			Uptime:    uptime.String(),
			StartTime: startTime,
			UptimeSec: uptime.Seconds(),
			Checks:    toCheckStatuses(appState.GetAllStats()),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.ErrorContext(ctx, "failed to encode status response",
				"error", err,
			)

			return
		}

		logger.DebugContext(ctx, "status response sent",
			"state", string(state),
			"uptime", uptime.String(),
		)
	}
}

func toCheckStatuses(all map[string]*pinger.Statistics) map[string]checkStatus {
	if len(all) == 0 {
		return nil
	}

	checks := make(map[string]checkStatus, len(all))

	for name, stats := range all {
		check := checkStatus{
			Healthy:     stats.IsHealthy,
			Ready:       stats.IsReady,
			LastRun:     stats.LastRun,
			LastLatency: stats.LastLatency.String(),
		}

		if stats.LastError != nil {
			check.LastError = stats.LastError.Error()
		}

		checks[name] = check
	}

	return checks
}
