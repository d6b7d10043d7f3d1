package appstate

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skillcoder/kubesight/internal/infra/pinger"
)

type stubState struct {
	healthy   bool
	ready     bool
	state     State
	uptime    time.Duration
	startTime time.Time
	stats     map[string]*pinger.Statistics
}

func (s *stubState) IsHealthy() bool { return s.healthy }

func (s *stubState) IsReady() bool { return s.ready }

func (s *stubState) GetState() State { return s.state }

func (s *stubState) GetUptime() time.Duration { return s.uptime }

func (s *stubState) GetStartTime() time.Time { return s.startTime }

func (s *stubState) GetAllStats() map[string]*pinger.Statistics { return s.stats }

func serveAndAssertStatus(t *testing.T, handler http.HandlerFunc, path string, wantCode int) {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)

	handler.ServeHTTP(rec, req)

	if rec.Code != wantCode {
		t.Errorf("want status %d, got %d", wantCode, rec.Code)
	}
}

//nolint:dupl // healthz and readyz tests follow same pattern for readability
func TestHandleHealthz(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	t.Run("healthy returns 200", func(t *testing.T) {
		t.Parallel()

		s := &stubState{healthy: true}

		serveAndAssertStatus(t, HandleHealthz(logger, s), "/-/healthz", http.StatusOK)
	})

	t.Run("unhealthy returns 503", func(t *testing.T) {
		t.Parallel()

		s := &stubState{healthy: false}

		serveAndAssertStatus(t, HandleHealthz(logger, s), "/-/healthz", http.StatusServiceUnavailable)
	})

	t.Run("unhealthy check returns 503", func(t *testing.T) {
		t.Parallel()

		s := &stubState{
			healthy: true,
			stats: map[string]*pinger.Statistics{
				"http-server": {IsHealthy: false, IsReady: true, LastError: errors.New("not ready")},
			},
		}

		serveAndAssertStatus(t, HandleHealthz(logger, s), "/-/healthz", http.StatusServiceUnavailable)
	})
}

//nolint:dupl // healthz and readyz tests follow same pattern for readability
func TestHandleReadyz(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	t.Run("ready returns 200", func(t *testing.T) {
		t.Parallel()

		s := &stubState{ready: true}

		serveAndAssertStatus(t, HandleReadyz(logger, s), "/-/readyz", http.StatusOK)
	})

	t.Run("not ready returns 503", func(t *testing.T) {
		t.Parallel()

		s := &stubState{ready: false}

		serveAndAssertStatus(t, HandleReadyz(logger, s), "/-/readyz", http.StatusServiceUnavailable)
	})

	t.Run("not ready check returns 503", func(t *testing.T) {
		t.Parallel()

		s := &stubState{
			ready: true,
			stats: map[string]*pinger.Statistics{
				"metrics-server": {IsHealthy: true, IsReady: false},
			},
		}

		serveAndAssertStatus(t, HandleReadyz(logger, s), "/-/readyz", http.StatusServiceUnavailable)
	})
}

func TestHandleStatus(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	giveState := StateRunning
	giveStartTime := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	giveUptime := 5 * time.Second

	s := &stubState{
		state:     giveState,
		uptime:    giveUptime,
		startTime: giveStartTime,
		stats: map[string]*pinger.Statistics{
			"http-server": {IsHealthy: true, IsReady: true, LastLatency: time.Millisecond},
		},
	}

	handler := HandleStatus(logger, s)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/-/status", http.NoBody)

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want status %d, got %d", http.StatusOK, rec.Code)
	}

	if rec.Header().Get("Content-Type") != "application/json" {
		t.Errorf("want Content-Type application/json, got %s", rec.Header().Get("Content-Type"))
	}

	var body struct {
		State     string  `json:"state"`
		Uptime    string  `json:"uptime"`
		StartTime string  `json:"startTime"`
		UptimeSec float64 `json:"uptimeSeconds"`
		Checks    map[string]struct {
			Healthy bool `json:"healthy"`
			Ready   bool `json:"ready"`
		} `json:"checks"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if body.State != string(giveState) {
		t.Errorf("want state %q, got %q", giveState, body.State)
	}

	if body.Uptime != giveUptime.String() {
		t.Errorf("want uptime %q, got %q", giveUptime, body.Uptime)
	}

	if body.UptimeSec != giveUptime.Seconds() {
		t.Errorf("want uptimeSeconds %f, got %f", giveUptime.Seconds(), body.UptimeSec)
	}

	check, ok := body.Checks["http-server"]
	if !ok {
		t.Fatal("want http-server check in status response")
	}

	if !check.Healthy || !check.Ready {
		t.Errorf("want healthy and ready check, got %+v", check)
	}
}
