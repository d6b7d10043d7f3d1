package httpserver_test

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kubesight/internal/httpserver"
	"github.com/skillcoder/kubesight/internal/infra/appstate"
	"github.com/skillcoder/kubesight/internal/infra/pinger"
	"github.com/skillcoder/kubesight/internal/logic/dashboard"
)

type noopDashboard struct{}

func (noopDashboard) ListNamespacesQuery(_ context.Context) ([]string, error) {
	return nil, nil
}

func (noopDashboard) ListPodsQuery(
	_ context.Context,
	_ dashboard.FilterCriteria,
) ([]dashboard.PodSummary, error) {
	return nil, nil
}

func (noopDashboard) GetPodQuery(_ context.Context, _, _ string) (*dashboard.PodSummary, error) {
	return &dashboard.PodSummary{}, nil
}

func (noopDashboard) GetPodLogsQuery(
	_ context.Context,
	_,
	_,
	_ string,
	_ int64,
) (*dashboard.PodLogs, error) {
	return &dashboard.PodLogs{}, nil
}

func (noopDashboard) DeletePodCommand(_ context.Context, _, _ string) error {
	return nil
}

func (noopDashboard) RestartPodCommand(_ context.Context, _, _ string) (*dashboard.RestartResult, error) {
	return &dashboard.RestartResult{}, nil
}

func TestNew(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	quit := make(chan os.Signal, 1)

	quit <- syscall.SIGTERM

	close(quit)

	pingerSvc := pinger.New(logger, time.Second)
	appState := appstate.New(logger, time.Now(), "", quit, pingerSvc)

	t.Run("empty port uses default", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New(logger, appState, noopDashboard{}, "")
		require.NotNil(t, srv)
	})

	t.Run("non-empty port is used", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New(logger, appState, noopDashboard{}, "9090")
		require.NotNil(t, srv)
	})
}

func TestServer_Name(t *testing.T) {
	t.Parallel()

	logger := slog.Default()
	quit := make(chan os.Signal, 1)
	pingerSvc := pinger.New(logger, time.Second)
	appState := appstate.New(logger, time.Now(), "", quit, pingerSvc)
	srv := httpserver.New(logger, appState, noopDashboard{}, "")

	require.Equal(t, "http-server", srv.Name())
}

func TestServer_Ping(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	t.Run("before ready returns error", func(t *testing.T) {
		t.Parallel()

		quit := make(chan os.Signal, 1)
		pingerSvc := pinger.New(logger, time.Second)
		appState := appstate.New(logger, time.Now(), "", quit, pingerSvc)
		srv := httpserver.New(logger, appState, noopDashboard{}, "")

		err := srv.Ping(t.Context())
		require.Error(t, err)
	})

	t.Run("after ready returns nil", func(t *testing.T) {
		t.Parallel()

		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		pingerSvc := pinger.New(logger, time.Second)
		appState := appstate.New(logger, time.Now(), "", quit, pingerSvc)
		require.NoError(t, appState.SetStarting(t.Context()))
		require.NoError(t, appState.SetRunning(t.Context()))

		srv := httpserver.New(logger, appState, noopDashboard{}, "0")

		ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)

		defer cancel()

		require.NoError(t, srv.Start(ctx))

		select {
		case <-srv.Ready():
		case <-time.After(1 * time.Second):
			t.Fatal("server did not become ready")
		}

		require.NoError(t, srv.Ping(t.Context()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer shutdownCancel()

		_ = srv.Shutdown(shutdownCtx)
	})
}

func TestMetricsServer(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	srv := httpserver.NewMetricsServer(logger, "0")
	require.Equal(t, "metrics-server", srv.Name())
	require.Error(t, srv.Ping(t.Context()))

	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
	defer cancel()

	require.NoError(t, srv.Start(ctx))

	select {
	case <-srv.Ready():
	case <-time.After(1 * time.Second):
		t.Fatal("metrics server did not become ready")
	}

	require.NoError(t, srv.Ping(t.Context()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	require.NoError(t, srv.Shutdown(shutdownCtx))
}
