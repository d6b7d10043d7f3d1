package pinger_test

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kubesight/internal/infra/pinger"
)

type fakePinger struct {
	name  string
	err   error
	calls atomic.Int64
}

func (f *fakePinger) Name() string {
	return f.name
}

func (f *fakePinger) Ping(_ context.Context) error {
	f.calls.Add(1)

	return f.err
}

type nonCriticalPinger struct {
	fakePinger
}

func (f *nonCriticalPinger) PingerReadyCritical() bool {
	return false
}

func (f *nonCriticalPinger) PingerCritical() bool {
	return false
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	t.Run("nil pinger returns error", func(t *testing.T) {
		t.Parallel()

		svc := pinger.New(logger, time.Second)
		require.Error(t, svc.Register(nil))
	})

	t.Run("duplicate name returns error", func(t *testing.T) {
		t.Parallel()

		svc := pinger.New(logger, time.Second)
		require.NoError(t, svc.Register(&fakePinger{name: "a"}))

		err := svc.Register(&fakePinger{name: "a"})
		require.Error(t, err)
		require.ErrorIs(t, err, pinger.ErrPingerAlreadyRegistered)
	})
}

func TestService_GetStats(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	t.Run("unknown pinger returns error", func(t *testing.T) {
		t.Parallel()

		svc := pinger.New(logger, time.Second)

		_, err := svc.GetStats("missing")
		require.Error(t, err)
		require.ErrorIs(t, err, pinger.ErrPingerNotFound)
	})

	t.Run("registered but never run is ready", func(t *testing.T) {
		t.Parallel()

		svc := pinger.New(logger, time.Second)
		require.NoError(t, svc.Register(&fakePinger{name: "a"}))

		stats, err := svc.GetStats("a")
		require.NoError(t, err)
		require.True(t, stats.IsReady)
		require.True(t, stats.IsHealthy)
		require.Zero(t, stats.SuccessCount)
		require.Zero(t, stats.ErrorCount)
	})
}

func TestService_RunUpdatesStats(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	t.Run("successful ping counted", func(t *testing.T) {
		t.Parallel()

		svc := pinger.New(logger, time.Hour)
		p := &fakePinger{name: "ok"}
		require.NoError(t, svc.Register(p))

		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		require.NoError(t, svc.Start(ctx))

		select {
		case <-svc.Ready():
		case <-time.After(time.Second):
			t.Fatal("pinger service did not become ready")
		}

		stats, err := svc.GetStats("ok")
		require.NoError(t, err)
		require.True(t, stats.IsHealthy)
		require.NoError(t, stats.LastError)
		require.Equal(t, uint64(1), stats.SuccessCount)
		require.Equal(t, int64(1), p.calls.Load())

		cancel()
		require.NoError(t, svc.Shutdown(t.Context()))
	})

	t.Run("failing critical ping reported unhealthy", func(t *testing.T) {
		t.Parallel()

		svc := pinger.New(logger, time.Hour)
		p := &fakePinger{name: "bad", err: errors.New("connection refused")}
		require.NoError(t, svc.Register(p))

		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		require.NoError(t, svc.Start(ctx))
		<-svc.Ready()

		stats, err := svc.GetStats("bad")
		require.NoError(t, err)
		require.False(t, stats.IsHealthy)
		require.False(t, stats.IsReady)
		require.Error(t, stats.LastError)
		require.NotNil(t, stats.LastErrorSnapshot)
		require.Equal(t, uint64(1), stats.ErrorCount)

		cancel()
		require.NoError(t, svc.Shutdown(t.Context()))
	})

	t.Run("failing non-critical ping stays ready", func(t *testing.T) {
		t.Parallel()

		svc := pinger.New(logger, time.Hour)
		p := &nonCriticalPinger{fakePinger: fakePinger{name: "optional", err: errors.New("boom")}}
		require.NoError(t, svc.Register(p))

		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		require.NoError(t, svc.Start(ctx))
		<-svc.Ready()

		stats, err := svc.GetStats("optional")
		require.NoError(t, err)
		require.True(t, stats.IsReady)
		require.True(t, stats.IsHealthy)
		require.Error(t, stats.LastError)

		cancel()
		require.NoError(t, svc.Shutdown(t.Context()))
	})
}

func TestService_GetAllStats(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	svc := pinger.New(logger, time.Hour)
	require.NoError(t, svc.Register(&fakePinger{name: "a"}))
	require.NoError(t, svc.Register(&fakePinger{name: "b"}))

	all := svc.GetAllStats()
	require.Len(t, all, 2)
	require.Contains(t, all, "a")
	require.Contains(t, all, "b")
}

func TestService_ShutdownIdempotent(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	svc := pinger.New(logger, time.Hour)

	ctx, cancel := context.WithCancel(t.Context())
	require.NoError(t, svc.Start(ctx))
	<-svc.Ready()

	cancel()

	require.NoError(t, svc.Shutdown(t.Context()))
	require.NoError(t, svc.Shutdown(t.Context()))
}
