package reporter_test

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kubesight/internal/logic/dashboard"
	"github.com/skillcoder/kubesight/internal/logic/reporter"
)

type fakeLister struct {
	pods  []dashboard.Pod
	err   error
	calls atomic.Int64
}

func (f *fakeLister) ListPodsQuery(_ context.Context, _ string) ([]dashboard.Pod, error) {
	f.calls.Add(1)

	return f.pods, f.err
}

type fakeParser struct {
	err   error
	delay time.Duration
	calls atomic.Int64
}

func (f *fakeParser) NextAfter(_, _ string, after time.Time) (time.Time, error) {
	if f.err != nil {
		return time.Time{}, f.err
	}

	// First occurrence fires almost immediately, later ones far in the future
	// so a test observes exactly one report.
	if f.calls.Add(1) == 1 {
		return after.Add(f.delay), nil
	}

	return after.Add(time.Hour), nil
}

func TestService_Start(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	t.Run("invalid schedule fails start", func(t *testing.T) {
		t.Parallel()

		parser := &fakeParser{err: errors.New("bad spec")}
		svc := reporter.NewService(logger, &fakeLister{}, parser, "bad", "")

		require.Error(t, svc.Start(t.Context()))
	})

	t.Run("ping fails before start", func(t *testing.T) {
		t.Parallel()

		svc := reporter.NewService(logger, &fakeLister{}, &fakeParser{delay: time.Hour}, "0 * * * *", "")

		require.Error(t, svc.Ping(t.Context()))
	})
}

func TestService_ReportsOnSchedule(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	lister := &fakeLister{pods: []dashboard.Pod{
		{Namespace: "web", Name: "api-1"},
		{Namespace: "web", Name: "api-2"},
		{Namespace: "db", Name: "postgres-0"},
	}}
	parser := &fakeParser{delay: 10 * time.Millisecond}
	svc := reporter.NewService(logger, lister, parser, "* * * * *", "UTC")

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	require.NoError(t, svc.Start(ctx))

	select {
	case <-svc.Ready():
	case <-time.After(time.Second):
		t.Fatal("reporter did not become ready")
	}

	require.NoError(t, svc.Ping(t.Context()))

	require.Eventually(t, func() bool {
		return lister.calls.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, svc.Shutdown(t.Context()))
}

func TestService_ListFailureKeepsSchedule(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	lister := &fakeLister{err: errors.New("cluster unreachable")}
	parser := &fakeParser{delay: 10 * time.Millisecond}
	svc := reporter.NewService(logger, lister, parser, "* * * * *", "")

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	require.NoError(t, svc.Start(ctx))
	<-svc.Ready()

	require.Eventually(t, func() bool {
		return lister.calls.Load() == 1
	}, time.Second, 5*time.Millisecond)

	// The loop survives the failed listing and schedules the next occurrence.
	require.Eventually(t, func() bool {
		return parser.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, svc.Shutdown(t.Context()))
}

func TestService_ShutdownIdempotent(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	svc := reporter.NewService(logger, &fakeLister{}, &fakeParser{delay: time.Hour}, "0 * * * *", "")

	ctx, cancel := context.WithCancel(t.Context())
	require.NoError(t, svc.Start(ctx))
	<-svc.Ready()

	cancel()

	require.NoError(t, svc.Shutdown(t.Context()))
	require.NoError(t, svc.Shutdown(t.Context()))
}
