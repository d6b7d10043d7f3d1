package reporter

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/skillcoder/kubesight/internal/infra/metrics"
	"github.com/skillcoder/kubesight/internal/infra/shutdown"
)

// Service walks the cluster on a cron schedule and publishes a per-namespace
// pod census to the log and the namespace gauge. It is optional: the service
// only exists when a schedule is configured.
type Service struct {
	logger     *slog.Logger
	cluster    podLister
	parser     scheduleParser
	schedule   string
	tz         string
	now        func() time.Time
	ready      chan struct{}
	doneCh     chan struct{}
	started    atomic.Bool
	inShutdown atomic.Bool
}

// NewService creates a new report service for the given cron schedule.
func NewService(
	logger *slog.Logger,
	cluster podLister,
	parser scheduleParser,
	schedule,
	tz string,
) *Service {
	return &Service{
		logger:   logger,
		cluster:  cluster,
		parser:   parser,
		schedule: schedule,
		tz:       tz,
		now:      time.Now,
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

var _ shutdown.Shutdowner = (*Service)(nil)

// Name returns the name of the reporter component
func (s *Service) Name() string {
	return "cluster-reporter"
}

// Ping returns nil once the report loop is scheduled.
func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		return nil
	default:
		return fmt.Errorf("reporter is not scheduled yet")
	}
}

// PingerReadyCritical marks the reporter as non-critical for readiness.
func (s *Service) PingerReadyCritical() bool {
	return false
}

// PingerCritical marks the reporter as non-critical for health.
func (s *Service) PingerCritical() bool {
	return false
}

// Start validates the schedule and starts the report loop in a goroutine.
func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "reporter is shutting down, skipping start")

		return nil
	}

	next, err := s.parser.NextAfter(s.schedule, s.tz, s.now())
	if err != nil {
		return fmt.Errorf("schedule first report: %w", err)
	}

	s.started.Store(true)

	go s.run(ctx, next)

	return nil
}

// Ready returns a channel that is closed when the report loop is scheduled
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown gracefully stops the report loop
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "reporter is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "reporter shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down reporter")

	if !s.started.Load() {
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before report loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "report loop exited")
	}

	return nil
}

// run fires a report at every scheduled occurrence until the context is done.
func (s *Service) run(ctx context.Context, next time.Time) {
	defer close(s.doneCh)

	logger := s.logger.With("component", "reporter-run")

	logger.InfoContext(ctx, "report loop scheduled",
		"schedule", s.schedule,
		"next", next,
	)

	close(s.ready)

	timer := time.NewTimer(time.Until(next))
	defer timer.Stop()

	for {
		if s.inShutdown.Load() {
			logger.InfoContext(ctx, "terminating report loop")

			return
		}

		select {
		case <-timer.C:
			s.report(ctx, logger)

			var err error

			next, err = s.parser.NextAfter(s.schedule, s.tz, s.now())
			if err != nil {
				logger.ErrorContext(ctx, "failed to schedule next report", "reason", err)

				return
			}

			timer.Reset(time.Until(next))
		case <-ctx.Done():
			logger.InfoContext(ctx, "terminating report loop")

			return
		}
	}
}

// report counts pods per namespace across the whole cluster. A failed listing
// skips this occurrence; the loop keeps its schedule.
func (s *Service) report(ctx context.Context, logger *slog.Logger) {
	pods, err := s.cluster.ListPodsQuery(ctx, "")
	if err != nil {
		logger.WarnContext(ctx, "cluster report skipped", "reason", err)

		return
	}

	perNamespace := make(map[string]int)
	for i := range pods {
		perNamespace[pods[i].Namespace]++
	}

	for namespace, count := range perNamespace {
		metrics.SetReportNamespacePods(namespace, count)
	}

	logger.InfoContext(ctx, "cluster report",
		"pods", len(pods),
		"namespaces", len(perNamespace),
	)
}
