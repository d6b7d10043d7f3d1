package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/skillcoder/kubesight/internal/infra/metrics"
)

// Service answers the dashboard's read and pod-management operations. It
// holds no state between requests: every call re-reads the cluster, builds
// the view model and discards it after the response.
type Service struct {
	logger    *slog.Logger
	cluster   ClusterRepository
	metrics   MetricsRepository
	tailLines int64
	now       func() time.Time
}

// NewService creates a new dashboard service. tailLines is the default log
// tail length used when a request does not specify one.
func NewService(
	logger *slog.Logger,
	cluster ClusterRepository,
	metricsRepo MetricsRepository,
	tailLines int64,
) *Service {
	return &Service{
		logger:    logger,
		cluster:   cluster,
		metrics:   metricsRepo,
		tailLines: tailLines,
		now:       time.Now,
	}
}

func (s *Service) ListNamespacesQuery(ctx context.Context) ([]string, error) {
	namespaces, err := s.cluster.ListNamespacesQuery(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListNamespaces, err)
	}

	return namespaces, nil
}

// ListPodsQuery lists pods matching the filter as UI-ready summaries. The
// pod list and the usage overlay are fetched concurrently; a failed or
// unavailable metrics fetch degrades the overlay without failing the listing.
func (s *Service) ListPodsQuery(
	ctx context.Context,
	filter FilterCriteria,
) ([]PodSummary, error) {
	namespace := listNamespaceArg(filter.Namespace)

	usageCh := make(chan ClusterUsage, 1)

	go func() {
		usageCh <- s.fetchClusterUsage(ctx, namespace)
	}()

	pods, err := s.cluster.ListPodsQuery(ctx, namespace)

	usage := <-usageCh

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListPods, err)
	}

	return BuildPodSummaries(s.now(), pods, usage, filter), nil
}

// GetPodQuery returns one pod with full container and condition detail,
// metrics attached per container where available.
func (s *Service) GetPodQuery(
	ctx context.Context,
	namespace,
	name string,
) (*PodSummary, error) {
	usageCh := make(chan ContainerUsage, 1)

	go func() {
		usageCh <- s.fetchPodUsage(ctx, namespace, name)
	}()

	pod, err := s.cluster.GetPodQuery(ctx, namespace, name)

	usage := <-usageCh

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGetPod, err)
	}

	summary := BuildPodSummary(s.now(), *pod, usage)

	return &summary, nil
}

func (s *Service) GetPodLogsQuery(
	ctx context.Context,
	namespace,
	name,
	container string,
	tailLines int64,
) (*PodLogs, error) {
	if tailLines <= 0 {
		tailLines = s.tailLines
	}

	logs, err := s.cluster.GetPodLogsQuery(ctx, namespace, name, container, tailLines)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGetPodLogs, err)
	}

	return logs, nil
}

func (s *Service) DeletePodCommand(ctx context.Context, namespace, name string) error {
	if err := s.cluster.DeletePodCommand(ctx, namespace, name); err != nil {
		return fmt.Errorf("%w: %w", ErrDeletePod, err)
	}

	s.logger.InfoContext(ctx, "pod deleted", "namespace", namespace, "pod", name)

	return nil
}

// RestartPodCommand deletes the pod so its owning controller recreates it.
// The result reports whether an owning controller exists; for a bare pod the
// delete is destructive and callers are expected to warn, not this service.
func (s *Service) RestartPodCommand(
	ctx context.Context,
	namespace,
	name string,
) (*RestartResult, error) {
	pod, err := s.cluster.GetPodQuery(ctx, namespace, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRestartPod, err)
	}

	if err := s.cluster.DeletePodCommand(ctx, namespace, name); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRestartPod, err)
	}

	result := &RestartResult{
		Namespace:      namespace,
		Name:           name,
		HasController:  pod.ControllerKind != "",
		ControllerKind: pod.ControllerKind,
		ControllerName: pod.ControllerName,
	}

	s.logger.InfoContext(ctx, "pod restart requested",
		"namespace", namespace,
		"pod", name,
		"hasController", result.HasController,
	)

	return result, nil
}

// fetchClusterUsage never fails: an unavailable metrics API yields a nil
// overlay and the listing proceeds without numbers.
func (s *Service) fetchClusterUsage(ctx context.Context, namespace string) ClusterUsage {
	usage, err := s.metrics.ListPodMetricsQuery(ctx, namespace)
	if err != nil {
		s.logMetricsFailure(ctx, err, "list")

		return nil
	}

	return usage
}

func (s *Service) fetchPodUsage(ctx context.Context, namespace, name string) ContainerUsage {
	usage, err := s.metrics.GetPodMetricsQuery(ctx, namespace, name)
	if err != nil {
		s.logMetricsFailure(ctx, err, "get")

		return nil
	}

	return usage
}

func (s *Service) logMetricsFailure(ctx context.Context, err error, operation string) {
	metrics.RecordMetricsUnavailable(operation)

	var target metricsUnavailable
	if errors.As(err, &target) {
		s.logger.DebugContext(ctx, "metrics unavailable", "operation", operation, "reason", err)

		return
	}

	s.logger.WarnContext(ctx, "metrics fetch failed", "operation", operation, "reason", err)
}

// listNamespaceArg maps the filter's namespace to the cluster adapter's
// argument, where empty means all namespaces.
func listNamespaceArg(namespace string) string {
	if namespace == "all" {
		return ""
	}

	return namespace
}
