package metricsapi

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/skillcoder/kubesight/internal/logic/dashboard"
)

type adapter struct {
	logger    *slog.Logger
	clientset metricsv.Interface
	timeout   time.Duration
}

// New creates a new metrics adapter over the resource-metrics API. The API is
// an optional cluster extension: every failure mode folds into the
// metrics-unavailable signal so the dashboard stays fully functional without
// metrics infrastructure.
func New(
	logger *slog.Logger,
	clientset metricsv.Interface,
	timeout time.Duration,
) dashboard.MetricsRepository {
	return &adapter{
		logger:    logger,
		clientset: clientset,
		timeout:   timeout,
	}
}

var _ dashboard.MetricsRepository = (*adapter)(nil)

func (a *adapter) GetPodMetricsQuery(
	ctx context.Context,
	namespace,
	name string,
) (dashboard.ContainerUsage, error) {
	ctx, cancel := a.boundedContext(ctx)
	defer cancel()

	podMetrics, err := a.clientset.MetricsV1beta1().PodMetricses(namespace).Get(
		ctx,
		name,
		metav1.GetOptions{},
	)
	if err != nil {
		return nil, fmt.Errorf("get pod metrics: %w: %w", errMetricsUnavailable, err)
	}

	return toContainerUsage(podMetrics), nil
}

func (a *adapter) ListPodMetricsQuery(
	ctx context.Context,
	namespace string,
) (dashboard.ClusterUsage, error) {
	ctx, cancel := a.boundedContext(ctx)
	defer cancel()

	metricsList, err := a.clientset.MetricsV1beta1().PodMetricses(namespace).List(
		ctx,
		metav1.ListOptions{},
	)
	if err != nil {
		return nil, fmt.Errorf("list pod metrics: %w: %w", errMetricsUnavailable, err)
	}

	usage := make(dashboard.ClusterUsage, len(metricsList.Items))
	for i := range metricsList.Items {
		item := &metricsList.Items[i]
		usage[dashboard.PodKey(item.Namespace, item.Name)] = toContainerUsage(item)
	}

	return usage, nil
}

func (a *adapter) boundedContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, a.timeout)
}

// toContainerUsage converts one pod's metrics into per-container samples. A
// container missing from the metrics object simply has no entry; partial
// coverage is expected for pods whose sidecars have not been scraped yet.
func toContainerUsage(podMetrics *metricsv1beta1.PodMetrics) dashboard.ContainerUsage {
	usage := make(dashboard.ContainerUsage, len(podMetrics.Containers))

	for i := range podMetrics.Containers {
		container := &podMetrics.Containers[i]

		usage[container.Name] = dashboard.MetricsSample{
			CPUMillicores: container.Usage.Cpu().MilliValue(),
			MemoryBytes:   container.Usage.Memory().Value(),
		}
	}

	return usage
}
