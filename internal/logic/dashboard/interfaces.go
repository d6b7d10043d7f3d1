package dashboard

import "context"

// ClusterRepository is the port interface for cluster API operations.
// Implementations are provided by adapters in the outbound layer.
type ClusterRepository interface {
	ListNamespacesQuery(ctx context.Context) ([]string, error)

	// ListPodsQuery lists pods in one namespace; an empty namespace means
	// all namespaces.
	ListPodsQuery(ctx context.Context, namespace string) ([]Pod, error)

	GetPodQuery(ctx context.Context, namespace, name string) (*Pod, error)

	// GetPodLogsQuery fetches logs. An empty container resolves to the
	// pod's only container and fails as ambiguous when the pod has more
	// than one.
	GetPodLogsQuery(
		ctx context.Context,
		namespace,
		name,
		container string,
		tailLines int64,
	) (*PodLogs, error)

	DeletePodCommand(ctx context.Context, namespace, name string) error
}

// MetricsRepository is the port interface for the optional resource-metrics
// API. Implementations fold every failure mode into a metrics-unavailable
// error so callers can degrade instead of failing.
type MetricsRepository interface {
	GetPodMetricsQuery(
		ctx context.Context,
		namespace,
		name string,
	) (ContainerUsage, error)

	ListPodMetricsQuery(
		ctx context.Context,
		namespace string,
	) (ClusterUsage, error)
}

// metricsUnavailable is a private interface for the metrics adapter's
// degradation signal.
type metricsUnavailable interface {
	IsMetricsUnavailable()
}
