package httpserver

import (
	"context"
	"time"

	"github.com/skillcoder/kubesight/internal/infra/appstate"
	"github.com/skillcoder/kubesight/internal/infra/pinger"
	"github.com/skillcoder/kubesight/internal/logic/dashboard"
)

// dashboarder is the inbound port driven by the HTTP layer.
type dashboarder interface {
	ListNamespacesQuery(ctx context.Context) ([]string, error)
	ListPodsQuery(ctx context.Context, filter dashboard.FilterCriteria) ([]dashboard.PodSummary, error)
	GetPodQuery(ctx context.Context, namespace, name string) (*dashboard.PodSummary, error)
	GetPodLogsQuery(
		ctx context.Context,
		namespace,
		name,
		container string,
		tailLines int64,
	) (*dashboard.PodLogs, error)
	DeletePodCommand(ctx context.Context, namespace, name string) error
	RestartPodCommand(ctx context.Context, namespace, name string) (*dashboard.RestartResult, error)
}

// appstater is an internal interface for application state management
type appstater interface {
	GetState() appstate.State
	IsHealthy() bool
	IsReady() bool
	GetUptime() time.Duration
	GetStartTime() time.Time
	GetAllStats() map[string]*pinger.Statistics
}

// Error markers matched without importing the adapter packages.

type notFound interface {
	IsNotFound()
}

type clusterUnreachable interface {
	IsClusterUnreachable()
}

type ambiguousContainer interface {
	IsAmbiguousContainer()
	ContainerNames() []string
}
