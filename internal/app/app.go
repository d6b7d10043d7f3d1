package app

import (
	"context"
	"fmt"
	"log/slog"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/skillcoder/kubesight/internal/adapters/outbound/k8s"
	"github.com/skillcoder/kubesight/internal/adapters/outbound/metricsapi"
	"github.com/skillcoder/kubesight/internal/config"
	"github.com/skillcoder/kubesight/internal/httpserver"
	"github.com/skillcoder/kubesight/internal/infra/cronparser"
	"github.com/skillcoder/kubesight/internal/infra/pinger"
	"github.com/skillcoder/kubesight/internal/logic/dashboard"
	"github.com/skillcoder/kubesight/internal/logic/reporter"
)

type App struct {
	logger     *slog.Logger
	appState   appstater
	components []appServer
}

// New creates a new application instance with all dependencies wired.
func New(logger *slog.Logger, cfg *config.Config, appState appstater) (*App, error) {
	// Create K8s config
	kubeConfig, err := clientcmd.BuildConfigFromFlags(
		cfg.KubeMaster,
		cfg.KubeConfig,
	)
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	// Create K8s clientset
	clientset, err := kubernetes.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}

	// Create metrics clientset
	metricsClientset, err := metricsv.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create metrics clientset: %w", err)
	}

	// Create secondary adapters
	clusterRepo := k8s.New(logger, clientset, cfg.ClusterTimeout)
	metricsRepo := metricsapi.New(logger, metricsClientset, cfg.MetricsTimeout)

	// Create logic service (inject repository adapters)
	dashboardService := dashboard.NewService(
		logger,
		clusterRepo,
		metricsRepo,
		cfg.LogTailLines,
	)

	components := []appServer{
		httpserver.New(logger, appState, dashboardService, cfg.HTTPPort),
		httpserver.NewMetricsServer(logger, cfg.MetricsPort),
	}

	// The scheduled cluster report is optional
	if cfg.ReportSchedule != "" {
		components = append(components, reporter.NewService(
			logger,
			clusterRepo,
			cronparser.New(),
			cfg.ReportSchedule,
			cfg.ReportTZ,
		))
	}

	return &App{
		logger:     logger,
		appState:   appState,
		components: components,
	}, nil
}

// Run starts all components, marks the application running once every
// readiness channel closed and blocks until a termination signal or context
// cancellation, then drives the graceful shutdown.
func (a *App) Run(originCtx context.Context) error {
	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting application state: %w", err)
	}

	readyChans := make([]<-chan struct{}, 0, len(a.components))

	for _, component := range a.components {
		if err := component.Start(ctx); err != nil {
			return fmt.Errorf("start %s: %w", component.Name(), err)
		}

		if err := a.appState.RegisterShutdowner(component); err != nil {
			return fmt.Errorf("register shutdowner %s: %w", component.Name(), err)
		}

		if p, ok := component.(pinger.Pinger); ok {
			if err := a.appState.RegisterPinger(p); err != nil {
				return fmt.Errorf("register pinger %s: %w", component.Name(), err)
			}
		}

		readyChans = append(readyChans, component.Ready())
	}

	<-allChannelsClose(ctx, a.logger, readyChans...)

	// Pingers start once the components they probe are up
	if err := a.appState.StartPingers(ctx); err != nil {
		return fmt.Errorf("start pingers: %w", err)
	}

	select {
	case <-a.appState.PingersReady():
	case <-ctx.Done():
	}

	if err := a.appState.SetRunning(ctx); err != nil {
		return fmt.Errorf("set running application state: %w", err)
	}

	a.logger.InfoContext(ctx, "application running")

	select {
	case <-ctx.Done():
		a.logger.InfoContext(ctx, "context cancelled, terminating")
	case sig := <-a.appState.Quit():
		a.logger.InfoContext(ctx, "received termination signal, terminating", "signal", sig.String())
	}

	cancel()

	if err := a.appState.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// allChannelsClose returns a channel that closes once every input channel has
// closed or the context was cancelled while waiting.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	go func() {
		defer close(out)

		for _, ch := range chans {
			select {
			case <-ch:
			case <-ctx.Done():
				logger.WarnContext(ctx, "context cancelled while waiting for readiness")

				return
			}
		}
	}()

	return out
}
