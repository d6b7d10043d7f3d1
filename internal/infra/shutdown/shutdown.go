package shutdown

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	defaultShutdownTimeout = 5 * time.Second
)

// Notify returns a channel that will receive SIGTERM and SIGINT signals.
// This should be called as the first thing in main() before any other initialization.
func Notify() <-chan os.Signal {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)

	return signals
}

// CheckTerminationFile checks if the termination file exists
func CheckTerminationFile(ctx context.Context, logger *slog.Logger, terminationFile string) bool {
	if terminationFile == "" {
		return false
	}

	_, err := os.Stat(terminationFile)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.ErrorContext(ctx, "error checking termination file", "error", err, "path", terminationFile)
		}

		return false
	}

	logger.InfoContext(ctx, "termination file found", "path", terminationFile)

	return true
}

// GracefulShutdown performs graceful shutdown of the components with timeout.
func GracefulShutdown(
	originCtx context.Context,
	logger *slog.Logger,
	shutdowners []Shutdowner,
) error {
	// Use context.WithoutCancel to ensure shutdown continues even if originCtx is cancelled
	ctx, cancel := context.WithTimeout(context.WithoutCancel(originCtx), defaultShutdownTimeout)
	defer cancel()

	componentsShutdownErrors := make(chan error, len(shutdowners))

	// Shutdown components in reverse order to ensure dependencies are met
	for i := len(shutdowners) - 1; i >= 0; i-- {
		start := time.Now()
		shutdowner := shutdowners[i]

		if err := shutdowner.Shutdown(ctx); err != nil {
			logger.ErrorContext(ctx, "component shutdown failed",
				"component", shutdowner.Name(),
				"duration", time.Since(start),
				"reason", err,
			)

			// collect errors from components
			componentsShutdownErrors <- err

			continue
		}

		logger.InfoContext(ctx, "component shutdown completed",
			"component", shutdowner.Name(),
			"duration", time.Since(start),
		)
	}

	close(componentsShutdownErrors)

	var errs error
	// collect errors from components
	for err := range componentsShutdownErrors {
		errs = errors.Join(errs, err)
	}

	return errs
}
