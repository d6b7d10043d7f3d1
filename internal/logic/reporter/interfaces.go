package reporter

import (
	"context"
	"time"

	"github.com/skillcoder/kubesight/internal/logic/dashboard"
)

// podLister is the slice of the cluster port the reporter needs.
type podLister interface {
	ListPodsQuery(ctx context.Context, namespace string) ([]dashboard.Pod, error)
}

// scheduleParser computes the next report time from a cron spec.
type scheduleParser interface {
	NextAfter(spec, tz string, after time.Time) (time.Time, error)
}
