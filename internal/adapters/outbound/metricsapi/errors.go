package metricsapi

// MetricsUnavailableError signals that usage numbers cannot be fetched right
// now (metrics API absent, unreachable, forbidden, or the pod not scraped
// yet). It is a degradation signal, not a failure: callers render the
// affected containers as unavailable and carry on.
type MetricsUnavailableError struct{}

func (e *MetricsUnavailableError) Error() string {
	return "metrics unavailable"
}

func (e *MetricsUnavailableError) IsMetricsUnavailable() {}

var errMetricsUnavailable = &MetricsUnavailableError{}
