package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var clusterRequestsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "kubesight_cluster_requests_total",
		Help: "Total number of cluster API requests issued by the dashboard, by operation and result.",
	},
	[]string{"operation", "result"},
)

var metricsUnavailableTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "kubesight_metrics_unavailable_total",
		Help: "Total number of resource-metrics fetches that degraded to the unavailable signal.",
	},
	[]string{"operation"},
)

var reportNamespacePods = promauto.With(prometheus.DefaultRegisterer).NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "kubesight_report_namespace_pods",
		Help: "Pod count per namespace as of the last scheduled cluster report.",
	},
	[]string{"namespace"},
)

// RecordClusterRequest increments the request counter for one cluster API
// call. result is "success" or "error".
func RecordClusterRequest(operation, result string) {
	clusterRequestsTotal.WithLabelValues(operation, result).Inc()
}

// RecordMetricsUnavailable increments the degradation counter when a metrics
// fetch folds into the unavailable signal.
func RecordMetricsUnavailable(operation string) {
	metricsUnavailableTotal.WithLabelValues(operation).Inc()
}

// SetReportNamespacePods publishes the pod count for one namespace from the
// scheduled cluster report.
func SetReportNamespacePods(namespace string, count int) {
	reportNamespacePods.WithLabelValues(namespace).Set(float64(count))
}
