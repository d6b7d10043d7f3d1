package config

import "time"

// Env key constants. All dashboard configuration env vars use KUBESIGHT_
// prefix; duration values support explicit units (e.g. 5m, 40s, 2h).

// Path to kubeconfig file. If unset, KUBECONFIG is used as fallback.
const envKeyKubeConfig = "KUBESIGHT_KUBECONFIG"

// Kubernetes API server URL. If unset, KUBERNETES_MASTER is used as fallback.
const envKeyKubeMaster = "KUBESIGHT_KUBE_MASTER"

// Log level: debug, info, warn, error.
const envKeyLogLevel = "KUBESIGHT_LOG_LEVEL"

// Log format: json or text.
const envKeyLogFormat = "KUBESIGHT_LOG_FORMAT"

// Port for the dashboard API and health endpoints.
const envKeyHTTPPort = "KUBESIGHT_HTTP_PORT"

// Port for Prometheus metrics (GET /metrics).
const envKeyMetricsPort = "KUBESIGHT_METRICS_PORT"

// Pinger check interval. Units: s, m, h (e.g. 10s, 1m).
const (
	envKeyPingerInterval = "KUBESIGHT_PINGER_INTERVAL"
	envMinPingerInterval = time.Second
)

// Per-call timeout for cluster API requests. Units: s, m (e.g. 10s).
const (
	envKeyClusterTimeout = "KUBESIGHT_CLUSTER_TIMEOUT"
	envMinClusterTimeout = time.Second
)

// Per-call timeout for resource-metrics API requests. Units: s, m (e.g. 5s).
const (
	envKeyMetricsTimeout = "KUBESIGHT_METRICS_TIMEOUT"
	envMinMetricsTimeout = time.Second
)

// Default number of log lines returned when a request does not ask for more.
const envKeyLogTailLines = "KUBESIGHT_LOG_TAIL_LINES"

// Cron expression for the scheduled cluster report; empty disables it.
const envKeyReportSchedule = "KUBESIGHT_REPORT_SCHEDULE"

// Timezone for the report schedule (IANA, e.g. America/New_York).
const envKeyReportTZ = "KUBESIGHT_REPORT_TZ"

// Standard k8s env keys used as fallback when KUBESIGHT_* are unset.
const (
	envKeyKubeConfigFallback = "KUBECONFIG"
	envKeyKubeMasterFallback = "KUBERNETES_MASTER"
)
