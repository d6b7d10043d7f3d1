package dashboard

import "time"

// Phase is the pod lifecycle phase as reported by the cluster.
type Phase string

const (
	PhasePending   Phase = "Pending"
	PhaseRunning   Phase = "Running"
	PhaseSucceeded Phase = "Succeeded"
	PhaseFailed    Phase = "Failed"
	PhaseUnknown   Phase = "Unknown"
)

// ContainerState is the coarse container state shown in the UI.
type ContainerState string

const (
	StateWaiting    ContainerState = "Waiting"
	StateRunning    ContainerState = "Running"
	StateTerminated ContainerState = "Terminated"
)

// Pod is a raw pod in the domain layer, converted at the adapter boundary.
// Containers follow the spec-declared order; a container that has not
// reported a status yet is carried as not ready in Waiting state.
type Pod struct {
	Namespace      string
	Name           string
	Phase          Phase
	NodeName       string
	PodIP          string
	Labels         map[string]string
	CreatedAt      time.Time
	ControllerKind string
	ControllerName string
	Containers     []Container
	Conditions     []Condition
}

// Container is one declared container with its merged status.
type Container struct {
	Name         string
	Image        string
	Ready        bool
	RestartCount int32
	State        ContainerState
	StateReason  string
}

// Condition is one pod condition, ordered as received from the cluster.
type Condition struct {
	Type               string
	Status             string
	Reason             string
	Message            string
	LastTransitionTime time.Time
}

// MetricsSample is a point-in-time usage sample for one container.
// Absence of a sample is modelled as a nil *MetricsSample, never as zeros.
type MetricsSample struct {
	CPUMillicores int64
	MemoryBytes   int64
}

// ContainerUsage maps container name to its usage sample.
type ContainerUsage map[string]MetricsSample

// ClusterUsage maps PodKey(namespace, name) to that pod's container usage.
type ClusterUsage map[string]ContainerUsage

// PodKey builds the ClusterUsage key for a pod.
func PodKey(namespace, name string) string {
	return namespace + "/" + name
}

// PodSummary is the UI-ready representation of one pod. ReadyContainers,
// TotalContainers and RestartCount are always recomputed from Containers.
type PodSummary struct {
	Namespace       string
	Name            string
	Phase           Phase
	DisplayStatus   string
	ReadyContainers int
	TotalContainers int
	RestartCount    int32
	Age             time.Duration
	NodeName        string
	PodIP           string
	Labels          map[string]string
	Containers      []ContainerDetail
	Conditions      []Condition
}

// ContainerDetail is one container in a PodSummary. Usage is nil when no
// metrics sample is available for this container.
type ContainerDetail struct {
	Name         string
	Image        string
	Ready        bool
	RestartCount int32
	State        ContainerState
	StateReason  string
	Usage        *MetricsSample
}

// FilterCriteria narrows a pod listing. An empty or "all" Namespace matches
// every namespace; an empty Search matches every pod name.
type FilterCriteria struct {
	Namespace string
	Search    string
}

// PodLogs is the log fetch result with the container the logs came from.
type PodLogs struct {
	Container string
	Content   string
}

// RestartResult reports the outcome of a restart. Restart is implemented as
// delete-and-let-controller-recreate; when HasController is false the pod was
// a bare pod and the delete is destructive rather than a restart.
type RestartResult struct {
	Namespace      string
	Name           string
	HasController  bool
	ControllerKind string
	ControllerName string
}
