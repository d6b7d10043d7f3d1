package k8s

import "fmt"

// NotFoundError represents an absent object; surfaced as "not found" and not
// retried.
type NotFoundError struct{}

func (e *NotFoundError) Error() string {
	return "not found"
}

func (e *NotFoundError) IsNotFound() {}

var errNotFound = &NotFoundError{}

// ClusterUnreachableError represents a failed or timed-out cluster API call;
// surfaced as a retryable error.
type ClusterUnreachableError struct{}

func (e *ClusterUnreachableError) Error() string {
	return "cluster unreachable"
}

func (e *ClusterUnreachableError) IsClusterUnreachable() {}

var errClusterUnreachable = &ClusterUnreachableError{}

// AmbiguousContainerError is returned when a log fetch omits the container on
// a multi-container pod. It carries the candidates so the caller can prompt.
type AmbiguousContainerError struct {
	Containers []string
}

func (e *AmbiguousContainerError) Error() string {
	return fmt.Sprintf("ambiguous container: pod has %d containers", len(e.Containers))
}

func (e *AmbiguousContainerError) IsAmbiguousContainer() {}

func (e *AmbiguousContainerError) ContainerNames() []string {
	return e.Containers
}
