package k8s

import (
	corev1 "k8s.io/api/core/v1"

	"github.com/skillcoder/kubesight/internal/logic/dashboard"
)

// toDomainPod converts a cluster pod into the domain shape the view-model
// builder consumes. Containers keep the spec-declared order; a declared
// container without a reported status is carried as not ready in Waiting
// state so ready counts stay honest for pods that have not started yet.
func toDomainPod(pod *corev1.Pod) dashboard.Pod {
	statusByName := make(map[string]corev1.ContainerStatus, len(pod.Status.ContainerStatuses))
	for _, st := range pod.Status.ContainerStatuses {
		statusByName[st.Name] = st
	}

	containers := make([]dashboard.Container, 0, len(pod.Spec.Containers))

	for i := range pod.Spec.Containers {
		spec := pod.Spec.Containers[i]

		container := dashboard.Container{
			Name:  spec.Name,
			Image: spec.Image,
			State: dashboard.StateWaiting,
		}

		if st, ok := statusByName[spec.Name]; ok {
			container.Ready = st.Ready
			container.RestartCount = st.RestartCount
			container.State, container.StateReason = toDomainState(st.State)
		}

		containers = append(containers, container)
	}

	conditions := make([]dashboard.Condition, 0, len(pod.Status.Conditions))
	for _, cond := range pod.Status.Conditions {
		conditions = append(conditions, dashboard.Condition{
			Type:               string(cond.Type),
			Status:             string(cond.Status),
			Reason:             cond.Reason,
			Message:            cond.Message,
			LastTransitionTime: cond.LastTransitionTime.Time,
		})
	}

	controllerKind, controllerName := findController(pod)

	return dashboard.Pod{
		Namespace:      pod.Namespace,
		Name:           pod.Name,
		Phase:          dashboard.Phase(pod.Status.Phase),
		NodeName:       pod.Spec.NodeName,
		PodIP:          pod.Status.PodIP,
		Labels:         pod.Labels,
		CreatedAt:      pod.CreationTimestamp.Time,
		ControllerKind: controllerKind,
		ControllerName: controllerName,
		Containers:     containers,
		Conditions:     conditions,
	}
}

func toDomainState(state corev1.ContainerState) (dashboard.ContainerState, string) {
	switch {
	case state.Running != nil:
		return dashboard.StateRunning, ""
	case state.Terminated != nil:
		return dashboard.StateTerminated, state.Terminated.Reason
	case state.Waiting != nil:
		return dashboard.StateWaiting, state.Waiting.Reason
	default:
		return dashboard.StateWaiting, ""
	}
}

// findController returns the kind and name of the pod's owning controller,
// or empty strings for a bare pod.
func findController(pod *corev1.Pod) (string, string) {
	for _, ref := range pod.OwnerReferences {
		if ref.Controller != nil && *ref.Controller {
			return ref.Kind, ref.Name
		}
	}

	return "", ""
}
