package k8s

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/skillcoder/kubesight/internal/logic/dashboard"
)

func TestToDomainPod(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)
	controller := true

	pod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Namespace:         "web",
			Name:              "api-7f9b5c-x2x",
			Labels:            map[string]string{"app": "api"},
			CreationTimestamp: metav1.NewTime(createdAt),
			OwnerReferences: []metav1.OwnerReference{
				{Kind: "Node", Name: "node-1"},
				{Kind: "ReplicaSet", Name: "api-7f9b5c", Controller: &controller},
			},
		},
		Spec: corev1.PodSpec{
			NodeName: "node-1",
			Containers: []corev1.Container{
				{Name: "app", Image: "app:1.2"},
				{Name: "sidecar", Image: "proxy:0.9"},
			},
		},
		Status: corev1.PodStatus{
			Phase: corev1.PodRunning,
			PodIP: "10.0.0.12",
			ContainerStatuses: []corev1.ContainerStatus{
				// Reported out of spec order on purpose.
				{
					Name:         "sidecar",
					Ready:        false,
					RestartCount: 4,
					State: corev1.ContainerState{
						Waiting: &corev1.ContainerStateWaiting{Reason: "CrashLoopBackOff"},
					},
				},
				{
					Name:         "app",
					Ready:        true,
					RestartCount: 1,
					State: corev1.ContainerState{
						Running: &corev1.ContainerStateRunning{},
					},
				},
			},
			Conditions: []corev1.PodCondition{
				{Type: corev1.PodReady, Status: corev1.ConditionFalse, Reason: "ContainersNotReady"},
			},
		},
	}

	domainPod := toDomainPod(pod)

	require.Equal(t, "web", domainPod.Namespace)
	require.Equal(t, "api-7f9b5c-x2x", domainPod.Name)
	require.Equal(t, dashboard.PhaseRunning, domainPod.Phase)
	require.Equal(t, "node-1", domainPod.NodeName)
	require.Equal(t, "10.0.0.12", domainPod.PodIP)
	require.Equal(t, createdAt, domainPod.CreatedAt)

	// The controller is the owner reference flagged as controller.
	require.Equal(t, "ReplicaSet", domainPod.ControllerKind)
	require.Equal(t, "api-7f9b5c", domainPod.ControllerName)

	// Containers keep spec order regardless of status order.
	require.Len(t, domainPod.Containers, 2)
	require.Equal(t, "app", domainPod.Containers[0].Name)
	require.True(t, domainPod.Containers[0].Ready)
	require.Equal(t, int32(1), domainPod.Containers[0].RestartCount)
	require.Equal(t, dashboard.StateRunning, domainPod.Containers[0].State)

	require.Equal(t, "sidecar", domainPod.Containers[1].Name)
	require.False(t, domainPod.Containers[1].Ready)
	require.Equal(t, dashboard.StateWaiting, domainPod.Containers[1].State)
	require.Equal(t, "CrashLoopBackOff", domainPod.Containers[1].StateReason)

	require.Len(t, domainPod.Conditions, 1)
	require.Equal(t, "Ready", domainPod.Conditions[0].Type)
}

func TestToDomainPod_MissingStatus(t *testing.T) {
	t.Parallel()

	pod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Namespace: "web", Name: "starting"},
		Spec: corev1.PodSpec{
			Containers: []corev1.Container{
				{Name: "app", Image: "app:1.0"},
			},
		},
		Status: corev1.PodStatus{Phase: corev1.PodPending},
	}

	domainPod := toDomainPod(pod)

	// A declared container without a status is not ready and Waiting.
	require.Len(t, domainPod.Containers, 1)
	require.False(t, domainPod.Containers[0].Ready)
	require.Equal(t, dashboard.StateWaiting, domainPod.Containers[0].State)
	require.Zero(t, domainPod.Containers[0].RestartCount)

	// No controller for a bare pod.
	require.Empty(t, domainPod.ControllerKind)
	require.Empty(t, domainPod.ControllerName)
}

func TestToDomainState(t *testing.T) {
	t.Parallel()

	state, reason := toDomainState(corev1.ContainerState{
		Terminated: &corev1.ContainerStateTerminated{Reason: "OOMKilled"},
	})
	require.Equal(t, dashboard.StateTerminated, state)
	require.Equal(t, "OOMKilled", reason)

	state, reason = toDomainState(corev1.ContainerState{})
	require.Equal(t, dashboard.StateWaiting, state)
	require.Empty(t, reason)
}
