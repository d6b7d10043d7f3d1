package k8s

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/skillcoder/kubesight/internal/infra/metrics"
	"github.com/skillcoder/kubesight/internal/logic/dashboard"
)

type adapter struct {
	logger    *slog.Logger
	clientset kubernetes.Interface
	timeout   time.Duration
}

// New creates a new cluster adapter. The clientset is injected by the caller;
// the adapter owns no connection state. Every call runs under the given
// timeout so a hung API server cannot hang the request.
func New(
	logger *slog.Logger,
	clientset kubernetes.Interface,
	timeout time.Duration,
) dashboard.ClusterRepository {
	return &adapter{
		logger:    logger,
		clientset: clientset,
		timeout:   timeout,
	}
}

var _ dashboard.ClusterRepository = (*adapter)(nil)

func (a *adapter) ListNamespacesQuery(ctx context.Context) ([]string, error) {
	ctx, cancel := a.boundedContext(ctx)
	defer cancel()

	nsList, err := a.clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})

	a.observe("list_namespaces", err)

	if err != nil {
		return nil, classify("list namespaces", err)
	}

	names := make([]string, 0, len(nsList.Items))
	for i := range nsList.Items {
		names = append(names, nsList.Items[i].Name)
	}

	return names, nil
}

func (a *adapter) ListPodsQuery(
	ctx context.Context,
	namespace string,
) ([]dashboard.Pod, error) {
	ctx, cancel := a.boundedContext(ctx)
	defer cancel()

	podList, err := a.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})

	a.observe("list_pods", err)

	if err != nil {
		return nil, classify("list pods", err)
	}

	pods := make([]dashboard.Pod, 0, len(podList.Items))
	for i := range podList.Items {
		pods = append(pods, toDomainPod(&podList.Items[i]))
	}

	return pods, nil
}

func (a *adapter) GetPodQuery(
	ctx context.Context,
	namespace,
	name string,
) (*dashboard.Pod, error) {
	ctx, cancel := a.boundedContext(ctx)
	defer cancel()

	pod, err := a.clientset.CoreV1().Pods(namespace).Get(ctx, name, metav1.GetOptions{})

	a.observe("get_pod", err)

	if err != nil {
		return nil, classify("get pod", err)
	}

	domainPod := toDomainPod(pod)

	return &domainPod, nil
}

func (a *adapter) GetPodLogsQuery(
	ctx context.Context,
	namespace,
	name,
	container string,
	tailLines int64,
) (*dashboard.PodLogs, error) {
	ctx, cancel := a.boundedContext(ctx)
	defer cancel()

	if container == "" {
		resolved, err := a.resolveContainer(ctx, namespace, name)
		if err != nil {
			return nil, err
		}

		container = resolved
	}

	opts := &corev1.PodLogOptions{
		Container: container,
	}

	if tailLines > 0 {
		opts.TailLines = &tailLines
	}

	stream, err := a.clientset.CoreV1().Pods(namespace).GetLogs(name, opts).Stream(ctx)

	a.observe("get_pod_logs", err)

	if err != nil {
		return nil, classify("get pod logs", err)
	}

	defer func() {
		if closeErr := stream.Close(); closeErr != nil {
			a.logger.WarnContext(ctx, "close log stream", "reason", closeErr)
		}
	}()

	content, err := io.ReadAll(stream)
	if err != nil {
		return nil, classify("read pod logs", err)
	}

	return &dashboard.PodLogs{
		Container: container,
		Content:   string(content),
	}, nil
}

func (a *adapter) DeletePodCommand(ctx context.Context, namespace, name string) error {
	ctx, cancel := a.boundedContext(ctx)
	defer cancel()

	err := a.clientset.CoreV1().Pods(namespace).Delete(ctx, name, metav1.DeleteOptions{})

	a.observe("delete_pod", err)

	if err != nil {
		return classify("delete pod", err)
	}

	return nil
}

// resolveContainer picks the pod's only container, or fails as ambiguous with
// the candidate names when there is more than one.
func (a *adapter) resolveContainer(ctx context.Context, namespace, name string) (string, error) {
	pod, err := a.clientset.CoreV1().Pods(namespace).Get(ctx, name, metav1.GetOptions{})

	a.observe("get_pod", err)

	if err != nil {
		return "", classify("resolve container", err)
	}

	if len(pod.Spec.Containers) != 1 {
		names := make([]string, 0, len(pod.Spec.Containers))
		for i := range pod.Spec.Containers {
			names = append(names, pod.Spec.Containers[i].Name)
		}

		return "", fmt.Errorf("resolve container: %w", &AmbiguousContainerError{Containers: names})
	}

	return pod.Spec.Containers[0].Name, nil
}

func (a *adapter) boundedContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, a.timeout)
}

func (a *adapter) observe(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}

	metrics.RecordClusterRequest(operation, result)
}

// classify maps a cluster API error onto the adapter's error taxonomy:
// NotFound stays NotFound, everything else (including timeouts) is
// cluster-unreachable and retryable.
func classify(op string, err error) error {
	if apierrors.IsNotFound(err) {
		return fmt.Errorf("%s: %w", op, errNotFound)
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		apierrors.IsTimeout(err) ||
		apierrors.IsServerTimeout(err) {
		return fmt.Errorf("%s: timed out: %w", op, errClusterUnreachable)
	}

	return fmt.Errorf("%s: %w: %w", op, errClusterUnreachable, err)
}
