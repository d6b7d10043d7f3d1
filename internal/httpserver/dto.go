package httpserver

import (
	"fmt"
	"time"

	"github.com/skillcoder/kubesight/internal/logic/dashboard"
)

type namespacesResponse struct {
	Namespaces []string `json:"namespaces"`
}

type podListResponse struct {
	Pods  []podSummaryView `json:"pods"`
	Count int              `json:"count"`
}

type podSummaryView struct {
	Namespace  string            `json:"namespace"`
	Name       string            `json:"name"`
	Phase      string            `json:"phase"`
	Status     string            `json:"status"`
	Ready      string            `json:"ready"`
	Restarts   int32             `json:"restarts"`
	Age        string            `json:"age"`
	AgeSeconds float64           `json:"ageSeconds"`
	Node       string            `json:"node,omitempty"`
	PodIP      string            `json:"podIP,omitempty"`
	Labels     map[string]string `json:"labels,omitempty"`
	Containers []containerView   `json:"containers"`
	Conditions []conditionView   `json:"conditions,omitempty"`
}

type containerView struct {
	Name        string     `json:"name"`
	Image       string     `json:"image"`
	Ready       bool       `json:"ready"`
	Restarts    int32      `json:"restarts"`
	State       string     `json:"state"`
	StateReason string     `json:"stateReason,omitempty"`
	// Usage is null when no metrics sample is available for this container.
	Usage *usageView `json:"usage"`
}

type usageView struct {
	CPUMillicores int64 `json:"cpuMillicores"`
	MemoryBytes   int64 `json:"memoryBytes"`
}

type conditionView struct {
	Type               string    `json:"type"`
	Status             string    `json:"status"`
	Reason             string    `json:"reason,omitempty"`
	Message            string    `json:"message,omitempty"`
	LastTransitionTime time.Time `json:"lastTransitionTime"`
}

type logsResponse struct {
	Namespace string `json:"namespace"`
	Pod       string `json:"pod"`
	Container string `json:"container"`
	Logs      string `json:"logs"`
}

type deleteResponse struct {
	Namespace string `json:"namespace"`
	Pod       string `json:"pod"`
	Status    string `json:"status"`
}

type restartResponse struct {
	Namespace      string `json:"namespace"`
	Pod            string `json:"pod"`
	Status         string `json:"status"`
	HasController  bool   `json:"hasController"`
	ControllerKind string `json:"controllerKind,omitempty"`
	ControllerName string `json:"controllerName,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	// Containers lists the candidates when a log fetch was ambiguous.
	Containers []string `json:"containers,omitempty"`
}

func toPodSummaryViews(summaries []dashboard.PodSummary) []podSummaryView {
	views := make([]podSummaryView, 0, len(summaries))
	for i := range summaries {
		views = append(views, toPodSummaryView(summaries[i]))
	}

	return views
}

func toPodSummaryView(summary dashboard.PodSummary) podSummaryView {
	containers := make([]containerView, 0, len(summary.Containers))

	for _, c := range summary.Containers {
		view := containerView{
			Name:        c.Name,
			Image:       c.Image,
			Ready:       c.Ready,
			Restarts:    c.RestartCount,
			State:       string(c.State),
			StateReason: c.StateReason,
		}

		if c.Usage != nil {
			view.Usage = &usageView{
				CPUMillicores: c.Usage.CPUMillicores,
				MemoryBytes:   c.Usage.MemoryBytes,
			}
		}

		containers = append(containers, view)
	}

	conditions := make([]conditionView, 0, len(summary.Conditions))
	for _, c := range summary.Conditions {
		conditions = append(conditions, conditionView{
			Type:               c.Type,
			Status:             c.Status,
			Reason:             c.Reason,
			Message:            c.Message,
			LastTransitionTime: c.LastTransitionTime,
		})
	}

	return podSummaryView{
		Namespace:  summary.Namespace,
		Name:       summary.Name,
		Phase:      string(summary.Phase),
		Status:     summary.DisplayStatus,
		Ready:      fmt.Sprintf("%d/%d", summary.ReadyContainers, summary.TotalContainers),
		Restarts:   summary.RestartCount,
		Age:        formatAge(summary.Age),
		AgeSeconds: summary.Age.Seconds(),
		Node:       summary.NodeName,
		PodIP:      summary.PodIP,
		Labels:     summary.Labels,
		Containers: containers,
		Conditions: conditions,
	}
}

// formatAge renders an age the way kubectl does: the two most significant
// units, no sub-second noise.
func formatAge(age time.Duration) string {
	const (
		hoursPerDay = 24
		minsPerHour = 60
	)

	switch {
	case age >= hoursPerDay*time.Hour:
		days := int(age.Hours()) / hoursPerDay
		hours := int(age.Hours()) % hoursPerDay

		if hours == 0 {
			return fmt.Sprintf("%dd", days)
		}

		return fmt.Sprintf("%dd%dh", days, hours)
	case age >= time.Hour:
		hours := int(age.Hours())
		mins := int(age.Minutes()) % minsPerHour

		if mins == 0 {
			return fmt.Sprintf("%dh", hours)
		}

		return fmt.Sprintf("%dh%dm", hours, mins)
	case age >= time.Minute:
		return fmt.Sprintf("%dm", int(age.Minutes()))
	default:
		return fmt.Sprintf("%ds", int(age.Seconds()))
	}
}
