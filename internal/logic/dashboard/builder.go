package dashboard

import (
	"sort"
	"strings"
	"time"
)

// BuildPodSummaries applies the filter to pods, derives the UI fields for
// each retained pod and returns the result sorted by (namespace, name) in
// ordinal order. It never fails: malformed fields degrade to defaults so one
// bad pod cannot hide the rest of the list. A nil usage map marks every
// container as metrics-unavailable.
func BuildPodSummaries(
	now time.Time,
	pods []Pod,
	usage ClusterUsage,
	filter FilterCriteria,
) []PodSummary {
	summaries := make([]PodSummary, 0, len(pods))

	for i := range pods {
		if !matches(pods[i], filter) {
			continue
		}

		summaries = append(summaries, BuildPodSummary(now, pods[i], usage[PodKey(pods[i].Namespace, pods[i].Name)]))
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Namespace != summaries[j].Namespace {
			return summaries[i].Namespace < summaries[j].Namespace
		}

		return summaries[i].Name < summaries[j].Name
	})

	return summaries
}

// BuildPodSummary derives the UI representation of one pod. Ready/total
// counts and the restart count are recomputed from the container list; the
// usage map is attached per container, with missing entries carried as nil.
func BuildPodSummary(now time.Time, pod Pod, usage ContainerUsage) PodSummary {
	ready := 0
	total := len(pod.Containers)

	var restarts int32

	containers := make([]ContainerDetail, 0, total)

	for _, c := range pod.Containers {
		if c.Ready {
			ready++
		}

		restarts += c.RestartCount

		detail := ContainerDetail{
			Name:         c.Name,
			Image:        c.Image,
			Ready:        c.Ready,
			RestartCount: c.RestartCount,
			State:        containerStateOrDefault(c.State),
			StateReason:  c.StateReason,
		}

		if sample, ok := usage[c.Name]; ok {
			sampleCopy := sample
			detail.Usage = &sampleCopy
		}

		containers = append(containers, detail)
	}

	phase := phaseOrDefault(pod.Phase)

	return PodSummary{
		Namespace:       pod.Namespace,
		Name:            pod.Name,
		Phase:           phase,
		DisplayStatus:   displayStatus(phase, ready, total),
		ReadyContainers: ready,
		TotalContainers: total,
		RestartCount:    restarts,
		Age:             age(now, pod.CreatedAt),
		NodeName:        pod.NodeName,
		PodIP:           pod.PodIP,
		Labels:          pod.Labels,
		Containers:      containers,
		Conditions:      pod.Conditions,
	}
}

func matches(pod Pod, filter FilterCriteria) bool {
	if filter.Namespace != "" && filter.Namespace != "all" && filter.Namespace != pod.Namespace {
		return false
	}

	if filter.Search == "" {
		return true
	}

	return strings.Contains(
		strings.ToLower(pod.Name),
		strings.ToLower(filter.Search),
	)
}

// age clamps clock skew to zero instead of surfacing a negative duration.
func age(now, createdAt time.Time) time.Duration {
	if createdAt.IsZero() {
		return 0
	}

	d := now.Sub(createdAt)
	if d < 0 {
		return 0
	}

	return d
}

// displayStatus refines the raw phase for the list view: a Running pod whose
// containers are not all ready is shown as starting.
func displayStatus(phase Phase, ready, total int) string {
	if phase == PhaseRunning && ready < total {
		return "Starting"
	}

	return string(phase)
}

func phaseOrDefault(phase Phase) Phase {
	switch phase {
	case PhasePending, PhaseRunning, PhaseSucceeded, PhaseFailed, PhaseUnknown:
		return phase
	default:
		return PhaseUnknown
	}
}

func containerStateOrDefault(state ContainerState) ContainerState {
	switch state {
	case StateWaiting, StateRunning, StateTerminated:
		return state
	default:
		return StateWaiting
	}
}
