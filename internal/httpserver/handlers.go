package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/kubesight/internal/logic/dashboard"
)

func (s *Server) handleListNamespaces(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	namespaces, err := s.dashboard.ListNamespacesQuery(ctx)
	if err != nil {
		s.writeError(ctx, w, err)

		return
	}

	s.writeJSON(ctx, w, http.StatusOK, namespacesResponse{Namespaces: namespaces})
}

func (s *Server) handleListPods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := dashboard.FilterCriteria{
		Namespace: r.URL.Query().Get("namespace"),
		Search:    r.URL.Query().Get("search"),
	}

	summaries, err := s.dashboard.ListPodsQuery(ctx, filter)
	if err != nil {
		s.writeError(ctx, w, err)

		return
	}

	views := toPodSummaryViews(summaries)

	s.writeJSON(ctx, w, http.StatusOK, podListResponse{Pods: views, Count: len(views)})
}

func (s *Server) handleGetPod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	namespace := chi.URLParam(r, "namespace")
	name := chi.URLParam(r, "name")

	summary, err := s.dashboard.GetPodQuery(ctx, namespace, name)
	if err != nil {
		s.writeError(ctx, w, err)

		return
	}

	s.writeJSON(ctx, w, http.StatusOK, toPodSummaryView(*summary))
}

func (s *Server) handleGetPodLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	namespace := chi.URLParam(r, "namespace")
	name := chi.URLParam(r, "name")
	container := r.URL.Query().Get("container")

	var tailLines int64

	if raw := r.URL.Query().Get("tailLines"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			s.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{
				Error: "tailLines must be a positive integer",
			})

			return
		}

		tailLines = parsed
	}

	logs, err := s.dashboard.GetPodLogsQuery(ctx, namespace, name, container, tailLines)
	if err != nil {
		s.writeError(ctx, w, err)

		return
	}

	s.writeJSON(ctx, w, http.StatusOK, logsResponse{
		Namespace: namespace,
		Pod:       name,
		Container: logs.Container,
		Logs:      logs.Content,
	})
}

func (s *Server) handleDeletePod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	namespace := chi.URLParam(r, "namespace")
	name := chi.URLParam(r, "name")

	if err := s.dashboard.DeletePodCommand(ctx, namespace, name); err != nil {
		s.writeError(ctx, w, err)

		return
	}

	s.writeJSON(ctx, w, http.StatusOK, deleteResponse{
		Namespace: namespace,
		Pod:       name,
		Status:    "deleted",
	})
}

func (s *Server) handleRestartPod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	namespace := chi.URLParam(r, "namespace")
	name := chi.URLParam(r, "name")

	result, err := s.dashboard.RestartPodCommand(ctx, namespace, name)
	if err != nil {
		s.writeError(ctx, w, err)

		return
	}

	s.writeJSON(ctx, w, http.StatusOK, restartResponse{
		Namespace:      result.Namespace,
		Pod:            result.Name,
		Status:         "restarting",
		HasController:  result.HasController,
		ControllerKind: result.ControllerKind,
		ControllerName: result.ControllerName,
	})
}

func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.ErrorContext(ctx, "failed to encode response",
			"traceID", middleware.GetReqID(ctx),
			"error", err,
		)
	}
}

// writeError maps domain errors onto HTTP statuses: absent objects are 404,
// an unreachable cluster is a retryable 503, an ambiguous container is a 400
// carrying the candidates so the client can prompt.
func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := s.logger.With("traceID", middleware.GetReqID(ctx))

	var ambiguous ambiguousContainer
	if errors.As(err, &ambiguous) {
		logger.DebugContext(ctx, "ambiguous container", "reason", err)
		s.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{
			Error:      "container must be specified for multi-container pods",
			Containers: ambiguous.ContainerNames(),
		})

		return
	}

	var missing notFound
	if errors.As(err, &missing) {
		logger.DebugContext(ctx, "object not found", "reason", err)
		s.writeJSON(ctx, w, http.StatusNotFound, errorResponse{Error: "not found"})

		return
	}

	var unreachable clusterUnreachable
	if errors.As(err, &unreachable) {
		logger.WarnContext(ctx, "cluster unreachable", "reason", err)
		s.writeJSON(ctx, w, http.StatusServiceUnavailable, errorResponse{
			Error: "cluster unreachable, retry later",
		})

		return
	}

	logger.ErrorContext(ctx, "request failed", "reason", err)
	s.writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
