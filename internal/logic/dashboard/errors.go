package dashboard

import "errors"

var (
	ErrListNamespaces = errors.New("list namespaces")
	ErrListPods       = errors.New("list pods")
	ErrGetPod         = errors.New("get pod")
	ErrGetPodLogs     = errors.New("get pod logs")
	ErrDeletePod      = errors.New("delete pod")
	ErrRestartPod     = errors.New("restart pod")
)
