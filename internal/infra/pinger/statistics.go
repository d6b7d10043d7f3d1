package pinger

import (
	"sync"
	"time"
)

// ErrorSnapshot represents a snapshot of an error occurrence
type ErrorSnapshot struct {
	Timestamp time.Time
	Latency   time.Duration
	Error     error
}

// Stats tracks statistics for a single pinger
type Stats struct {
	Name              string
	LastRun           time.Time
	LastLatency       time.Duration
	LastError         error
	LastErrorSnapshot *ErrorSnapshot
	SuccessCount      uint64
	ErrorCount        uint64
	mu                sync.RWMutex
}

// NewPingerStats creates a new Stats instance
func NewPingerStats(name string) *Stats {
	return &Stats{Name: name}
}

// Statistics contains computed statistics for a pinger
type Statistics struct {
	IsReady           bool
	IsHealthy         bool
	LastRun           time.Time
	LastLatency       time.Duration
	LastError         error
	LastErrorSnapshot *ErrorSnapshot
	SuccessCount      uint64
	ErrorCount        uint64
}

// GetStatistics computes and returns statistics from Stats
func GetStatistics(stats *Stats, info *pingerInfo) *Statistics {
	stats.mu.RLock()
	defer stats.mu.RUnlock()

	var lastErrorSnapshot *ErrorSnapshot
	if stats.LastErrorSnapshot != nil {
		lastErrorSnapshot = &ErrorSnapshot{
			Timestamp: stats.LastErrorSnapshot.Timestamp,
			Latency:   stats.LastErrorSnapshot.Latency,
			Error:     stats.LastErrorSnapshot.Error,
		}
	}

	// Non-critical pingers never fail readiness or health
	isReady := !info.readyCritical || stats.LastError == nil
	isHealthy := !info.healthCritical || stats.LastError == nil

	return &Statistics{
		IsReady:           isReady,
		IsHealthy:         isHealthy,
		LastRun:           stats.LastRun,
		LastLatency:       stats.LastLatency,
		LastError:         stats.LastError,
		LastErrorSnapshot: lastErrorSnapshot,
		SuccessCount:      stats.SuccessCount,
		ErrorCount:        stats.ErrorCount,
	}
}
