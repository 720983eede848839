package observability

import (
	"fmt"
	"sync"
	"time"
)

// Metrics counts requests per route and the domain error codes the API
// emits (VALIDATION_FAILED, CONFLICT, UNAUTHORIZED, NOT_FOUND,
// UPSTREAM_FAILURE). Snapshots feed the health surface.
type Metrics struct {
	mu         sync.Mutex
	requests   map[string]int64
	errorCodes map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requests:   make(map[string]int64),
		errorCodes: make(map[string]int64),
	}
}

// RecordRequest counts a completed request under its route, method and
// final status.
func (m *Metrics) RecordRequest(path, method string, status int, _ time.Duration) {
	if m == nil {
		return
	}
	key := routeKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[key]++
}

// RecordError counts a request that failed with the given domain error code.
func (m *Metrics) RecordError(code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCodes[code]++
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Requests   map[string]int64 `json:"requests"`
	ErrorCodes map[string]int64 `json:"errorCodes"`
}

// Snapshot copies the counters; mutating the result does not touch the
// live maps.
func (m *Metrics) Snapshot() Snapshot {
	snap := Snapshot{
		Requests:   make(map[string]int64),
		ErrorCodes: make(map[string]int64),
	}
	if m == nil {
		return snap
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, count := range m.requests {
		snap.Requests[key] = count
	}
	for code, count := range m.errorCodes {
		snap.ErrorCodes[code] = count
	}
	return snap
}

func routeKey(path, method string, status int) string {
	return fmt.Sprintf("%s %s -> %d", method, path, status)
}
