package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCountsRequestsAndErrorCodes(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/toys", "GET", 200, time.Millisecond)
	m.RecordRequest("/toys", "GET", 200, time.Millisecond)
	m.RecordRequest("/toys/single/x", "GET", 404, time.Millisecond)
	m.RecordError("NOT_FOUND")
	m.RecordError("UNAUTHORIZED")
	m.RecordError("NOT_FOUND")

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Requests["GET /toys -> 200"])
	assert.Equal(t, int64(1), snap.Requests["GET /toys/single/x -> 404"])
	assert.Equal(t, int64(2), snap.ErrorCodes["NOT_FOUND"])
	assert.Equal(t, int64(1), snap.ErrorCodes["UNAUTHORIZED"])
}

func TestMetricsSnapshotIsACopy(t *testing.T) {
	m := NewMetrics()
	m.RecordError("CONFLICT")

	snap := m.Snapshot()
	snap.ErrorCodes["CONFLICT"] = 99
	snap.Requests["tampered"] = 1

	fresh := m.Snapshot()
	assert.Equal(t, int64(1), fresh.ErrorCodes["CONFLICT"])
	assert.NotContains(t, fresh.Requests, "tampered")
}

func TestMetricsNilReceiver(t *testing.T) {
	var m *Metrics

	m.RecordRequest("/toys", "GET", 200, time.Millisecond)
	m.RecordError("NOT_FOUND")

	snap := m.Snapshot()
	assert.Empty(t, snap.Requests)
	assert.Empty(t, snap.ErrorCodes)
}
