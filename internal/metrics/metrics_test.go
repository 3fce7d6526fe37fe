package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessMetrics_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAccessMetrics(reg)

	m.ObserveOperation("login", "ok")
	m.ObserveOperation("login", "ok")
	m.ObserveOperation("login", "invalid_credentials")
	m.LockoutTriggered()
	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("login", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("login", "invalid_credentials")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lockouts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessions))

	snapshot, err := Snapshot(reg)
	require.NoError(t, err)
	assert.Equal(t, 1.0, snapshot["access_keeper_sessions_active"])
	assert.NotContains(t, snapshot, "access_keeper_sessions_started")
}

func TestNewAccessMetrics_IndependentRegistries(t *testing.T) {
	first := NewAccessMetrics(prometheus.NewRegistry())
	second := NewAccessMetrics(prometheus.NewRegistry())

	first.LockoutTriggered()

	assert.Equal(t, 1.0, testutil.ToFloat64(first.lockouts))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.lockouts))
}

func TestSnapshot(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAccessMetrics(reg)

	m.ObserveOperation("register", "ok")
	m.LockoutTriggered()

	snapshot, err := Snapshot(reg)
	require.NoError(t, err)
	assert.Equal(t, 1.0, snapshot["access_keeper_operations_total{operation=register,outcome=ok}"])
	assert.Equal(t, 1.0, snapshot["access_keeper_lockouts_total"])
	assert.Equal(t, 0.0, snapshot["access_keeper_sessions_active"])
}
