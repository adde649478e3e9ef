package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.TransitionsTotal.WithLabelValues("order", "APPLIED").Inc()
	m.TransitionsTotal.WithLabelValues("order", "IGNORED_STALE").Inc()
	m.SweepsTotal.Inc()
	m.SweepExpired.Add(3)
	m.NotifyFailures.Inc()
	m.HTTPDuration.WithLabelValues("POST", "/webhooks/payment", "200").Observe(0.012)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.TransitionsTotal.WithLabelValues("order", "APPLIED")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SweepsTotal))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.SweepExpired))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}
