package slidingwindow

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentation_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	w, err := NewWithVectorStorage[int](4, 2, WithMetrics(reg), WithName("latency"))
	require.NoError(t, err)

	s, ok := w.storage.(*instrumentedStorage[int])
	require.True(t, ok)

	for i := 0; i < 6; i++ {
		w.Push(i)
	}
	assert.Equal(t, 6.0, testutil.ToFloat64(s.metrics.pushes))
	assert.Equal(t, 0.0, testutil.ToFloat64(s.metrics.rewinds))
	assert.Equal(t, 0.75, testutil.ToFloat64(s.metrics.utilization))

	for i := 6; i < 9; i++ {
		w.Push(i)
	}
	assert.Equal(t, 9.0, testutil.ToFloat64(s.metrics.pushes))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.rewinds))
	assert.Equal(t, 0.5, testutil.ToFloat64(s.metrics.utilization))

	// Reads pass through unchanged.
	vec, err := w.Vec()
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6, 7, 8}, vec)

	expected := `
# HELP slidingwindow_rewinds_total Total number of buffer compactions
# TYPE slidingwindow_rewinds_total counter
slidingwindow_rewinds_total{window="latency"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "slidingwindow_rewinds_total"))
}

func TestInstrumentation_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewWithVectorStorage[int](4, 2, WithMetrics(reg), WithName("dup"))
	require.NoError(t, err)

	w, err := NewWithVectorStorage[int](4, 2, WithMetrics(reg), WithName("dup"))
	assert.Nil(t, w)
	require.Error(t, err)

	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
	assert.Contains(t, err.Error(), `window "dup"`)

	// A different name registers alongside.
	_, err = NewWithVectorStorage[int](4, 2, WithMetrics(reg), WithName("other"))
	assert.NoError(t, err)
}

func TestInstrumentation_LogsRewinds(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	var backing [5]float64
	w, err := NewWithArrayStorage(4, backing[:], WithLogger(logger), WithName("prices"))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		w.Push(float64(i))
	}
	assert.Empty(t, hook.AllEntries())

	// Capacity 5 rewinds on the 6th push, then every 2nd push.
	w.Push(5)
	w.Push(6)
	w.Push(7)
	require.Len(t, hook.AllEntries(), 2)

	entry := hook.LastEntry()
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "window buffer rewound", entry.Message)
	assert.Equal(t, "prices", entry.Data["window"])
	assert.Equal(t, 4, entry.Data["size"])
	assert.Equal(t, 5, entry.Data["capacity"])
	assert.Equal(t, uint64(2), entry.Data["rewinds"])

	last, err := w.Last()
	require.NoError(t, err)
	assert.Equal(t, 7.0, last)
}

func TestInstrumentation_PushDoesNotAllocate(t *testing.T) {
	w, err := NewWithGenericArrayStorage[int, L16](4, WithMetrics(prometheus.NewRegistry()))
	require.NoError(t, err)

	i := 0
	allocs := testing.AllocsPerRun(1000, func() {
		w.Push(i)
		i++
	})
	assert.Zero(t, allocs)
}
