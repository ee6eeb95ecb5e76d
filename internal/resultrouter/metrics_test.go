package resultrouter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricsSet_CollectorsAreRegistrable(t *testing.T) {
	m := newMetricsSet()
	collectors := m.Collectors()
	require.Len(t, collectors, 4)
	for _, c := range collectors {
		require.NotNil(t, c)
	}
}

func TestMetricsSet_BatchSizeHistogramIsLazyAndStable(t *testing.T) {
	m := newMetricsSet()
	first := m.batchSizeHistogram()
	second := m.batchSizeHistogram()
	require.Same(t, first, second)

	first.Update(42)
	require.EqualValues(t, 1, second.Count())
}
