package diff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeries_ComputesFirstDifferences(t *testing.T) {
	got := Series([]float64{1, 3, 6, 10})
	require.Equal(t, []float64{2, 3, 4}, got)
}

func TestSeries_ShortInputsReturnEmpty(t *testing.T) {
	require.Empty(t, Series(nil))
	require.Empty(t, Series([]float64{1}))
}
