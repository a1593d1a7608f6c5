package trend

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/halvorsen-quant/adfstat/adferrors"
)

func TestAdd_WorkedExample(t *testing.T) {
	// addTrend([[1],[2],[3]], "ctt", prepend=true) -> [[1,1,1,1],[1,2,4,2],[1,3,9,3]]
	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	got, err := Add(X, "ctt", true)
	require.NoError(t, err)

	want := [][]float64{
		{1, 1, 1, 1},
		{1, 2, 4, 2},
		{1, 3, 9, 3},
	}
	r, c := got.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	for i := range want {
		for j := range want[i] {
			require.Equal(t, want[i][j], got.At(i, j))
		}
	}
}

func TestAdd_ShapeLawForEachKind(t *testing.T) {
	X := mat.NewDense(4, 2, nil)
	widths := map[string]int{"c": 1, "t": 1, "ct": 2, "ctt": 3}
	for kind, width := range widths {
		got, err := Add(X, kind, false)
		require.NoError(t, err)
		r, c := got.Dims()
		require.Equal(t, 4, r)
		require.Equal(t, 2+width, c)

		w, err := Width(kind)
		require.NoError(t, err)
		require.Equal(t, width, w)
	}
}

func TestAdd_PrependPlacesTrendBeforeOriginalColumns(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{9, 9})
	got, err := Add(X, "c", true)
	require.NoError(t, err)
	require.Equal(t, 1.0, got.At(0, 0))
	require.Equal(t, 9.0, got.At(0, 1))
}

func TestAdd_AppendPlacesTrendAfterOriginalColumns(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{9, 9})
	got, err := Add(X, "c", false)
	require.NoError(t, err)
	require.Equal(t, 9.0, got.At(0, 0))
	require.Equal(t, 1.0, got.At(0, 1))
}

// Prepending trend columns and then dropping them again must give back the
// original matrix untouched.
func TestAdd_PrependThenDropRoundTrips(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1.5, -2,
		0.5, 3,
		-1, 7,
		2, 0.25,
	})
	for kind, width := range map[string]int{"c": 1, "t": 1, "ct": 2, "ctt": 3} {
		got, err := Add(X, kind, true)
		require.NoError(t, err)
		n, p := X.Dims()
		for i := 0; i < n; i++ {
			for j := 0; j < p; j++ {
				require.Equal(t, X.At(i, j), got.At(i, width+j), "kind=%s", kind)
			}
		}
	}
}

func TestAdd_RejectsUnknownTrendKind(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{1, 2})
	_, err := Add(X, "quadratic", true)
	require.Error(t, err)
	require.True(t, adferrors.Is(err, adferrors.InvalidArgument))

	_, err = Width("quadratic")
	require.Error(t, err)
}

func TestFromSeries_WidensOneDimensionalInput(t *testing.T) {
	got, err := FromSeries([]float64{1, 2, 3}, "c", true)
	require.NoError(t, err)
	r, c := got.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
}
