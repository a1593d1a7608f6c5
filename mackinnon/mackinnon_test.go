package mackinnon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvorsen-quant/adfstat/adferrors"
)

func TestPValue_ClampsAboveTauMaxToOne(t *testing.T) {
	p, err := PValue(tauMaxC[0]+10, "c", 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, p)
}

func TestPValue_ClampsBelowTauMinToZero(t *testing.T) {
	p, err := PValue(tauMinC[0]-10, "c", 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, p)
}

func TestPValue_SmallAndLargePAgreeAtTauStar(t *testing.T) {
	star := tauStarC[0]
	pBelow, err := PValue(star-1e-6, "c", 1)
	require.NoError(t, err)
	pAt, err := PValue(star, "c", 1)
	require.NoError(t, err)
	pAbove, err := PValue(star+1e-6, "c", 1)
	require.NoError(t, err)

	require.InDelta(t, pAt, pBelow, 1e-4)
	require.InDelta(t, pAt, pAbove, 1e-4)
}

func TestPValue_NAcceptsSynonymN(t *testing.T) {
	p1, err := PValue(-1.0, "n", 1)
	require.NoError(t, err)
	p2, err := PValue(-1.0, "nc", 1)
	require.NoError(t, err)
	require.Equal(t, p1, p2)
}

func TestPValue_RejectsUnknownRegression(t *testing.T) {
	_, err := PValue(-1.0, "bogus", 1)
	require.Error(t, err)
	require.True(t, adferrors.Is(err, adferrors.InvalidArgument))
}

func TestPValue_RejectsOutOfRangeN(t *testing.T) {
	_, err := PValue(-1.0, "c", 0)
	require.Error(t, err)

	_, err = PValue(-1.0, "c", 100)
	require.Error(t, err)
}

func TestCritValue_AsymptoticColumnAtInfiniteNobs(t *testing.T) {
	crit, err := CritValue(1, "c", math.Inf(1))
	require.NoError(t, err)
	require.Equal(t, tauC2010[0][0][0], crit[0])
	require.Equal(t, tauC2010[0][1][0], crit[1])
	require.Equal(t, tauC2010[0][2][0], crit[2])
}

func TestCritValue_FiniteSampleClosesInOnAsymptote(t *testing.T) {
	small, err := CritValue(1, "c", 50)
	require.NoError(t, err)
	large, err := CritValue(1, "c", 1e8)
	require.NoError(t, err)
	asym, err := CritValue(1, "c", math.Inf(1))
	require.NoError(t, err)

	require.InDelta(t, asym[1], large[1], 1e-3)
	require.NotEqual(t, small[1], large[1])
}

func TestCritValue_RejectsOutOfRangeN(t *testing.T) {
	_, err := CritValue(0, "c", 100)
	require.Error(t, err)

	_, err = CritValue(2, "nc", 100)
	require.Error(t, err)
}
