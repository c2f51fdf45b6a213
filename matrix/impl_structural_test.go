package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gomatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestSetIdentity(t *testing.T) {
	m := MustRows(t, [][]float64{{9, 9, 9}, {9, 9, 9}, {9, 9, 9}})
	require.NoError(t, m.SetIdentity())
	RequireEqual(t, MustRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}), m)

	rect := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, rect.SetIdentity(), matrix.ErrNotSquare)
	RequireEqual(t, MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}}), rect)
}

func TestDiagonalSums(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	tr, err := m.Trace()
	require.NoError(t, err)
	require.Equal(t, 15, tr) // 1+5+9

	sd, err := m.SecondaryDiagonalSum()
	require.NoError(t, err)
	require.Equal(t, 15, sd) // 3+5+7

	// fallback path
	tr, err = matrix.Trace[int](hide[int]{m})
	require.NoError(t, err)
	require.Equal(t, 15, tr)
	sd, err = matrix.SecondaryDiagonalSum[int](hide[int]{m})
	require.NoError(t, err)
	require.Equal(t, 15, sd)
}

func TestDiagonalSumsAsymmetric(t *testing.T) {
	m := MustRows(t, [][]int{{1, 0, 10}, {0, 2, 0}, {20, 0, 3}})
	tr, err := m.Trace()
	require.NoError(t, err)
	require.Equal(t, 6, tr)
	sd, err := m.SecondaryDiagonalSum()
	require.NoError(t, err)
	require.Equal(t, 32, sd)
}

func TestDiagonalSumsNotSquare(t *testing.T) {
	m := MustDense[int](t, 2, 3)
	_, err := m.Trace()
	require.ErrorIs(t, err, matrix.ErrNotSquare)
	_, err = m.SecondaryDiagonalSum()
	require.ErrorIs(t, err, matrix.ErrNotSquare)
	_, err = matrix.Trace[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTraceOfIdentity(t *testing.T) {
	for n := 0; n <= 6; n++ {
		id, err := matrix.NewIdentity[int](n)
		require.NoError(t, err)
		tr, err := id.Trace()
		require.NoError(t, err)
		require.Equal(t, n, tr)
	}
}

func TestDeterminant(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2}, {3, 4}})
	d, err := m.Determinant()
	require.NoError(t, err)
	require.Equal(t, -2, d)

	f := MustRows(t, [][]float64{{0.5, 2}, {1, 8}})
	df, err := matrix.Determinant[float64](hide[float64]{f})
	require.NoError(t, err)
	require.InDelta(t, 2.0, df, 1e-12)

	_, err = MustDense[int](t, 2, 3).Determinant()
	require.ErrorIs(t, err, matrix.ErrNotSquare)

	for _, n := range []int{0, 1, 3, 4} {
		_, err = MustDense[int](t, n, n).Determinant()
		require.ErrorIsf(t, err, matrix.ErrUnsupported, "n=%d", n)
	}
}

func TestSwapRows(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2}, {3, 4}, {5, 6}})

	require.True(t, m.SwapRows(0, 2))
	RequireEqual(t, MustRows(t, [][]int{{5, 6}, {3, 4}, {1, 2}}), m)

	require.True(t, m.SwapRows(1, 1))
	RequireEqual(t, MustRows(t, [][]int{{5, 6}, {3, 4}, {1, 2}}), m)
}

// TestSwapOutOfRange: invalid indices leave the matrix unchanged and report false.
func TestSwapOutOfRange(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	before := m.Copy()

	for _, tc := range []struct{ a, b int }{{0, 2}, {-1, 0}, {2, 5}, {1, -3}} {
		require.Falsef(t, m.SwapRows(tc.a, tc.b), "SwapRows(%d,%d)", tc.a, tc.b)
	}
	for _, tc := range []struct{ a, b int }{{0, 3}, {-1, 0}, {3, 3}} {
		require.Falsef(t, m.SwapCols(tc.a, tc.b), "SwapCols(%d,%d)", tc.a, tc.b)
	}
	RequireEqual(t, before, m)

	var nilDense *matrix.Dense[int]
	require.False(t, nilDense.SwapRows(0, 0))
	require.False(t, nilDense.SwapCols(0, 0))
}

func TestSwapCols(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	require.True(t, m.SwapCols(0, 2))
	RequireEqual(t, MustRows(t, [][]int{{3, 2, 1}, {6, 5, 4}}), m)
}
