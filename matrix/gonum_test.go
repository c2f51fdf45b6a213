package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gomatrix/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestMulAgreesWithGonum uses gonum's product as an independent oracle.
func TestMulAgreesWithGonum(t *testing.T) {
	a := randFloats(t, 5, 7, 11)
	b := randFloats(t, 7, 4, 12)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)

	ga, err := matrix.ToGonum[float64](a)
	require.NoError(t, err)
	gb, err := matrix.ToGonum[float64](b)
	require.NoError(t, err)
	var want mat.Dense
	want.Mul(ga, gb)

	back, err := matrix.FromGonum[float64](&want)
	require.NoError(t, err)
	ok, err := matrix.AllClose(got, back, 1e-12, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTransposeAgreesWithGonum(t *testing.T) {
	a := randFloats(t, 3, 6, 13)
	ga, err := matrix.ToGonum[float64](a)
	require.NoError(t, err)

	back, err := matrix.FromGonum[float64](ga.T())
	require.NoError(t, err)
	RequireEqual(t, a.T(), back)
}

func TestGonumRoundTripInts(t *testing.T) {
	a := MustRows(t, [][]int{{1, -2, 3}, {4, 5, -6}})
	g, err := matrix.ToGonum[int](a)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, [2]int{2, 3}, [2]int{r, c})
	require.Equal(t, -6.0, g.At(1, 2))

	back, err := matrix.FromGonum[int](g)
	require.NoError(t, err)
	RequireEqual(t, a, back)
}

func TestGonumErrors(t *testing.T) {
	_, err := matrix.ToGonum[int](MustDense[int](t, 0, 2))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.ToGonum[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromGonum[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
