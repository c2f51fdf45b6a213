// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gomatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[int](-1, 5)                // negative rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense[float64](5, -2)             // negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewDenseEmptyShapes verifies that zero-sized shapes are legal.
func TestNewDenseEmptyShapes(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 0}, {0, 3}, {4, 0}} {
		m, err := matrix.NewDense[int](tc.rows, tc.cols)
		require.NoError(t, err)
		require.Equal(t, tc.rows, m.Rows())
		require.Equal(t, tc.cols, m.Cols())
	}
}

// TestNewDenseDefaultZero checks that every element starts at T's zero value.
func TestNewDenseDefaultZero(t *testing.T) {
	m := MustDense[float32](t, 3, 4)
	m.Do(func(i, j int, v float32) bool {
		require.Zerof(t, v, "element [%d,%d] must be 0", i, j)
		return true
	})
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m := MustDense[int](t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
	require.False(t, m.IsSquare())
}

// TestNewFromRows covers literal construction, including ragged and empty input.
func TestNewFromRows(t *testing.T) {
	m, err := matrix.NewFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 6, MustAt[int](t, m, 1, 2))

	_, err = matrix.NewFromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedInput)

	_, err = matrix.NewFromRows([][]int{{1}, {2, 3}})
	require.ErrorIs(t, err, matrix.ErrRaggedInput)

	empty, err := matrix.NewFromRows[float64](nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())
}

// TestNewFromRowsDoesNotAlias ensures the literal is copied, not referenced.
func TestNewFromRowsDoesNotAlias(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	m := MustRows(t, src)
	src[0][0] = 99
	require.Equal(t, 1, MustAt[int](t, m, 0, 0))
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense[int](t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense[float64](t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt[float64](t, m, 1, 2))
}

// TestBounds checks the boolean row/column bound predicates.
func TestBounds(t *testing.T) {
	m := MustDense[int](t, 2, 3)
	require.True(t, m.InRowBounds(0))
	require.True(t, m.InRowBounds(1))
	require.False(t, m.InRowBounds(2))
	require.False(t, m.InRowBounds(-1))
	require.True(t, m.InColBounds(2))
	require.False(t, m.InColBounds(3))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 0}, {0, 2}})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0)) // modify the clone only

	require.Equal(t, 1.0, MustAt[float64](t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))

	cp := m.Copy()
	require.NoError(t, cp.Set(1, 1, -1))
	require.Equal(t, 2.0, MustAt[float64](t, m, 1, 1))
}

// TestCopyFrom covers assignment semantics.
func TestCopyFrom(t *testing.T) {
	dst := MustDense[int](t, 2, 2)
	src := MustRows(t, [][]int{{1, 2}, {3, 4}})

	require.NoError(t, dst.CopyFrom(src))
	RequireEqual(t, src, dst)

	// dst keeps its own buffer
	require.NoError(t, src.Set(0, 0, 42))
	require.Equal(t, 1, MustAt[int](t, dst, 0, 0))

	// fallback path through the interface
	require.NoError(t, dst.CopyFrom(hide[int]{MustRows(t, [][]int{{5, 6}, {7, 8}})}))
	require.Equal(t, 8, MustAt[int](t, dst, 1, 1))

	err := dst.CopyFrom(MustDense[int](t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, 8, MustAt[int](t, dst, 1, 1)) // untouched

	require.ErrorIs(t, dst.CopyFrom(nil), matrix.ErrNilMatrix)
}

// TestRowCol verifies row and column extraction returns copies.
func TestRowCol(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, row)
	row[0] = 100
	require.Equal(t, 4, MustAt[int](t, m, 1, 0))

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 6}, col)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDoEarlyStop checks the visitor order and early exit.
func TestDoEarlyStop(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2}, {3, 4}})
	var seen []int
	m.Do(func(_, _ int, v int) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []int{1, 2, 3}, seen)
}

// TestApply checks the in-place map.
func TestApply(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2}, {3, 4}})
	m.Apply(func(i, j int, v int) int { return v*10 + i + j })
	RequireEqual(t, MustRows(t, [][]int{{10, 21}, {31, 42}}), m)
}
