// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep value semantics: a Dense exclusively owns its buffer; Clone/Copy are deep.
//   - Keep the shape fixed for the lifetime of a Dense; shape-changing operations
//     (Transpose, Mul) always allocate a new matrix.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go).
//   - Use NewFromRows for literals in tests and examples; it rejects ragged input.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row/Col: O(c)/O(r).

package matrix

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxCol      = "Col"      // method tag used in error wrappers
	ctxCopyFrom = "CopyFrom" // method tag used in error wrappers
	ctxLiteral  = "NewFromRows"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over T.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Number] struct {
	r, c int // row and column counts (>=0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ Matrix[int]     = (*Dense[int])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer (make() zero-fills deterministically).
//
// Behavior highlights:
//   - Zero rows or columns are legal and produce an empty matrix.
//   - No panics on user errors; returns sentinel errors.
//
// Errors:
//   - ErrInvalidDimensions (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense[T]{
		r:    rows,
		c:    cols,
		data: make([]T, rows*cols),
	}, nil
}

// NewFromRows builds a Dense from a literal slice of rows.
// MAIN DESCRIPTION:
//   - Row count = len(rows); column count = len(rows[0]) (0 when rows is empty).
//
// Implementation:
//   - Stage 1: derive shape from the first row.
//   - Stage 2: verify every row has the same length; else ErrRaggedInput.
//   - Stage 3: copy values into a fresh flat buffer (input is never aliased).
//
// Errors:
//   - ErrRaggedInput (row i has a different length than row 0).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Literals keep tests readable: NewFromRows([][]int{{1, 2}, {3, 4}}).
func NewFromRows[T Number](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxLiteral, i, len(rows[i]), c, ErrRaggedInput)
		}
	}

	m := &Dense[T]{r: r, c: c, data: make([]T, r*c)}
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i]) // row i → slice [i*c, (i+1)*c)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// InRowBounds reports whether r is a valid row index.
func (m *Dense[T]) InRowBounds(r int) bool { return r >= 0 && r < m.r }

// InColBounds reports whether c is a valid column index.
func (m *Dense[T]) InColBounds(c int) bool { return c >= 0 && c < m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if !m.InRowBounds(row) || !m.InColBounds(col) {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil // row-major offset
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the zero value with the error.
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Copy returns a deep copy with the concrete type preserved.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Copy() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Clone returns a deep copy (new buffer). Mutations of the clone never
// affect the original. The dynamic type of the result is *Dense[T].
func (m *Dense[T]) Clone() Matrix[T] { return m.Copy() }

// CopyFrom overwrites every element of m with the matching element of src.
// MAIN DESCRIPTION:
//   - Assignment with value semantics: shapes must match, m keeps its own buffer.
//
// Implementation:
//   - Stage 1: validate src non-nil and same shape.
//   - Stage 2: fast path copy() for *Dense; otherwise stage values through a
//     scratch buffer so a failing At leaves m untouched.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense, O(r*c) otherwise.
func (m *Dense[T]) CopyFrom(src Matrix[T]) error {
	if err := ValidateBinarySameShape[T](m, src); err != nil {
		return matrixErrorf(ctxCopyFrom, err)
	}
	if ds, ok := src.(*Dense[T]); ok {
		copy(m.data, ds.data)
		return nil
	}

	buf := make([]T, len(m.data))
	var i, j int
	var v T
	var err error
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if v, err = src.At(i, j); err != nil {
				return matrixErrorf(ctxCopyFrom, err)
			}
			buf[i*m.c+j] = v
		}
	}
	copy(m.data, buf)

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i is not a valid row.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if !m.InRowBounds(i) {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange when j is not a valid column.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if !m.InColBounds(j) {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major order.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
