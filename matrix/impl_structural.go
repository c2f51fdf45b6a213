// SPDX-License-Identifier: MIT

// Package matrix - structural operations: identity, diagonals, swaps, 2×2 determinant.
//
// Purpose:
//   - Square-only reductions (Trace, SecondaryDiagonalSum, Determinant) fail with
//     ErrNotSquare instead of reading a partial diagonal.
//   - Row/column swaps are in place; out-of-range indices are a reported no-op
//     (boolean result), never a panic and never a partial write.
//
// Complexity quicksheet:
//   - SetIdentity: O(n²); Trace/SecondaryDiagonalSum: O(n); SwapRows: O(c); SwapCols: O(r).

package matrix

import "fmt"

const (
	opSetIdentity   = "SetIdentity"
	opTrace         = "Trace"
	opSecondaryDiag = "SecondaryDiagonalSum"
	opDeterminant   = "Determinant"
)

// SetIdentity overwrites m with the identity: ones on the diagonal, zeros elsewhere.
// Errors: ErrNilMatrix, ErrNotSquare (m is left unchanged).
func (m *Dense[T]) SetIdentity() error {
	if err := ValidateSquareNonNil[T](m); err != nil {
		return matrixErrorf(opSetIdentity, err)
	}
	clear(m.data)
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+i] = 1
	}

	return nil
}

// Trace returns Σ m[i,i] for a square matrix. The trace of a 0×0 matrix is 0.
// Errors: ErrNilMatrix, ErrNotSquare.
func Trace[T Number](m Matrix[T]) (T, error) {
	return diagonalSum(m, opTrace, func(n, i int) int { return i })
}

// SecondaryDiagonalSum returns Σ m[i, n-1-i] (top-right to bottom-left).
// Errors: ErrNilMatrix, ErrNotSquare.
func SecondaryDiagonalSum[T Number](m Matrix[T]) (T, error) {
	return diagonalSum(m, opSecondaryDiag, func(n, i int) int { return n - 1 - i })
}

// diagonalSum sums m[i, col(n,i)] for i in [0,n) after the square check.
func diagonalSum[T Number](m Matrix[T], tag string, col func(n, i int) int) (T, error) {
	var sum T
	if err := ValidateSquareNonNil(m); err != nil {
		return sum, matrixErrorf(tag, err)
	}

	n := m.Rows()
	if dm, ok := m.(*Dense[T]); ok {
		for i := 0; i < n; i++ {
			sum += dm.data[i*n+col(n, i)]
		}

		return sum, nil
	}

	for i := 0; i < n; i++ {
		v, err := m.At(i, col(n, i))
		if err != nil {
			var zero T
			return zero, matrixErrorf(tag, err)
		}
		sum += v
	}

	return sum, nil
}

// Determinant returns a00·a11 − a01·a10 for a 2×2 matrix.
// Larger (and smaller) square matrices are not supported.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare (non-square input),
//   - ErrUnsupported (square but n != 2).
func Determinant[T Number](m Matrix[T]) (T, error) {
	var zero T
	if err := ValidateSquareNonNil(m); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	if n := m.Rows(); n != 2 {
		return zero, matrixErrorf(opDeterminant, fmt.Errorf("%dx%d: %w", n, n, ErrUnsupported))
	}

	var a [4]T
	for k := range a {
		v, err := m.At(k/2, k%2)
		if err != nil {
			return zero, matrixErrorf(opDeterminant, err)
		}
		a[k] = v
	}

	return a[0]*a[3] - a[1]*a[2], nil
}

// Trace is the method form of the package-level Trace.
func (m *Dense[T]) Trace() (T, error) { return Trace[T](m) }

// SecondaryDiagonalSum is the method form of the package-level SecondaryDiagonalSum.
func (m *Dense[T]) SecondaryDiagonalSum() (T, error) { return SecondaryDiagonalSum[T](m) }

// Determinant is the method form of the package-level Determinant.
func (m *Dense[T]) Determinant() (T, error) { return Determinant[T](m) }

// SwapRows exchanges rows r1 and r2 in place and reports true.
// When either index is out of range the matrix is left unchanged and SwapRows
// reports false. Swapping a row with itself is a successful no-op.
func (m *Dense[T]) SwapRows(r1, r2 int) bool {
	if m == nil || !m.InRowBounds(r1) || !m.InRowBounds(r2) {
		return false
	}
	if r1 == r2 {
		return true
	}
	a := m.data[r1*m.c : (r1+1)*m.c]
	b := m.data[r2*m.c : (r2+1)*m.c]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}

	return true
}

// SwapCols exchanges columns c1 and c2 in place and reports true.
// Out-of-range indices leave the matrix unchanged and report false.
func (m *Dense[T]) SwapCols(c1, c2 int) bool {
	if m == nil || !m.InColBounds(c1) || !m.InColBounds(c2) {
		return false
	}
	if c1 == c2 {
		return true
	}
	var base int
	for i := 0; i < m.r; i++ {
		base = i * m.c
		m.data[base+c1], m.data[base+c2] = m.data[base+c2], m.data[base+c1]
	}

	return true
}
