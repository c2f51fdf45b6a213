// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, Hadamard product, matrix
// multiplication, transpose and scalar scaling. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical arithmetic kernels used across the package.
//   - Define operation tags for uniform error reporting.
//
// Notes:
//   - Mul is the row-by-column product; the element-wise product is Hadamard.
//   - Kernels never mutate their operands. The *InPlace methods on *Dense
//     compute into a staging result and commit only on success.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opHadamard   = "Hadamard"
	opTranspose  = "Transpose"
	opScale      = "Scale"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opMulInPlace = "MulInPlace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical op* constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

func addOp[T Number](x, y T) T { return x + y }
func subOp[T Number](x, y T) T { return x - y }
func mulOp[T Number](x, y T) T { return x * y }

// ewBinary computes out[i,j] = op(a[i,j], b[i,j]) for identically shaped inputs.
// Internal helper for Add/Sub/Hadamard to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func ewBinary[T Number](a, b Matrix[T], op func(x, y T) T, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range res.data {
				res.data[idx] = op(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = op(av, bv)
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Number](a, b Matrix[T]) (*Dense[T], error) { return ewBinary(a, b, addOp[T], opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub[T Number](a, b Matrix[T]) (*Dense[T], error) { return ewBinary(a, b, subOp[T], opSub) }

// Hadamard computes the element-wise product C = A ⊙ B.
// It is deliberately distinct from Mul, which is the row-by-column product.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Hadamard[T Number](a, b Matrix[T]) (*Dense[T], error) {
	return ewBinary(a, b, mulOp[T], opHadamard)
}

// Mul performs standard matrix multiplication C = A × B, C[i,j] = Σₖ A[i,k]·B[k,j].
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new matrix C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionIncompatible (A.Cols != B.Rows).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//   - Every term a[i,k]·b[k,j] is accumulated, so IEEE NaN/Inf propagate
//     identically on both paths.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current T
	)

	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = 0
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ):
// out[j,i] = m[i,j], shape Cols×Rows. The input is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense[T]); ok {
		for i = 0; i < rows; i++ {
			base := i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}

		return res, nil
	}

	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns alpha·m as a new matrix.
// Errors: ErrNilMatrix.
func Scale[T Number](m Matrix[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if dm, ok := m.(*Dense[T]); ok {
		for idx, v := range dm.data {
			res.data[idx] = alpha * v
		}

		return res, nil
	}

	var v T
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = alpha * v
		}
	}

	return res, nil
}

// ---------- In-place operators (the receiver is the left operand) ----------

// AddInPlace performs m += b. On error m is left unchanged.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense[T]) AddInPlace(b Matrix[T]) error {
	return m.commit(opAddInPlace, func() (*Dense[T], error) { return Add[T](m, b) })
}

// SubInPlace performs m -= b. On error m is left unchanged.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense[T]) SubInPlace(b Matrix[T]) error {
	return m.commit(opSubInPlace, func() (*Dense[T], error) { return Sub[T](m, b) })
}

// MulInPlace performs m = m × b.
// The shape of m is fixed for its lifetime, so b must be square with
// b.Rows == m.Cols; any other b fails with ErrDimensionIncompatible and m is
// left unchanged. Use Mul to obtain products of a different shape.
func (m *Dense[T]) MulInPlace(b Matrix[T]) error {
	if isNil[T](m) || isNil(b) {
		return matrixErrorf(opMulInPlace, ErrNilMatrix)
	}
	if b.Rows() != b.Cols() {
		return matrixErrorf(opMulInPlace, fmt.Errorf("right operand %dx%d would change shape: %w",
			b.Rows(), b.Cols(), ErrDimensionIncompatible))
	}

	return m.commit(opMulInPlace, func() (*Dense[T], error) { return Mul[T](m, b) })
}

// T returns the transpose of m as a new matrix (method form of Transpose).
func (m *Dense[T]) T() *Dense[T] {
	res, _ := Transpose[T](m) // a non-nil *Dense cannot fail

	return res
}

// commit runs kernel and copies its result into m when shapes agree.
func (m *Dense[T]) commit(tag string, kernel func() (*Dense[T], error)) error {
	if m == nil {
		return matrixErrorf(tag, ErrNilMatrix)
	}
	res, err := kernel()
	if err != nil {
		return matrixErrorf(tag, err)
	}
	copy(m.data, res.data) // shapes equal by kernel contract

	return nil
}
