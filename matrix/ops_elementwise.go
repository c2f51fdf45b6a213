// SPDX-License-Identifier: MIT

// Package matrix - element-wise comparisons and reductions.
//
// Purpose:
//   - Equal: exact structural + element equality (integer-friendly).
//   - AllClose: tolerance comparison for floating-point results; the numeric
//     policy is gonum's scalar.EqualWithinAbsOrRel so results agree with
//     gonum-based pipelines.
//   - FrobeniusNorm: √(Σ v²) via gonum floats.Norm.
//
// AI-Hints:
//   - Use Equal for integer matrices and AllClose for float products and chains
//     such as (A*B)*C vs A*(B*C).

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	opAllClose = "AllClose"
	opNorm     = "FrobeniusNorm"
)

// Equal reports whether a and b have the same shape and identical elements.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
func Equal[T Number](a, b Matrix[T]) bool {
	an, bn := isNil(a), isNil(b)
	if an || bn {
		return an == bn
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}

// AllClose checks every element pair with scalar.EqualWithinAbsOrRel(a, b, atol, rtol):
// a pair is close when |a-b| ≤ atol, or when the relative difference is ≤ rtol.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
func AllClose[T Number](a, b Matrix[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv T
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !scalar.EqualWithinAbsOrRel(float64(av), float64(bv), atol, rtol) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}

// FrobeniusNorm returns √(Σ m[i,j]²) computed in float64.
// Errors: ErrNilMatrix.
func FrobeniusNorm[T Number](m Matrix[T]) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	vals := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opNorm, err)
			}
			vals = append(vals, float64(v))
		}
	}
	if len(vals) == 0 {
		return 0, nil
	}

	return floats.Norm(vals, 2), nil
}
