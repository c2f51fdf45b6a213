// SPDX-License-Identifier: MIT

// Package matrix - gonum interoperability.
//
// Purpose:
//   - ToGonum exports any Matrix[T] as a *mat.Dense (float64) for code that
//     needs gonum's solvers or formatting.
//   - FromGonum imports any mat.Matrix into a Dense[T], converting element-wise.
//
// Notes:
//   - gonum forbids empty dense matrices (mat.NewDense panics on 0 rows/cols);
//     ToGonum therefore rejects empty inputs with ErrInvalidDimensions.
//   - Converting float64 → integer T truncates toward zero (Go conversion rules).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new gonum *mat.Dense.
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty matrix).
func ToGonum[T Number](m Matrix[T]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, matrixErrorf(opToGonum, fmt.Errorf("empty %dx%d: %w", r, c, ErrInvalidDimensions))
	}

	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opToGonum, err)
			}
			data[i*c+j] = float64(v)
		}
	}

	return mat.NewDense(r, c, data), nil
}

// FromGonum copies any gonum matrix into a new Dense[T].
// Errors: ErrNilMatrix when g is nil.
func FromGonum[T Number](g mat.Matrix) (*Dense[T], error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense[T](r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = T(g.At(i, j))
		}
	}

	return out, nil
}
