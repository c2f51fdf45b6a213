// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros[T Number](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n < 0.
func NewIdentity[T Number](n int) (*Dense[T], error) {
	I, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	_ = I.SetIdentity() // square by construction

	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability. A nil m yields nil.
func CloneMatrix[T Number](m Matrix[T]) Matrix[T] {
	if isNil(m) {
		return nil
	}

	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense[T](m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Errors: ErrNilMatrix, ErrNotSquare.
func IdentityLike[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity[T](m.Rows())
}

// ---------- Arithmetic aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T Number](a, b Matrix[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Number](a, b Matrix[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T Number](a, b Matrix[T]) (*Dense[T], error) { return Mul(a, b) }

// HadamardProd is an alias for Hadamard: element-wise product a ⊙ b.
func HadamardProd[T Number](a, b Matrix[T]) (*Dense[T], error) { return Hadamard(a, b) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy[T Number](m Matrix[T], alpha T) (*Dense[T], error) { return Scale(m, alpha) }

// ---------- Convenience facades (compositions only; no loop duplication) ----------

// RowSums returns r where r[i] = Σ_j m[i,j].
// Implementation: Mul(m, ones(cols×1)).
func RowSums[T Number](m Matrix[T]) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	ones, err := onesColumn[T](m.Cols())
	if err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	prod, err := Mul(m, Matrix[T](ones))
	if err != nil {
		return nil, matrixErrorf("RowSums", err)
	}

	return prod.data, nil // prod is rows×1; its buffer is the answer
}

// ColSums returns c where c[j] = Σ_i m[i,j].
// Implementation: Transpose then RowSums.
func ColSums[T Number](m Matrix[T]) ([]T, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("ColSums", err)
	}

	return RowSums[T](mt)
}

// onesColumn builds an n×1 matrix of ones.
func onesColumn[T Number](n int) (*Dense[T], error) {
	v, err := NewDense[T](n, 1)
	if err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] = 1
	}

	return v, nil
}
