// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped) and
// tests MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap sentinels with an operation tag
// ("Add: ...", "Dense.At(3,1): ...") via matrixErrorf/denseErrorf; callers
// still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> square -> unsupported.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// Zero rows or columns are legal (empty matrices).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrRaggedInput is returned by the literal constructor when the inner rows
	// do not all have the same length as the first row.
	ErrRaggedInput = errors.New("matrix: ragged rows in literal")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Col) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of element-wise operations
	// (Add/Sub/Hadamard/CopyFrom/AllClose) with different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDimensionIncompatible indicates a product A×B where A.Cols != B.Rows.
	ErrDimensionIncompatible = errors.New("matrix: dimensions incompatible for product")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrUnsupported marks a request for an unimplemented case
	// (e.g., Determinant of a matrix larger than 2×2).
	ErrUnsupported = errors.New("matrix: operation not supported")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf tolerance passed to AllClose.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
