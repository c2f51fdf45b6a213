// SPDX-License-Identifier: MIT

// Package matrix: element constraint and the public Matrix interface.
// This file intentionally contains ONLY domain-facing types. Errors and
// options live in dedicated files (errors.go, options.go).

package matrix

// Number is the capability set required from an element type: it must support
// +, - and * and have a usable zero value. Comparisons are never required by
// the arithmetic kernels.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Matrix represents a two-dimensional mutable array of T values.
//
// Rationale:
//   - Kernels accept Matrix[T] so any storage can participate; *Dense[T]
//     unlocks flat-slice fast paths.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T Number] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix[T]
}
