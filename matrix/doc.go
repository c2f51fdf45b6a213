// Package matrix offers a generic dense matrix and the arithmetic around it.
//
// The matrix package provides:
//
//   - Dense[T], a row-major container over any Number element type, with
//     value semantics (Clone/Copy are deep, CopyFrom is assignment).
//   - Arithmetic kernels: Add, Sub, Mul (row-by-column product), Hadamard
//     (element-wise product), Scale and Transpose, plus in-place forms on *Dense.
//   - Structural operations: SetIdentity, Trace, SecondaryDiagonalSum,
//     SwapRows/SwapCols and a 2×2 Determinant.
//   - Rendering via a lazy iter.Seq of lines, String and io.WriterTo.
//   - gonum interoperability (ToGonum/FromGonum) and tolerance comparison (AllClose).
//
// Every fallible operation returns a sentinel error from errors.go wrapped with
// the operation name; match with errors.Is. Nothing panics on bad user input,
// and no operation silently replaces a failure with a zero matrix.
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.NewFromRows([][]int{{5, 6}, {7, 8}})
//	c, _ := matrix.Mul(a, b) // [[19 22] [43 50]]
//
// Dense values are not safe for concurrent mutation; each instance is owned
// by a single caller.
package matrix
