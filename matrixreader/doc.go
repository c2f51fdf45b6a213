// SPDX-License-Identifier: MIT

// Package matrixreader reads sequences of square matrices from plain text.
//
// Format:
//
//	N
//	a11 a12 ... a1N
//	...
//	aN1 aN2 ... aNN
//	b11 ...
//
// The first line holds a single non-negative integer N. Every following
// block of N lines is one N×N matrix; tokens are separated by any run of
// whitespace and tokens past the N-th on a line are ignored unless
// WithStrictColumns is set.
//
// Errors wrap one of ErrSource, ErrFormat, ErrUnexpectedEOF or ErrClosed and
// are prefixed with "name:line:" when a line is involved:
//
//	r, err := matrixreader.Open[float64]("data.txt")
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//	for m, err := range r.All() {
//		if err != nil {
//			return err
//		}
//		fmt.Print(m)
//	}
//
// Logging goes through github.com/ipfs/go-log under the subsystem name
// "matrixreader" at debug level.
package matrixreader
