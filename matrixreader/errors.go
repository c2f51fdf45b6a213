// SPDX-License-Identifier: MIT
// Package matrixreader: sentinel error set.
// All failures returned by the reader wrap exactly one of these sentinels
// (plus, where useful, the underlying cause such as *fs.PathError or
// *strconv.NumError) and are matched with errors.Is.

package matrixreader

import "errors"

var (
	// ErrSource indicates the underlying text source could not be opened or read.
	ErrSource = errors.New("matrixreader: source error")

	// ErrFormat indicates the header or an element token failed to parse,
	// or a data line carried fewer tokens than the dimension requires.
	ErrFormat = errors.New("matrixreader: format error")

	// ErrUnexpectedEOF indicates fewer lines were available than the dimension requires.
	// When input ends exactly at a matrix boundary the returned error also matches io.EOF.
	ErrUnexpectedEOF = errors.New("matrixreader: unexpected end of input")

	// ErrClosed is returned by ReadMatrix after Close.
	ErrClosed = errors.New("matrixreader: reader closed")
)
