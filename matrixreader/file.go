// SPDX-License-Identifier: MIT

package matrixreader

import (
	"errors"

	"github.com/katalvlaran/gomatrix/matrix"
)

// ReadFile opens path and returns its first matrix.
func ReadFile[T matrix.Number](path string, opts ...Option) (*matrix.Dense[T], error) {
	r, err := Open[T](path, opts...)
	if err != nil {
		return nil, err
	}
	m, err := r.ReadMatrix()

	return m, errors.Join(err, r.Close())
}

// ReadAllFile opens path and returns every matrix in it.
// A file that ends mid-matrix returns the matrices read so far together
// with the error.
func ReadAllFile[T matrix.Number](path string, opts ...Option) ([]*matrix.Dense[T], error) {
	r, err := Open[T](path, opts...)
	if err != nil {
		return nil, err
	}

	var out []*matrix.Dense[T]
	for m, err := range r.All() {
		if err != nil {
			return out, errors.Join(err, r.Close())
		}
		out = append(out, m)
	}

	return out, r.Close()
}
