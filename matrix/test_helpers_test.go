// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gomatrix/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide[T matrix.Number] struct{ matrix.Matrix[T] }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense[T matrix.Number](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(tb, err)

	return m
}

// MustRows builds a *Dense from a literal or fails the test.
func MustRows[T matrix.Number](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Number](tb testing.TB, m matrix.Matrix[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// RequireEqual fails unless a and b have equal shape and elements,
// printing both grids on mismatch.
func RequireEqual[T matrix.Number](tb testing.TB, want, got *matrix.Dense[T]) {
	tb.Helper()
	require.NotNil(tb, got)
	require.Truef(tb, matrix.Equal[T](want, got), "want:\n%s\ngot:\n%s", want, got)
}

// randInts fills an r×c int matrix deterministically from seed with values in [-9, 9].
func randInts(tb testing.TB, r, c int, seed int64) *matrix.Dense[int] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense[int](tb, r, c)
	m.Apply(func(_, _ int, _ int) int { return rng.Intn(19) - 9 })

	return m
}

// randFloats fills an r×c float64 matrix deterministically from seed with values in [-1, 1).
func randFloats(tb testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense[float64](tb, r, c)
	m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*2 - 1 })

	return m
}
