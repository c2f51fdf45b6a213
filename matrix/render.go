// SPDX-License-Identifier: MIT

// Package matrix - text rendering.
//
// Lines is the single rendering kernel: String and WriteTo are compositions of it.
// Output is meant for consoles and logs; no machine-parseable format is promised,
// although the default layout happens to be readable back by matrixreader.

package matrix

import (
	"fmt"
	"io"
	"iter"
	"reflect"
	"strconv"
	"strings"
)

// Lines returns a lazy sequence of rendered rows (without line terminators).
// Each row is rendered only when the consumer asks for it.
//
// Complexity: O(c) per yielded row.
func (m *Dense[T]) Lines(opts ...Option) iter.Seq[string] {
	o := gatherOptions(opts...)
	format := elementFormatter[T](o.precision)

	return func(yield func(string) bool) {
		if m == nil {
			return
		}
		var b strings.Builder
		for i := 0; i < m.r; i++ {
			b.Reset()
			row := m.data[i*m.c : (i+1)*m.c]
			for j, v := range row {
				if j > 0 {
					b.WriteString(o.delimiter)
				}
				b.WriteString(format(v))
			}
			if o.trailing && m.c > 0 {
				b.WriteString(o.delimiter)
			}
			if !yield(b.String()) {
				return
			}
		}
	}
}

// Format renders the whole grid, each row terminated by '\n'.
func (m *Dense[T]) Format(opts ...Option) string {
	var b strings.Builder
	for line := range m.Lines(opts...) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}

// String renders the grid with default options.
func (m *Dense[T]) String() string { return m.Format() }

// WriteTo streams the rendered grid to w with default options.
// It implements io.WriterTo.
func (m *Dense[T]) WriteTo(w io.Writer) (int64, error) {
	return m.WriteToWith(w)
}

// WriteToWith streams the rendered grid to w with the given options.
func (m *Dense[T]) WriteToWith(w io.Writer, opts ...Option) (int64, error) {
	var total int64
	for line := range m.Lines(opts...) {
		n, err := io.WriteString(w, line+"\n")
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("Dense.WriteTo: %w", err)
		}
	}

	return total, nil
}

// elementFormatter picks the per-element formatter for T once per render.
func elementFormatter[T Number](precision int) func(T) string {
	kind := reflect.TypeFor[T]().Kind()
	switch kind {
	case reflect.Float32, reflect.Float64:
		bits := 64
		if kind == reflect.Float32 {
			bits = 32
		}
		if precision >= 0 {
			return func(v T) string { return strconv.FormatFloat(float64(v), 'f', precision, bits) }
		}

		return func(v T) string { return strconv.FormatFloat(float64(v), 'g', -1, bits) }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(v T) string { return strconv.FormatUint(uint64(v), 10) }
	default:
		return func(v T) string { return strconv.FormatInt(int64(v), 10) }
	}
}
