// SPDX-License-Identifier: MIT
// Package matrixreader: sequential reader of square matrices from text.
//
// MAIN DESCRIPTION:
//   A Reader parses a header line holding N, then yields N×N matrices one at
//   a time. Each matrix occupies the next N lines; the first N
//   whitespace-separated tokens of a line are its row values.
//
// Implementation:
//   - bufio.Scanner splits lines; the buffer is bounded by WithMaxLineBytes.
//   - Every failure moves the reader to StateFailed and is sticky: later
//     ReadMatrix calls return the same error without touching the source.
//   - A source opened by Open is released as soon as the reader reaches a
//     terminal state, and again (idempotently) by Close.
//
// Complexity:
//   - ReadMatrix: O(N²) time, O(N²) memory for the result.
//
// AI-Hints:
//   - Blank lines are data lines, not separators.
//   - Errors carry "name:line:" so failures point at the offending input.

package matrixreader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	logging "github.com/ipfs/go-log"

	"github.com/katalvlaran/gomatrix/matrix"
)

var log = logging.Logger("matrixreader")

// Reader yields N×N matrices of T from a text source.
// A Reader is not safe for concurrent use.
type Reader[T matrix.Number] struct {
	name   string
	sc     *bufio.Scanner
	closer io.Closer // non-nil only when the Reader owns the source
	parse  ParseFunc[T]
	strict bool
	logger logging.StandardLogger

	n     int   // dimension from the header
	line  int   // 1-based number of the last scanned line
	count int   // matrices produced so far
	state State // lifecycle position
	err   error // sticky terminal error
}

// Open opens the file at path, parses its header and returns a Ready reader.
// The Reader owns the file; release it with Close.
func Open[T matrix.Number](path string, opts ...Option) (*Reader[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: open: %w: %w", path, ErrSource, err)
	}
	r, err := newReader[T](f, f, append([]Option{WithName(path)}, opts...))
	if err != nil {
		_ = f.Close()

		return nil, err
	}

	return r, nil
}

// New wraps src, parses its header and returns a Ready reader.
// src is never closed by the Reader; the caller keeps ownership.
func New[T matrix.Number](src io.Reader, opts ...Option) (*Reader[T], error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w: nil io.Reader", DefaultName, ErrSource)
	}

	return newReader[T](src, nil, opts)
}

func newReader[T matrix.Number](src io.Reader, closer io.Closer, opts []Option) (*Reader[T], error) {
	o := gatherOptions(opts...)
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, min(o.maxLineBytes, 64*1024)), o.maxLineBytes)

	r := &Reader[T]{
		name:   o.name,
		sc:     sc,
		closer: closer,
		parse:  resolveParser[T](o),
		strict: o.strictColumns,
		logger: o.logger,
	}

	header, ok, err := r.nextLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, r.errorf(ErrUnexpectedEOF, "missing dimension header")
	}
	n, err := parseHeader(header, o.maxDimension)
	if err != nil {
		return nil, fmt.Errorf("%s:%d: %w: header %q: %w", r.name, r.line, ErrFormat, strings.TrimSpace(header), err)
	}

	r.n = n
	r.state = StateReady
	r.logger.Debugf("%s: dimension %d", r.name, n)

	return r, nil
}

// N returns the dimension parsed from the header.
func (r *Reader[T]) N() int { return r.n }

// State returns the current lifecycle state.
func (r *Reader[T]) State() State { return r.state }

// Count returns how many matrices have been produced so far.
func (r *Reader[T]) Count() int { return r.count }

// Name returns the label used in errors and logs.
func (r *Reader[T]) Name() string { return r.name }

// Err returns the sticky terminal error, or nil while the reader is Ready.
func (r *Reader[T]) Err() error { return r.err }

// ReadMatrix parses the next N lines into an N×N matrix.
//
// When the input ends exactly at a matrix boundary the error matches both
// ErrUnexpectedEOF and io.EOF and the reader becomes Exhausted. Any other
// failure makes it Failed. In both cases the error is returned again by
// every later call. With N = 0 every call yields an empty 0×0 matrix.
func (r *Reader[T]) ReadMatrix() (*matrix.Dense[T], error) {
	switch {
	case r.state == StateClosed:
		return nil, fmt.Errorf("%s: %w", r.name, ErrClosed)
	case r.state.terminal():
		return nil, r.err
	case r.state != StateReady:
		return nil, fmt.Errorf("%s: %w: reader not opened", r.name, ErrSource)
	}

	m, err := matrix.NewDense[T](r.n, r.n)
	if err != nil {
		return nil, r.fail(fmt.Errorf("%s: %w", r.name, err))
	}
	first := r.line + 1
	for i := 0; i < r.n; i++ {
		line, ok, err := r.nextLine()
		if err != nil {
			return nil, r.fail(err)
		}
		if !ok {
			if i == 0 {
				return nil, r.exhaust()
			}

			return nil, r.fail(r.errorf(ErrUnexpectedEOF, "matrix %d: got %d of %d rows", r.count+1, i, r.n))
		}
		if err = r.fillRow(m, i, line); err != nil {
			return nil, r.fail(err)
		}
	}

	r.count++
	r.logger.Debugf("%s: matrix %d read from lines %d-%d", r.name, r.count, first, r.line)

	return m, nil
}

// All yields every remaining matrix in order. Iteration stops silently at a
// clean end of input and yields (nil, err) once for any other failure.
// With N = 0 nothing is yielded.
func (r *Reader[T]) All() iter.Seq2[*matrix.Dense[T], error] {
	return func(yield func(*matrix.Dense[T], error) bool) {
		if r.n == 0 && r.state == StateReady {
			return
		}
		for {
			m, err := r.ReadMatrix()
			if err != nil {
				if r.state != StateExhausted {
					yield(nil, err)
				}

				return
			}
			if !yield(m, nil) {
				return
			}
		}
	}
}

// Close releases the source if the Reader owns it. It is safe to call more
// than once; only the first call can report an error.
func (r *Reader[T]) Close() error {
	if r.state == StateReady {
		r.state = StateClosed
	}

	return r.release()
}

// fillRow parses the first N tokens of line into row i of m.
func (r *Reader[T]) fillRow(m *matrix.Dense[T], i int, line string) error {
	fields := strings.Fields(line)
	if len(fields) < r.n {
		return r.errorf(ErrFormat, "want %d values, got %d", r.n, len(fields))
	}
	if r.strict && len(fields) > r.n {
		return r.errorf(ErrFormat, "want %d values, got %d (strict columns)", r.n, len(fields))
	}
	for j := 0; j < r.n; j++ {
		v, err := r.parse(fields[j])
		if err != nil {
			return fmt.Errorf("%s:%d: %w: column %d: %w", r.name, r.line, ErrFormat, j+1, err)
		}
		if err = m.Set(i, j, v); err != nil {
			return fmt.Errorf("%s:%d: %w", r.name, r.line, err)
		}
	}

	return nil
}

// nextLine scans one line. ok is false at end of input.
func (r *Reader[T]) nextLine() (line string, ok bool, err error) {
	if r.sc.Scan() {
		r.line++

		return r.sc.Text(), true, nil
	}
	if err = r.sc.Err(); err != nil {
		return "", false, fmt.Errorf("%s:%d: %w: %w", r.name, r.line+1, ErrSource, err)
	}

	return "", false, nil
}

func (r *Reader[T]) errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s:%d: %w: %s", r.name, r.line, sentinel, fmt.Sprintf(format, args...))
}

func (r *Reader[T]) exhaust() error {
	r.state = StateExhausted
	r.err = fmt.Errorf("%s: %w after %d matrices: %w", r.name, ErrUnexpectedEOF, r.count, io.EOF)
	r.logger.Debugf("%s: exhausted after %d matrices", r.name, r.count)
	if cerr := r.release(); cerr != nil {
		r.logger.Warnf("%s: release: %v", r.name, cerr)
	}

	return r.err
}

func (r *Reader[T]) fail(err error) error {
	r.state = StateFailed
	r.err = err
	r.logger.Debugf("%v", err)
	if cerr := r.release(); cerr != nil {
		r.err = errors.Join(err, cerr)
	}

	return r.err
}

func (r *Reader[T]) release() error {
	if r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer = nil
	if err := c.Close(); err != nil {
		return fmt.Errorf("%s: close: %w: %w", r.name, ErrSource, err)
	}

	return nil
}
