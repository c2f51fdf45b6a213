// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for rendering. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts Lines/String/WriteTo and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDelimiter separates values within a rendered row.
	DefaultDelimiter = " "

	// DefaultPrecision renders floats in their shortest exact form (%v).
	// A non-negative precision switches floats to fixed-point with that many digits.
	// Integer element types ignore precision.
	DefaultPrecision = -1

	// DefaultTrailingDelimiter appends the delimiter after the last value of each row.
	DefaultTrailingDelimiter = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDelimiterEmpty   = "matrix: WithDelimiter: delimiter must be non-empty"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= -1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective rendering configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	delimiter string // DefaultDelimiter
	precision int    // DefaultPrecision
	trailing  bool   // DefaultTrailingDelimiter
}

// WithDelimiter sets the separator placed between values of a row.
// Panics when delim is empty (the grid would no longer be readable).
func WithDelimiter(delim string) Option {
	if delim == "" {
		panic(panicDelimiterEmpty)
	}

	return func(o *Options) { o.delimiter = delim }
}

// WithTabs separates values with a single tab.
func WithTabs() Option { return WithDelimiter("\t") }

// WithPrecision renders floating-point elements with exactly p fractional digits.
// p == -1 restores the default shortest representation. Panics when p < -1.
func WithPrecision(p int) Option {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithTrailingDelimiter appends the delimiter after the last value of every
// row, reproducing the classic "v v v \n" console layout.
func WithTrailingDelimiter() Option {
	return func(o *Options) { o.trailing = true }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins semantics.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Delimiter reports the effective value separator.
func (o Options) Delimiter() string { return o.delimiter }

// Precision reports the effective float precision (-1 = shortest).
func (o Options) Precision() int { return o.precision }

// TrailingDelimiter reports whether rows end with the delimiter.
func (o Options) TrailingDelimiter() bool { return o.trailing }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		delimiter: DefaultDelimiter,
		precision: DefaultPrecision,
		trailing:  DefaultTrailingDelimiter,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in render paths.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
