// SPDX-License-Identifier: MIT
// Package matrixreader: functional options for Reader construction.
//
// Options follow the same shape as matrix.Option: setters mutate a private
// Options struct, defaults live in exported constants, and nonsensical
// values panic at option-construction time (programmer error).

package matrixreader

import (
	logging "github.com/ipfs/go-log"

	"github.com/katalvlaran/gomatrix/matrix"
)

const (
	// DefaultName labels readers built with New when WithName is absent.
	DefaultName = "<input>"

	// DefaultMaxDimension caps the header value N so a hostile header
	// cannot force an N×N allocation of arbitrary size.
	DefaultMaxDimension = 1 << 12

	// DefaultMaxLineBytes bounds a single data line.
	DefaultMaxLineBytes = 1 << 20

	// DefaultStrictColumns keeps extra tokens on a data line silently ignored.
	DefaultStrictColumns = false
)

const (
	panicNameEmpty      = "matrixreader: WithName: name must be non-empty"
	panicMaxDimNegative = "matrixreader: WithMaxDimension: limit must be >= 0"
	panicLineBytes      = "matrixreader: WithMaxLineBytes: limit must be > 0"
	panicParserNil      = "matrixreader: WithParser: parse func must be non-nil"
	panicLoggerNil      = "matrixreader: WithLogger: logger must be non-nil"
	panicParserType     = "matrixreader: WithParser: parse func element type does not match Reader element type"
)

// Option configures a Reader.
type Option func(*Options)

// Options holds Reader configuration. Use the With* helpers to set it.
type Options struct {
	name          string
	maxDimension  int
	maxLineBytes  int
	strictColumns bool
	parser        any // ParseFunc[T], checked against T at construction
	logger        logging.StandardLogger
}

// WithName sets the label used in error messages and log lines.
// Open defaults it to the file path.
func WithName(name string) Option {
	if name == "" {
		panic(panicNameEmpty)
	}

	return func(o *Options) { o.name = name }
}

// WithMaxDimension sets the largest accepted header value.
// A header above the limit fails with ErrFormat.
func WithMaxDimension(n int) Option {
	if n < 0 {
		panic(panicMaxDimNegative)
	}

	return func(o *Options) { o.maxDimension = n }
}

// WithMaxLineBytes bounds the length of any single line.
// Longer lines fail with ErrSource.
func WithMaxLineBytes(n int) Option {
	if n <= 0 {
		panic(panicLineBytes)
	}

	return func(o *Options) { o.maxLineBytes = n }
}

// WithStrictColumns makes a data line with more than N tokens an ErrFormat.
func WithStrictColumns() Option {
	return func(o *Options) { o.strictColumns = true }
}

// WithParser replaces the default strconv-based token parser.
// The element type of f must match the Reader's element type,
// otherwise New and Open panic.
func WithParser[T matrix.Number](f ParseFunc[T]) Option {
	if f == nil {
		panic(panicParserNil)
	}

	return func(o *Options) { o.parser = f }
}

// WithLogger replaces the package logger for one Reader.
func WithLogger(l logging.StandardLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user setters on top of defaults; nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		name:          DefaultName,
		maxDimension:  DefaultMaxDimension,
		maxLineBytes:  DefaultMaxLineBytes,
		strictColumns: DefaultStrictColumns,
		logger:        log,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// resolveParser returns the configured parser for T or the default one.
func resolveParser[T matrix.Number](o Options) ParseFunc[T] {
	if o.parser == nil {
		return DefaultParser[T]()
	}
	p, ok := o.parser.(ParseFunc[T])
	if !ok {
		panic(panicParserType)
	}

	return p
}
