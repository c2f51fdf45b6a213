// SPDX-License-Identifier: MIT

package matrixreader

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/gomatrix/matrix"
)

// ParseFunc converts one whitespace-free token into an element value.
type ParseFunc[T matrix.Number] func(token string) (T, error)

// DefaultParser returns a strconv-based parser for T.
//
// Signed kinds use ParseInt, unsigned kinds ParseUint and float kinds
// ParseFloat, each with T's bit size so out-of-range tokens are rejected
// instead of silently truncated. Integer kinds also accept a leading '+'.
func DefaultParser[T matrix.Number]() ParseFunc[T] {
	typ := reflect.TypeFor[T]()
	bits := typ.Bits()

	switch typ.Kind() {
	case reflect.Float32, reflect.Float64:
		return func(tok string) (T, error) {
			v, err := strconv.ParseFloat(tok, bits)

			return T(v), err
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(tok string) (T, error) {
			v, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, bits)

			return T(v), err
		}
	default:
		return func(tok string) (T, error) {
			v, err := strconv.ParseInt(tok, 10, bits)

			return T(v), err
		}
	}
}

// parseHeader reads the dimension line. Surrounding whitespace (including a
// trailing '\r') is ignored; anything else must be a non-negative decimal.
func parseHeader(line string, limit int) (int, error) {
	s := strings.TrimSpace(line)
	n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, err
	}
	if int(n) > limit {
		return 0, errHeaderLimit{n: int(n), limit: limit}
	}

	return int(n), nil
}

type errHeaderLimit struct{ n, limit int }

func (e errHeaderLimit) Error() string {
	return "dimension " + strconv.Itoa(e.n) + " exceeds limit " + strconv.Itoa(e.limit)
}
