// SPDX-License-Identifier: MIT

package matrixreader

// State is the lifecycle position of a Reader.
//
//	Unopened → Ready → (ReadMatrix)* → Exhausted | Failed
//	Ready → Closed (explicit Close)
type State int

const (
	// StateUnopened is the zero value: no source is bound yet.
	StateUnopened State = iota
	// StateReady means the header was parsed and matrices can be read.
	StateReady
	// StateExhausted means input ended cleanly at a matrix boundary.
	StateExhausted
	// StateFailed means a read failed; the failure is sticky.
	StateFailed
	// StateClosed means Close was called while the reader was still Ready.
	StateClosed
)

var stateNames = [...]string{
	StateUnopened:  "unopened",
	StateReady:     "ready",
	StateExhausted: "exhausted",
	StateFailed:    "failed",
	StateClosed:    "closed",
}

// String returns the lower-case state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}

	return stateNames[s]
}

// terminal reports whether no further matrix can be produced.
func (s State) terminal() bool {
	return s == StateExhausted || s == StateFailed || s == StateClosed
}
