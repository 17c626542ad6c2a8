// Package boxerr defines the small error taxonomy shared by the set and
// event algebras. Every other package wraps one of these sentinels with
// github.com/pkg/errors so that callers can recover the original cause with
// errors.Cause or match it with errors.Is, while still getting a
// human-readable message that names the offending value.
package boxerr

import (
	"log"

	"github.com/pkg/errors"
)

// debug gates the one log line this package ever emits, matching the
// build-tag-gated logging in legacy/errors.go.
const debug = false

// Sentinel errors. Match them with errors.Is; the wrapping added by New at
// each call site is for the message only and never hides the sentinel.
var (
	// ErrTypeMismatch is returned when an Interval value and a Set value are
	// combined, or when a variable's MakeValue gets a value of the wrong
	// shape. NewSimpleEvent does not check assignments against their
	// variables, so a SimpleEvent that assigns an Interval to a symbolic
	// variable, or a Set to a numeric one, is built without error; event
	// panics with this error when such a SimpleEvent is intersected with one
	// holding the other kind for that variable.
	ErrTypeMismatch = errors.New("type mismatch between variable domain and assigned value")

	// ErrUniverseMismatch is returned when combining two symbolic sets with
	// different universes.
	ErrUniverseMismatch = errors.New("universe mismatch between symbolic sets")

	// ErrDomainEscape is returned by variable.Variable.Assign when the parsed
	// value is not fully contained in the variable's declared domain.
	// NewSimpleEvent and NewSimpleEventFromRaw do not check assignments
	// against the domain.
	ErrDomainEscape = errors.New("assigned value escapes the variable's domain")

	// ErrDegenerateInterval is returned only by constructors that opt into
	// strict checking; the default constructors silently collapse a
	// degenerate interval to the canonical empty set instead.
	ErrDegenerateInterval = errors.New("degenerate interval: lower bound exceeds upper bound")

	// ErrEmptyUniverse is returned when a complement is requested against
	// an unspecified ambient universe.
	ErrEmptyUniverse = errors.New("complement requested against an unspecified ambient universe")
)

// New wraps sentinel with a formatted message, preserving sentinel as the
// cause so errors.Is(err, sentinel) still succeeds.
func New(sentinel error, format string, args ...interface{}) error {
	err := errors.Wrapf(sentinel, format, args...)
	if debug {
		log.Println(err)
	}
	return err
}
