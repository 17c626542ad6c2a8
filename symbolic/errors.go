// Copyright (c) 2026 boxset authors
//
// MIT License

package symbolic

import "github.com/axisbox/boxset/boxerr"

// emptySetSymbol mirrors the symbol the original implementation prints for
// an empty composite.
const emptySetSymbol = "∅"

// errUnknownSymbol reports a symbol that is not a member of the universe it
// was looked up against. It is a plain construction error, not one of the
// five sigma-algebra error kinds in boxerr, since it has no bearing on the
// algebra itself (it never arises from a well-formed Set).
type errUnknownSymbol struct {
	symbol   string
	universe *Universe
}

func (e *errUnknownSymbol) Error() string {
	return "symbolic: symbol " + e.symbol + " is not a member of universe " + e.universe.String()
}

func newUniverseMismatchError(a, b *Universe) error {
	return boxerr.New(boxerr.ErrUniverseMismatch, "universes %s and %s differ", a, b)
}
