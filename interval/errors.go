// Copyright (c) 2026 boxset authors
//
// MIT License

package interval

import "github.com/axisbox/boxset/boxerr"

// emptySetSymbol mirrors the symbol the original implementation prints for
// an empty composite.
const emptySetSymbol = "∅"

func newDegenerateError(lower, upper float64, left, right Bound) error {
	return boxerr.New(boxerr.ErrDegenerateInterval, "lower=%v upper=%v left=%s right=%s", lower, upper, left, right)
}
