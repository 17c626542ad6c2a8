// Copyright (c) 2026 boxset authors
//
// MIT License

package event

// emptySetSymbol mirrors the symbol the original implementation prints for
// an empty composite.
const emptySetSymbol = "∅"
