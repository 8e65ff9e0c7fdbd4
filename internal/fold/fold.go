// Package fold provides the case-folding helpers used everywhere an
// identifier, keyword, or vocabulary word must be compared without
// regard to case. It is a thin wrapper over golang.org/x/text/cases so
// that folding stays Unicode-aware rather than the byte-wise
// strings.ToLower a hand-rolled version would use.
package fold

import "golang.org/x/text/cases"

var folder = cases.Fold()

// Key case-folds s for use as a map key (schema/table/column lookups,
// keyword matching). Folding is idempotent: Key(Key(s)) == Key(s).
func Key(s string) string {
	return folder.String(s)
}

// Word case-folds a vocabulary word on load and on lookup, so that the
// trie and BK-tree are keyed consistently regardless of the input's
// original case.
func Word(s string) string {
	return folder.String(s)
}

// Equal reports whether a and b are equal under case folding.
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}
