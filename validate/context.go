// Package validate walks a plan tree post-order against a schema,
// carrying an available-columns context upward and reporting the
// errors and warnings each operator's rules call for.
package validate

import (
	"strings"

	"github.com/relalg/sqlplan/internal/fold"
	"github.com/relalg/sqlplan/schema"
)

// Entry is one column available at some point in the plan: its owning
// table (qualifier) when known, its name, and its type.
type Entry struct {
	Table  string
	Column string
	Type   schema.DataType
}

// Context is the ordered set of columns visible at a point in the
// plan. Lookups accept a qualified "t.c" or bare "c" form and are
// case-insensitive.
type Context []Entry

// Resolve looks up name (qualified or bare) in c. A qualified lookup
// matches only entries whose Table equals the qualifier; a bare
// lookup matches any entry whose Column equals name, ambiguity is not
// an error here (Join already warns about it separately).
func (c Context) Resolve(name string) (schema.DataType, bool) {
	table, column := splitQualified(name)
	for _, e := range c {
		if !fold.Equal(e.Column, column) {
			continue
		}
		if table == "" || fold.Equal(e.Table, table) {
			return e.Type, true
		}
	}
	return schema.UNKNOWN, false
}

// HasUnqualifiedOverlap returns every column name (compared
// case-insensitively) that appears in both a and b, once each, in b's
// order; used for the Join ambiguous-column warning.
func HasUnqualifiedOverlap(a, b Context) []string {
	seen := make(map[string]bool, len(a))
	for _, e := range a {
		seen[fold.Key(e.Column)] = true
	}
	var overlap []string
	reported := make(map[string]bool)
	for _, e := range b {
		k := fold.Key(e.Column)
		if seen[k] && !reported[k] {
			reported[k] = true
			overlap = append(overlap, e.Column)
		}
	}
	return overlap
}

// newEntry splits a simple "t.c" or "c" identifier into an Entry,
// preserving whatever qualification it already carries. Not suitable
// for pseudo-columns whose text is a function signature rather than a
// plain identifier (e.g. "COUNT(*)"); callers build those directly.
func newEntry(name string, dt schema.DataType) Entry {
	table, column := splitQualified(name)
	return Entry{Table: table, Column: column, Type: dt}
}

func splitQualified(name string) (table, column string) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return "", name
	}
	return name[:idx], name[idx+1:]
}
