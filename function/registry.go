// Package function classifies built-in SQL function names into a fixed
// set of categories, used by the expression parser and schema validator.
package function

import "strings"

// Category is the classification of a built-in function name.
type Category int

const (
	UNKNOWN Category = iota
	AGGREGATE
	STRING
	NUMERIC
	DATE
	CONDITIONAL
)

func (c Category) String() string {
	switch c {
	case AGGREGATE:
		return "AGGREGATE"
	case STRING:
		return "STRING"
	case NUMERIC:
		return "NUMERIC"
	case DATE:
		return "DATE"
	case CONDITIONAL:
		return "CONDITIONAL"
	default:
		return "UNKNOWN"
	}
}

var aggregate = set("COUNT", "SUM", "AVG", "MIN", "MAX")

var str = set(
	"UPPER", "LOWER", "LENGTH", "LEN", "SUBSTRING", "CONCAT", "TRIM", "LTRIM", "RTRIM",
	"REPLACE", "LEFT", "RIGHT", "LPAD", "RPAD", "REVERSE", "INSTR", "CHARINDEX",
)

var numeric = set(
	"ROUND", "FLOOR", "CEIL", "CEILING", "ABS", "MOD", "POWER", "SQRT", "TRUNC", "SIGN",
)

var date = set(
	"NOW", "CURRENT_DATE", "CURRENT_TIMESTAMP", "DATE_ADD", "DATE_SUB", "DATEDIFF",
	"EXTRACT", "YEAR", "MONTH", "DAY", "DATE_FORMAT", "TO_DATE",
)

var conditional = set("COALESCE", "NULLIF", "IF", "IFNULL", "CASE", "GREATEST", "LEAST")

func set(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// CategoryOf folds name to upper-case and returns its category, or
// UNKNOWN if name is not a registered built-in.
func CategoryOf(name string) Category {
	up := strings.ToUpper(name)
	switch {
	case has(aggregate, up):
		return AGGREGATE
	case has(str, up):
		return STRING
	case has(numeric, up):
		return NUMERIC
	case has(date, up):
		return DATE
	case has(conditional, up):
		return CONDITIONAL
	default:
		return UNKNOWN
	}
}

func has(m map[string]struct{}, name string) bool {
	_, ok := m[name]
	return ok
}

// AllNames returns the union of every registered function name, folded
// to upper-case, in no particular order. The expression parser
// recognizes call targets through IsRegistered, not through this list.
func AllNames() []string {
	all := make([]string, 0, len(aggregate)+len(str)+len(numeric)+len(date)+len(conditional))
	for _, m := range []map[string]struct{}{aggregate, str, numeric, date, conditional} {
		for n := range m {
			all = append(all, n)
		}
	}
	return all
}

// IsRegistered reports whether name (case-insensitive) is a known
// built-in function.
func IsRegistered(name string) bool {
	return CategoryOf(name) != UNKNOWN
}
