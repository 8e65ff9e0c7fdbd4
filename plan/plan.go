// Package plan models the relational-algebra plan tree: a closed
// variant set (TableScan, Projection, Selection, Join, Aggregation,
// Sort, Subquery) sharing one Node interface. Each variant renders
// itself to SQL, an indented tree-string, and the bit-exact
// parenthetical form consumed by package parenthetical.
package plan

import (
	"strings"

	"github.com/relalg/sqlplan/function"
)

// Kind tags which variant a Node is.
type Kind int

const (
	TableScanKind Kind = iota
	ProjectionKind
	SelectionKind
	JoinKind
	AggregationKind
	SortKind
	SubqueryKind
)

func (k Kind) String() string {
	switch k {
	case TableScanKind:
		return "TableScan"
	case ProjectionKind:
		return "Projection"
	case SelectionKind:
		return "Selection"
	case JoinKind:
		return "Join"
	case AggregationKind:
		return "Aggregation"
	case SortKind:
		return "Sort"
	case SubqueryKind:
		return "Subquery"
	default:
		return "Unknown"
	}
}

// Node is the shared interface every plan variant implements.
type Node interface {
	Kind() Kind
	Children() []Node
	ToSQL() string
	ToTreeString() string
	ToParenthetical() string
}

// JoinType enumerates the join kinds a Join node may carry.
type JoinType int

const (
	INNER JoinType = iota
	LEFT
	RIGHT
	FULL
	CROSS
)

var joinTypeNames = map[JoinType]string{
	INNER: "INNER", LEFT: "LEFT", RIGHT: "RIGHT", FULL: "FULL", CROSS: "CROSS",
}

func (j JoinType) String() string { return joinTypeNames[j] }

// ParseJoinType parses a join-kind keyword, case-insensitively.
func ParseJoinType(s string) (JoinType, bool) {
	switch strings.ToUpper(s) {
	case "INNER":
		return INNER, true
	case "LEFT":
		return LEFT, true
	case "RIGHT":
		return RIGHT, true
	case "FULL":
		return FULL, true
	case "CROSS":
		return CROSS, true
	default:
		return 0, false
	}
}

// SubqueryVariant enumerates the contexts a Subquery node may appear in.
// Only KindFrom is produced by the SQL parser in this module; the
// others are accepted by the parenthetical parser for completeness.
type SubqueryVariant int

const (
	KindFrom SubqueryVariant = iota
	KindExists
	KindIn
	KindNotIn
	KindScalar
	KindSelectScalar
)

var subqueryKindNames = map[SubqueryVariant]string{
	KindFrom: "FROM", KindExists: "EXISTS", KindIn: "IN",
	KindNotIn: "NOT_IN", KindScalar: "SCALAR", KindSelectScalar: "SELECT_SCALAR",
}

func (k SubqueryVariant) String() string { return subqueryKindNames[k] }

// ParseSubqueryKind parses a TYPE: value from the parenthetical form.
func ParseSubqueryKind(s string) (SubqueryVariant, bool) {
	for k, name := range subqueryKindNames {
		if name == strings.ToUpper(s) {
			return k, true
		}
	}
	return 0, false
}

// Direction is an ORDER BY item's sort direction.
type Direction int

const (
	Unspecified Direction = iota
	Asc
	Desc
)

func (d Direction) String() string {
	switch d {
	case Asc:
		return "ASC"
	case Desc:
		return "DESC"
	default:
		return ""
	}
}

// OrderItem is one ORDER BY entry.
type OrderItem struct {
	Column    string
	Direction Direction
}

func (o OrderItem) String() string {
	if o.Direction == Unspecified {
		return o.Column
	}
	return o.Column + " " + o.Direction.String()
}

// FunctionCall is a function invocation extracted from a SelectItem or
// condition string, e.g. COUNT(*), SUM(amount).
type FunctionCall struct {
	Name       string
	Args       []string
	Category   function.Category
	SourceText string
}

// SelectItem is one comma-separated entry in a SELECT list.
type SelectItem struct {
	Expression      string
	Alias           string
	ParsedFunctions []FunctionCall
}

// EffectiveName is the alias if present, else the raw expression text.
func (s SelectItem) EffectiveName() string {
	if s.Alias != "" {
		return s.Alias
	}
	return s.Expression
}

func (s SelectItem) String() string {
	if s.Alias != "" {
		return s.Expression + " AS " + s.Alias
	}
	return s.Expression
}

func hasWhitespace(s string) bool {
	return strings.ContainsAny(s, " \t\n\r")
}

func indent(s string, levels int) string {
	pad := strings.Repeat("  ", levels)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// renderTreeString builds the "OPNAME(params)\n  child..." form common
// to every variant.
func renderTreeString(opname, params string, children ...Node) string {
	var b strings.Builder
	b.WriteString(opname)
	b.WriteByte('(')
	b.WriteString(params)
	b.WriteByte(')')
	for _, c := range children {
		if c == nil {
			continue
		}
		b.WriteByte('\n')
		b.WriteString(indent(c.ToTreeString(), 1))
	}
	return b.String()
}

// renderParenthetical builds the "OPNAME(p1, p2, ..., child1, ...)"
// form common to every variant.
func renderParenthetical(opname string, params []string, children ...Node) string {
	parts := make([]string, 0, len(params)+len(children))
	parts = append(parts, params...)
	for _, c := range children {
		if c == nil {
			continue
		}
		parts = append(parts, c.ToParenthetical())
	}
	return opname + "(" + strings.Join(parts, ", ") + ")"
}

// fromClause renders child as the text that follows the FROM keyword:
// Selection and Aggregation already embed their own "FROM ..." prefix,
// so it is reused verbatim; every other variant's ToSQL is the bare
// table/join/subquery reference and needs "FROM " prepended.
func fromClause(child Node) string {
	switch child.Kind() {
	case SelectionKind, AggregationKind:
		return child.ToSQL()
	default:
		return "FROM " + child.ToSQL()
	}
}
