package plan

import (
	"strings"

	"github.com/relalg/sqlplan/internal/xerrors"
)

// Aggregation groups its child's rows and computes aggregate
// expressions, with an optional HAVING filter over the result.
type Aggregation struct {
	GroupBy    []string
	Aggregates []string
	Having     string
	Child      Node
}

// NewAggregation validates and constructs an Aggregation. At least one
// of GroupBy or Aggregates must be non-empty.
func NewAggregation(groupBy, aggregates []string, having string, child Node) (*Aggregation, error) {
	if child == nil {
		return nil, xerrors.New(xerrors.InvalidInput, "aggregation requires a child")
	}
	if len(groupBy) == 0 && len(aggregates) == 0 {
		return nil, xerrors.New(xerrors.InvalidInput, "aggregation requires group_by or aggregates")
	}
	return &Aggregation{GroupBy: groupBy, Aggregates: aggregates, Having: having, Child: child}, nil
}

func (a *Aggregation) Kind() Kind       { return AggregationKind }
func (a *Aggregation) Children() []Node { return []Node{a.Child} }

func (a *Aggregation) ToSQL() string {
	var b strings.Builder
	b.WriteString(fromClause(a.Child))
	if len(a.GroupBy) > 0 {
		b.WriteString(" GROUP BY ")
		b.WriteString(strings.Join(a.GroupBy, ", "))
	}
	if a.Having != "" {
		b.WriteString(" HAVING ")
		b.WriteString(a.Having)
	}
	return b.String()
}

func (a *Aggregation) params() []string {
	var params []string
	if len(a.GroupBy) > 0 {
		params = append(params, "GROUP_BY:"+strings.Join(a.GroupBy, ","))
	}
	if len(a.Aggregates) > 0 {
		params = append(params, "AGG:"+strings.Join(a.Aggregates, ","))
	}
	if a.Having != "" {
		params = append(params, "HAVING:"+a.Having)
	}
	return params
}

func (a *Aggregation) ToTreeString() string {
	return renderTreeString("AGGREGATION", strings.Join(a.params(), ", "), a.Child)
}

func (a *Aggregation) ToParenthetical() string {
	return renderParenthetical("AGGREGATION", a.params(), a.Child)
}
