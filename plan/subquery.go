package plan

import (
	"strings"

	"github.com/relalg/sqlplan/internal/xerrors"
)

// Subquery wraps an independently-parsed inner plan, used either as a
// derived table in a FROM clause or (per the kind) as a scalar/EXISTS/IN
// expression elsewhere. Only KindFrom is produced by the SQL parser.
type Subquery struct {
	Variant SubqueryVariant
	Alias   string
	Child   Node
}

// NewSubquery validates and constructs a Subquery.
func NewSubquery(kind SubqueryVariant, alias string, child Node) (*Subquery, error) {
	if child == nil {
		return nil, xerrors.New(xerrors.InvalidInput, "subquery requires a child")
	}
	return &Subquery{Variant: kind, Alias: alias, Child: child}, nil
}

func (s *Subquery) Kind() Kind       { return SubqueryKind }
func (s *Subquery) Children() []Node { return []Node{s.Child} }

func (s *Subquery) ToSQL() string {
	sql := "(" + s.Child.ToSQL() + ")"
	if s.Alias != "" {
		sql += " AS " + s.Alias
	}
	return sql
}

func (s *Subquery) params() []string {
	params := []string{"TYPE:" + s.Variant.String()}
	if s.Alias != "" {
		params = append(params, "ALIAS:"+s.Alias)
	}
	return params
}

func (s *Subquery) ToTreeString() string {
	return renderTreeString("SUBQUERY", strings.Join(s.params(), ", "), s.Child)
}

func (s *Subquery) ToParenthetical() string {
	return renderParenthetical("SUBQUERY", s.params(), s.Child)
}
