package plan

import (
	"strings"

	"github.com/relalg/sqlplan/internal/xerrors"
)

// Projection selects and optionally renames a list of columns or
// expressions from its child.
type Projection struct {
	Items    []SelectItem
	Distinct bool
	Child    Node
}

// NewProjection validates and constructs a Projection. Items must be
// non-empty; "*" may appear only as the sole item.
func NewProjection(items []SelectItem, distinct bool, child Node) (*Projection, error) {
	if len(items) == 0 {
		return nil, xerrors.New(xerrors.InvalidInput, "projection requires at least one item")
	}
	if child == nil {
		return nil, xerrors.New(xerrors.InvalidInput, "projection requires a child")
	}
	for _, it := range items {
		if it.Expression == "*" && len(items) > 1 {
			return nil, xerrors.New(xerrors.InvalidInput, "'*' may only appear as the sole projection item")
		}
	}
	return &Projection{Items: items, Distinct: distinct, Child: child}, nil
}

func (p *Projection) Kind() Kind       { return ProjectionKind }
func (p *Projection) Children() []Node { return []Node{p.Child} }

func (p *Projection) columnsText() string {
	parts := make([]string, len(p.Items))
	for i, it := range p.Items {
		parts[i] = it.String()
	}
	return strings.Join(parts, ", ")
}

func (p *Projection) ToSQL() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	if p.Distinct {
		b.WriteString("DISTINCT ")
	}
	b.WriteString(p.columnsText())
	b.WriteByte(' ')
	b.WriteString(fromClause(p.Child))
	return b.String()
}

func (p *Projection) ToTreeString() string {
	params := p.columnsText()
	if p.Distinct {
		params = "DISTINCT, " + params
	}
	return renderTreeString("PROJECTION", params, p.Child)
}

func (p *Projection) ToParenthetical() string {
	var params []string
	if p.Distinct {
		params = append(params, "DISTINCT")
	}
	for _, it := range p.Items {
		params = append(params, it.String())
	}
	return renderParenthetical("PROJECTION", params, p.Child)
}
