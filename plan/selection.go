package plan

import "github.com/relalg/sqlplan/internal/xerrors"

// Selection filters its child's rows by a boolean condition (SQL's
// WHERE clause).
type Selection struct {
	Condition string
	Child     Node
}

// NewSelection validates and constructs a Selection.
func NewSelection(condition string, child Node) (*Selection, error) {
	if condition == "" {
		return nil, xerrors.New(xerrors.InvalidInput, "selection requires a non-empty condition")
	}
	if child == nil {
		return nil, xerrors.New(xerrors.InvalidInput, "selection requires a child")
	}
	return &Selection{Condition: condition, Child: child}, nil
}

func (s *Selection) Kind() Kind       { return SelectionKind }
func (s *Selection) Children() []Node { return []Node{s.Child} }

func (s *Selection) ToSQL() string {
	return fromClause(s.Child) + " WHERE " + s.Condition
}

func (s *Selection) ToTreeString() string {
	return renderTreeString("SELECTION", s.Condition, s.Child)
}

func (s *Selection) ToParenthetical() string {
	return renderParenthetical("SELECTION", []string{s.Condition}, s.Child)
}
