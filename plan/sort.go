package plan

import (
	"strings"

	"github.com/relalg/sqlplan/internal/xerrors"
)

// Sort orders its child's rows by a sequence of (column, direction)
// pairs.
type Sort struct {
	OrderItems []OrderItem
	Child      Node
}

// NewSort validates and constructs a Sort. OrderItems must be
// non-empty.
func NewSort(items []OrderItem, child Node) (*Sort, error) {
	if len(items) == 0 {
		return nil, xerrors.New(xerrors.InvalidInput, "sort requires at least one order item")
	}
	if child == nil {
		return nil, xerrors.New(xerrors.InvalidInput, "sort requires a child")
	}
	return &Sort{OrderItems: items, Child: child}, nil
}

func (s *Sort) Kind() Kind       { return SortKind }
func (s *Sort) Children() []Node { return []Node{s.Child} }

func (s *Sort) itemsText(sep string) string {
	parts := make([]string, len(s.OrderItems))
	for i, it := range s.OrderItems {
		parts[i] = it.String()
	}
	return strings.Join(parts, sep)
}

func (s *Sort) ToSQL() string {
	return s.Child.ToSQL() + " ORDER BY " + s.itemsText(", ")
}

func (s *Sort) ToTreeString() string {
	return renderTreeString("SORT", s.itemsText(", "), s.Child)
}

func (s *Sort) ToParenthetical() string {
	return renderParenthetical("SORT", []string{s.itemsText(" ")}, s.Child)
}
