package plan

import "github.com/relalg/sqlplan/internal/xerrors"

// Join combines two children's rows per its kind and condition.
type Join struct {
	Variant   JoinType
	Condition string
	Left      Node
	Right     Node
}

// NewJoin validates and constructs a Join. A condition must be present
// for every kind except CROSS, which must have none.
func NewJoin(kind JoinType, condition string, left, right Node) (*Join, error) {
	if left == nil || right == nil {
		return nil, xerrors.New(xerrors.InvalidInput, "join requires two children")
	}
	if kind == CROSS && condition != "" {
		return nil, xerrors.New(xerrors.InvalidInput, "cross join must not have a condition")
	}
	if kind != CROSS && condition == "" {
		return nil, xerrors.New(xerrors.InvalidInput, "%s join requires a condition", kind)
	}
	return &Join{Variant: kind, Condition: condition, Left: left, Right: right}, nil
}

func (j *Join) Kind() Kind       { return JoinKind }
func (j *Join) Children() []Node { return []Node{j.Left, j.Right} }

func (j *Join) ToSQL() string {
	s := j.Left.ToSQL() + " " + j.Variant.String() + " JOIN " + j.Right.ToSQL()
	if j.Condition != "" {
		s += " ON " + j.Condition
	}
	return s
}

func (j *Join) opname() string {
	return j.Variant.String() + "_JOIN"
}

func (j *Join) ToTreeString() string {
	return renderTreeString(j.opname(), j.Condition, j.Left, j.Right)
}

func (j *Join) ToParenthetical() string {
	var params []string
	if j.Condition != "" {
		params = append(params, j.Condition)
	}
	return renderParenthetical(j.opname(), params, j.Left, j.Right)
}
