package exprtree

import (
	"github.com/relalg/sqlplan/internal/xerrors"
	"github.com/relalg/sqlplan/schema"
)

// Operator is a binary operation over two expression subtrees.
type Operator struct {
	Op    string
	Left  Node
	Right Node
	Typ   schema.DataType
}

func newOperator(op string, left, right Node) (*Operator, error) {
	typ, err := inferOperatorType(op, left, right)
	if err != nil {
		return nil, err
	}
	return &Operator{Op: op, Left: left, Right: right, Typ: typ}, nil
}

func (o *Operator) DataType() schema.DataType { return o.Typ }

// ValidateTypes recursively validates both operands, then re-checks
// that their combination under Op is still well-typed.
func (o *Operator) ValidateTypes() error {
	if err := o.Left.ValidateTypes(); err != nil {
		return err
	}
	if err := o.Right.ValidateTypes(); err != nil {
		return err
	}
	_, err := inferOperatorType(o.Op, o.Left, o.Right)
	return err
}

func isComparison(op string) bool {
	switch op {
	case "=", "!=", "<>", "<", ">", "<=", ">=", "LIKE":
		return true
	default:
		return false
	}
}

// inferOperatorType infers the result type of a binary operator: comparisons are
// BOOLEAN; '+' over two strings is VARCHAR (concatenation); the
// arithmetic operators over two numeric operands are INTEGER unless
// either side is DECIMAL; any other combination is invalid.
func inferOperatorType(op string, left, right Node) (schema.DataType, error) {
	switch {
	case isComparison(op):
		return schema.BOOLEAN, nil
	case op == "AND" || op == "OR":
		return schema.BOOLEAN, nil
	case op == "+":
		lt, rt := left.DataType(), right.DataType()
		if lt.IsString() && rt.IsString() {
			return schema.VARCHAR, nil
		}
		if lt.IsNumeric() && rt.IsNumeric() {
			return arithmeticResult(lt, rt), nil
		}
		return 0, xerrors.New(xerrors.SemanticError, "operator '+' has mismatched operand types %s and %s", lt, rt)
	case op == "-" || op == "*" || op == "/" || op == "%":
		lt, rt := left.DataType(), right.DataType()
		if lt.IsNumeric() && rt.IsNumeric() {
			return arithmeticResult(lt, rt), nil
		}
		return 0, xerrors.New(xerrors.SemanticError, "operator %q has mismatched operand types %s and %s", op, lt, rt)
	default:
		return 0, xerrors.New(xerrors.SyntaxError, "unknown operator %q", op)
	}
}

func arithmeticResult(lt, rt schema.DataType) schema.DataType {
	if lt == schema.DECIMAL || rt == schema.DECIMAL {
		return schema.DECIMAL
	}
	return schema.INTEGER
}
