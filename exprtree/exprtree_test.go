package exprtree

import (
	"testing"

	"github.com/relalg/sqlplan/schema"
)

type staticLookup map[string]schema.DataType

func (s staticLookup) ColumnType(name string) (schema.DataType, bool) {
	dt, ok := s[name]
	return dt, ok
}

func TestParseExpressionColumnDefaultsToVarchar(t *testing.T) {
	node, err := ParseExpression("name", nil, nil)
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	col, ok := node.(*Column)
	if !ok {
		t.Fatalf("got %T, want *Column", node)
	}
	if col.DataType() != schema.VARCHAR {
		t.Errorf("DataType() = %v, want VARCHAR", col.DataType())
	}
}

func TestParseExpressionColumnFromLookup(t *testing.T) {
	lookup := staticLookup{"age": schema.INTEGER}
	node, err := ParseExpression("age", nil, lookup)
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	if node.DataType() != schema.INTEGER {
		t.Errorf("DataType() = %v, want INTEGER", node.DataType())
	}
}

func TestParseExpressionComparisonIsBoolean(t *testing.T) {
	node, err := ParseExpression("age > 25", nil, staticLookup{"age": schema.INTEGER})
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	if node.DataType() != schema.BOOLEAN {
		t.Errorf("DataType() = %v, want BOOLEAN", node.DataType())
	}
	op, ok := node.(*Operator)
	if !ok || op.Op != ">" {
		t.Fatalf("got %#v, want '>' Operator", node)
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	// "a = 1 AND b = 2 OR c = 3" should parse as OR at the root.
	node, err := ParseExpression("a = 1 AND b = 2 OR c = 3", nil, nil)
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	op, ok := node.(*Operator)
	if !ok || op.Op != "OR" {
		t.Fatalf("root = %#v, want OR", node)
	}
	left, ok := op.Left.(*Operator)
	if !ok || left.Op != "AND" {
		t.Fatalf("left = %#v, want AND", op.Left)
	}
}

func TestParseExpressionLeftAssociativeArithmetic(t *testing.T) {
	lookup := staticLookup{"a": schema.INTEGER, "b": schema.INTEGER, "c": schema.INTEGER}
	node, err := ParseExpression("a - b - c", nil, lookup)
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	root, ok := node.(*Operator)
	if !ok || root.Op != "-" {
		t.Fatalf("root = %#v, want '-'", node)
	}
	leftOp, ok := root.Left.(*Operator)
	if !ok || leftOp.Op != "-" {
		t.Fatalf("left = %#v, want '-' (a - b grouped first)", root.Left)
	}
	if _, ok := leftOp.Left.(*Column); !ok {
		t.Fatalf("leftmost operand = %#v, want Column a", leftOp.Left)
	}
}

func TestParseExpressionFunctionCall(t *testing.T) {
	node, err := ParseExpression("COUNT(*)", nil, nil)
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	fn, ok := node.(*Function)
	if !ok {
		t.Fatalf("got %T, want *Function", node)
	}
	if fn.Name != "COUNT" || fn.DataType() != schema.INTEGER {
		t.Errorf("COUNT(*) = %+v, want name COUNT type INTEGER", fn)
	}
}

func TestParseExpressionStringConcatenation(t *testing.T) {
	node, err := ParseExpression("'a' + 'b'", nil, nil)
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	if node.DataType() != schema.VARCHAR {
		t.Errorf("DataType() = %v, want VARCHAR", node.DataType())
	}
}

func TestParseExpressionMixedArithmeticIsInvalid(t *testing.T) {
	_, err := ParseExpression("'a' + 1", nil, nil)
	if err == nil {
		t.Fatal("expected error for mixed string/numeric '+'")
	}
}

func TestParseExpressionDecimalPropagation(t *testing.T) {
	node, err := ParseExpression("price * 2", nil, staticLookup{"price": schema.DECIMAL})
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	if node.DataType() != schema.DECIMAL {
		t.Errorf("DataType() = %v, want DECIMAL", node.DataType())
	}
}

func TestNewNumericLiteralRejectsNonNumeric(t *testing.T) {
	if _, err := NewNumericLiteral("12a"); err == nil {
		t.Error("NewNumericLiteral(12a) did not error")
	}
}

func TestParseExpressionEmptyIsInvalidInput(t *testing.T) {
	if _, err := ParseExpression("   ", nil, nil); err == nil {
		t.Error("ParseExpression(whitespace) did not error")
	}
}

func TestParseExpressionParenthesized(t *testing.T) {
	node, err := ParseExpression("(a = 1)", nil, nil)
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	if _, ok := node.(*Operator); !ok {
		t.Fatalf("got %T, want *Operator", node)
	}
}
