package parenthetical

import (
	"testing"

	"github.com/relalg/sqlplan/plan"
)

func TestRoundTripSimpleProjection(t *testing.T) {
	ts, _ := plan.NewTableScan("users", "")
	proj, _ := plan.NewProjection([]plan.SelectItem{{Expression: "name"}}, false, ts)

	text := proj.ToParenthetical()
	if want := "PROJECTION(name, TABLE_SCAN(users))"; text != want {
		t.Fatalf("ToParenthetical() = %q, want %q", text, want)
	}

	parsed, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if parsed.ToParenthetical() != text {
		t.Errorf("round trip mismatch: got %q, want %q", parsed.ToParenthetical(), text)
	}
}

func TestRoundTripFullQueryTree(t *testing.T) {
	ts, _ := plan.NewTableScan("employees", "")
	sel, _ := plan.NewSelection("age > 25", ts)
	agg, _ := plan.NewAggregation([]string{"department"}, []string{"COUNT(*)"}, "COUNT(*) > 5", sel)
	proj, _ := plan.NewProjection([]plan.SelectItem{{Expression: "department"}, {Expression: "COUNT(*)"}}, false, agg)
	sort, _ := plan.NewSort([]plan.OrderItem{{Column: "department", Direction: plan.Asc}}, proj)

	text := sort.ToParenthetical()
	parsed, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if parsed.ToParenthetical() != text {
		t.Errorf("round trip mismatch:\ngot  %q\nwant %q", parsed.ToParenthetical(), text)
	}
}

func TestRoundTripAggregationMultipleGroupByAndAggregates(t *testing.T) {
	ts, _ := plan.NewTableScan("employees", "")
	agg, _ := plan.NewAggregation(
		[]string{"department", "title"},
		[]string{"COUNT(*)", "SUM(salary)"},
		"COUNT(*) > 1",
		ts,
	)
	proj, _ := plan.NewProjection([]plan.SelectItem{
		{Expression: "department"}, {Expression: "title"}, {Expression: "COUNT(*)"},
	}, false, agg)

	text := proj.ToParenthetical()
	parsed, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if parsed.ToParenthetical() != text {
		t.Errorf("round trip mismatch:\ngot  %q\nwant %q", parsed.ToParenthetical(), text)
	}

	parsedAgg, ok := parsed.Children()[0].(*plan.Aggregation)
	if !ok {
		t.Fatalf("child is %T, want *plan.Aggregation", parsed.Children()[0])
	}
	if len(parsedAgg.GroupBy) != 2 || len(parsedAgg.Aggregates) != 2 {
		t.Errorf("GroupBy/Aggregates = %v/%v, want 2 entries each", parsedAgg.GroupBy, parsedAgg.Aggregates)
	}
}

func TestRoundTripSubqueryInFrom(t *testing.T) {
	inner, _ := plan.NewTableScan("users", "")
	innerProj, _ := plan.NewProjection([]plan.SelectItem{{Expression: "name"}, {Expression: "age"}}, false, inner)
	sub, _ := plan.NewSubquery(plan.KindFrom, "u", innerProj)
	outerProj, _ := plan.NewProjection([]plan.SelectItem{{Expression: "name"}}, false, sub)

	text := outerProj.ToParenthetical()
	parsed, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if parsed.ToParenthetical() != text {
		t.Errorf("round trip mismatch:\ngot  %q\nwant %q", parsed.ToParenthetical(), text)
	}
}

func TestRoundTripJoin(t *testing.T) {
	left, _ := plan.NewTableScan("a", "")
	right, _ := plan.NewTableScan("b", "")
	join, _ := plan.NewJoin(plan.LEFT, "a.id = b.a_id", left, right)
	proj, _ := plan.NewProjection([]plan.SelectItem{{Expression: "*"}}, false, join)

	text := proj.ToParenthetical()
	parsed, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if parsed.ToParenthetical() != text {
		t.Errorf("round trip mismatch:\ngot  %q\nwant %q", parsed.ToParenthetical(), text)
	}
}

func TestRoundTripCrossJoinOmitsCondition(t *testing.T) {
	left, _ := plan.NewTableScan("a", "")
	right, _ := plan.NewTableScan("b", "")
	join, _ := plan.NewJoin(plan.CROSS, "", left, right)

	text := join.ToParenthetical()
	if want := "CROSS_JOIN(TABLE_SCAN(a), TABLE_SCAN(b))"; text != want {
		t.Fatalf("ToParenthetical() = %q, want %q", text, want)
	}
	parsed, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if parsed.ToParenthetical() != text {
		t.Errorf("round trip mismatch: got %q, want %q", parsed.ToParenthetical(), text)
	}
}

func TestParseEmptyIsInvalidInput(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Error("Parse(\"\") did not error")
	}
}

func TestParseUnknownOpname(t *testing.T) {
	if _, err := Parse("NOT_AN_OP(x)"); err == nil {
		t.Error("Parse with unknown opname did not error")
	}
}

func TestParseMissingClosingParen(t *testing.T) {
	if _, err := Parse("TABLE_SCAN(users"); err == nil {
		t.Error("Parse with unterminated parens did not error")
	}
}
