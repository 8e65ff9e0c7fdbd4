package sqlparser

import (
	"testing"

	"github.com/relalg/sqlplan/plan"
)

func TestParseSimpleProjection(t *testing.T) {
	node, err := Parse("SELECT name FROM users")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if want := "PROJECTION(name, TABLE_SCAN(users))"; node.ToParenthetical() != want {
		t.Errorf("ToParenthetical() = %q, want %q", node.ToParenthetical(), want)
	}
}

func TestParseFullQueryTree(t *testing.T) {
	sql := "SELECT department, COUNT(*) FROM employees WHERE age > 25 " +
		"GROUP BY department HAVING COUNT(*) > 5 ORDER BY department ASC"
	node, err := Parse(sql)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := "SORT(department ASC, PROJECTION(department, COUNT(*), " +
		"AGGREGATION(GROUP_BY:department, AGG:COUNT(*), HAVING:COUNT(*) > 5, " +
		"SELECTION(age > 25, TABLE_SCAN(employees)))))"
	if got := node.ToParenthetical(); got != want {
		t.Errorf("ToParenthetical() =\n%q\nwant\n%q", got, want)
	}
}

func TestParseSubqueryInFrom(t *testing.T) {
	sql := "SELECT name FROM (SELECT name, age FROM users) AS u"
	node, err := Parse(sql)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	proj, ok := node.(*plan.Projection)
	if !ok {
		t.Fatalf("got %T, want *plan.Projection", node)
	}
	sub, ok := proj.Child.(*plan.Subquery)
	if !ok {
		t.Fatalf("child = %T, want *plan.Subquery", proj.Child)
	}
	if sub.Alias != "u" {
		t.Errorf("sub.Alias = %q, want u", sub.Alias)
	}
}

func TestParseJoinWithCondition(t *testing.T) {
	sql := "SELECT * FROM a LEFT JOIN b ON a.id = b.a_id"
	node, err := Parse(sql)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	proj := node.(*plan.Projection)
	join, ok := proj.Child.(*plan.Join)
	if !ok {
		t.Fatalf("child = %T, want *plan.Join", proj.Child)
	}
	if join.Variant != plan.LEFT {
		t.Errorf("join.Variant = %v, want LEFT", join.Variant)
	}
	if join.Condition != "a.id = b.a_id" {
		t.Errorf("join.Condition = %q, want %q", join.Condition, "a.id = b.a_id")
	}
}

func TestParseCrossJoinHasNoCondition(t *testing.T) {
	node, err := Parse("SELECT * FROM a CROSS JOIN b")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	join := node.(*plan.Projection).Child.(*plan.Join)
	if join.Condition != "" {
		t.Errorf("join.Condition = %q, want empty", join.Condition)
	}
}

func TestParseDistinct(t *testing.T) {
	node, err := Parse("SELECT DISTINCT department FROM employees")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	proj := node.(*plan.Projection)
	if !proj.Distinct {
		t.Error("Distinct = false, want true")
	}
}

func TestParseAliasWithAs(t *testing.T) {
	node, err := Parse("SELECT name AS full_name FROM users AS u")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	proj := node.(*plan.Projection)
	if proj.Items[0].Alias != "full_name" {
		t.Errorf("alias = %q, want full_name", proj.Items[0].Alias)
	}
	ts := proj.Child.(*plan.TableScan)
	if ts.Alias != "u" {
		t.Errorf("table alias = %q, want u", ts.Alias)
	}
}

func TestParseMissingFromIsSyntaxError(t *testing.T) {
	if _, err := Parse("SELECT name"); err == nil {
		t.Error("Parse without FROM did not error")
	}
}

func TestParseEmptyIsInvalidInput(t *testing.T) {
	if _, err := Parse("   "); err == nil {
		t.Error("Parse(whitespace) did not error")
	}
}

func TestParseGroupByWithoutAggregateFunction(t *testing.T) {
	node, err := Parse("SELECT department FROM employees GROUP BY department")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	proj := node.(*plan.Projection)
	agg, ok := proj.Child.(*plan.Aggregation)
	if !ok {
		t.Fatalf("child = %T, want *plan.Aggregation", proj.Child)
	}
	if len(agg.Aggregates) != 0 {
		t.Errorf("Aggregates = %v, want none", agg.Aggregates)
	}
}
