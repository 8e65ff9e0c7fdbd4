package plan

import "testing"

func mustTableScan(t *testing.T, name, alias string) *TableScan {
	t.Helper()
	ts, err := NewTableScan(name, alias)
	if err != nil {
		t.Fatalf("NewTableScan(%q, %q): %v", name, alias, err)
	}
	return ts
}

func TestSimpleProjectionRendering(t *testing.T) {
	ts := mustTableScan(t, "users", "")
	proj, err := NewProjection([]SelectItem{{Expression: "name"}}, false, ts)
	if err != nil {
		t.Fatalf("NewProjection: %v", err)
	}

	if got, want := proj.ToParenthetical(), "PROJECTION(name, TABLE_SCAN(users))"; got != want {
		t.Errorf("ToParenthetical() = %q, want %q", got, want)
	}
	if got, want := proj.ToSQL(), "SELECT name FROM users"; got != want {
		t.Errorf("ToSQL() = %q, want %q", got, want)
	}
}

func TestTableScanRejectsWhitespace(t *testing.T) {
	if _, err := NewTableScan("my table", ""); err == nil {
		t.Error("NewTableScan with whitespace table name did not error")
	}
}

func TestProjectionRejectsMultipleStarItems(t *testing.T) {
	ts := mustTableScan(t, "users", "")
	_, err := NewProjection([]SelectItem{{Expression: "*"}, {Expression: "name"}}, false, ts)
	if err == nil {
		t.Error("NewProjection with '*' plus another item did not error")
	}
}

func TestJoinRequiresConditionExceptCross(t *testing.T) {
	left := mustTableScan(t, "a", "")
	right := mustTableScan(t, "b", "")

	if _, err := NewJoin(INNER, "", left, right); err == nil {
		t.Error("INNER join without condition did not error")
	}
	if _, err := NewJoin(CROSS, "a.id = b.id", left, right); err == nil {
		t.Error("CROSS join with condition did not error")
	}
	j, err := NewJoin(CROSS, "", left, right)
	if err != nil {
		t.Fatalf("CROSS join without condition: %v", err)
	}
	if got, want := j.ToSQL(), "a CROSS JOIN b"; got != want {
		t.Errorf("ToSQL() = %q, want %q", got, want)
	}
}

func TestFullQueryTreeParenthetical(t *testing.T) {
	ts := mustTableScan(t, "employees", "")
	sel, err := NewSelection("age > 25", ts)
	if err != nil {
		t.Fatalf("NewSelection: %v", err)
	}
	agg, err := NewAggregation([]string{"department"}, []string{"COUNT(*)"}, "COUNT(*) > 5", sel)
	if err != nil {
		t.Fatalf("NewAggregation: %v", err)
	}
	proj, err := NewProjection([]SelectItem{{Expression: "department"}, {Expression: "COUNT(*)"}}, false, agg)
	if err != nil {
		t.Fatalf("NewProjection: %v", err)
	}
	sort, err := NewSort([]OrderItem{{Column: "department", Direction: Asc}}, proj)
	if err != nil {
		t.Fatalf("NewSort: %v", err)
	}

	want := "SORT(department ASC, PROJECTION(department, COUNT(*), AGGREGATION(GROUP_BY:department, AGG:COUNT(*), HAVING:COUNT(*) > 5, SELECTION(age > 25, TABLE_SCAN(employees)))))"
	if got := sort.ToParenthetical(); got != want {
		t.Errorf("ToParenthetical() =\n%q, want\n%q", got, want)
	}
}

func TestSubqueryInFromParenthetical(t *testing.T) {
	inner := mustTableScan(t, "users", "")
	innerProj, err := NewProjection([]SelectItem{{Expression: "name"}, {Expression: "age"}}, false, inner)
	if err != nil {
		t.Fatalf("NewProjection (inner): %v", err)
	}
	sub, err := NewSubquery(KindFrom, "u", innerProj)
	if err != nil {
		t.Fatalf("NewSubquery: %v", err)
	}
	outerProj, err := NewProjection([]SelectItem{{Expression: "name"}}, false, sub)
	if err != nil {
		t.Fatalf("NewProjection (outer): %v", err)
	}

	want := "PROJECTION(name, SUBQUERY(TYPE:FROM, ALIAS:u, PROJECTION(name, age, TABLE_SCAN(users))))"
	if got := outerProj.ToParenthetical(); got != want {
		t.Errorf("ToParenthetical() =\n%q, want\n%q", got, want)
	}
}

func TestToTreeStringIndentsChildren(t *testing.T) {
	ts := mustTableScan(t, "users", "")
	proj, err := NewProjection([]SelectItem{{Expression: "name"}}, false, ts)
	if err != nil {
		t.Fatalf("NewProjection: %v", err)
	}
	want := "PROJECTION(name)\n  TABLE_SCAN(users)"
	if got := proj.ToTreeString(); got != want {
		t.Errorf("ToTreeString() = %q, want %q", got, want)
	}
}
