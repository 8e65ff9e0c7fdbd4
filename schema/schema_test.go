package schema

import "testing"

func TestTableColumnLookupCaseInsensitive(t *testing.T) {
	tbl := NewTable("Users")
	tbl.AddColumn(Column{Name: "ID", DataType: INTEGER, PrimaryKey: true})
	tbl.AddColumn(Column{Name: "Name", DataType: VARCHAR})

	if _, ok := tbl.Column("id"); !ok {
		t.Error("Column(id) not found")
	}
	if _, ok := tbl.Column("NAME"); !ok {
		t.Error("Column(NAME) not found")
	}
	if _, ok := tbl.Column("nonexistent"); ok {
		t.Error("Column(nonexistent) unexpectedly found")
	}
}

func TestSchemaTableLookupCaseInsensitive(t *testing.T) {
	s := New()
	s.AddTable(NewTable("Employees"))

	if !s.HasTable("employees") {
		t.Error("HasTable(employees) = false, want true")
	}
	if !s.HasTable("EMPLOYEES") {
		t.Error("HasTable(EMPLOYEES) = false, want true")
	}
	if s.HasTable("departments") {
		t.Error("HasTable(departments) = true, want false")
	}
}

func TestDataTypePredicates(t *testing.T) {
	if !DECIMAL.IsNumeric() || DECIMAL.IsInteger() {
		t.Error("DECIMAL predicates wrong")
	}
	if !INTEGER.IsInteger() {
		t.Error("INTEGER.IsInteger() = false")
	}
	if !VARCHAR.IsString() || INTEGER.IsString() {
		t.Error("IsString predicates wrong")
	}
}
