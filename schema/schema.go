// Package schema models the table/column metadata a plan is validated
// against: a case-insensitive mapping from table name to Table, itself
// a case-insensitive mapping from column name to Column.
package schema

import (
	"sort"

	"github.com/relalg/sqlplan/internal/fold"
)

// DataType enumerates the column/expression types this module reasons
// about.
type DataType int

const (
	UNKNOWN DataType = iota
	INTEGER
	BIGINT
	DECIMAL
	FLOAT
	DOUBLE
	VARCHAR
	CHAR
	TEXT
	DATE
	TIME
	TIMESTAMP
	BOOLEAN
	BLOB
	CLOB
)

var dataTypeNames = map[DataType]string{
	UNKNOWN:   "UNKNOWN",
	INTEGER:   "INTEGER",
	BIGINT:    "BIGINT",
	DECIMAL:   "DECIMAL",
	FLOAT:     "FLOAT",
	DOUBLE:    "DOUBLE",
	VARCHAR:   "VARCHAR",
	CHAR:      "CHAR",
	TEXT:      "TEXT",
	DATE:      "DATE",
	TIME:      "TIME",
	TIMESTAMP: "TIMESTAMP",
	BOOLEAN:   "BOOLEAN",
	BLOB:      "BLOB",
	CLOB:      "CLOB",
}

func (t DataType) String() string {
	if s, ok := dataTypeNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// IsNumeric reports whether t is an integer or decimal/floating type.
func (t DataType) IsNumeric() bool {
	switch t {
	case INTEGER, BIGINT, DECIMAL, FLOAT, DOUBLE:
		return true
	default:
		return false
	}
}

// IsInteger reports whether t is INTEGER or BIGINT.
func (t DataType) IsInteger() bool {
	return t == INTEGER || t == BIGINT
}

// IsString reports whether t is a textual type.
func (t DataType) IsString() bool {
	switch t {
	case VARCHAR, CHAR, TEXT, CLOB:
		return true
	default:
		return false
	}
}

// Column describes a single column of a Table.
type Column struct {
	Name       string
	DataType   DataType
	Nullable   bool
	PrimaryKey bool
}

// Table is a case-insensitive mapping from column name to Column. The
// original casing passed to AddColumn is preserved on the Column value
// for display, even though lookups fold case.
type Table struct {
	Name    string
	columns map[string]Column // keyed by fold.Key(column name)
}

// NewTable creates an empty Table named name.
func NewTable(name string) *Table {
	return &Table{Name: name, columns: make(map[string]Column)}
}

// AddColumn adds or replaces a column definition.
func (t *Table) AddColumn(c Column) {
	t.columns[fold.Key(c.Name)] = c
}

// Column looks up a column by name, case-insensitively.
func (t *Table) Column(name string) (Column, bool) {
	c, ok := t.columns[fold.Key(name)]
	return c, ok
}

// Columns returns every column in insertion-independent, but
// deterministic by-name, order. Callers that need display order should
// track it themselves; this module does not guarantee one.
func (t *Table) Columns() []Column {
	out := make([]Column, 0, len(t.columns))
	for _, c := range t.columns {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Schema is a case-insensitive mapping from table name to Table.
// Populated before validation begins and treated as immutable
// thereafter.
type Schema struct {
	tables map[string]*Table // keyed by fold.Key(table name)
}

// New creates an empty Schema.
func New() *Schema {
	return &Schema{tables: make(map[string]*Table)}
}

// AddTable registers t under its name, case-insensitively.
func (s *Schema) AddTable(t *Table) {
	s.tables[fold.Key(t.Name)] = t
}

// Table looks up a table by name, case-insensitively.
func (s *Schema) Table(name string) (*Table, bool) {
	t, ok := s.tables[fold.Key(name)]
	return t, ok
}

// HasTable reports whether name (case-insensitive) exists in s.
func (s *Schema) HasTable(name string) bool {
	_, ok := s.tables[fold.Key(name)]
	return ok
}
