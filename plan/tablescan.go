package plan

import "github.com/relalg/sqlplan/internal/xerrors"

// TableScan reads every row of a base table.
type TableScan struct {
	TableName string
	Alias     string
}

// NewTableScan validates and constructs a TableScan. Neither name nor
// a non-empty alias may contain whitespace.
func NewTableScan(name, alias string) (*TableScan, error) {
	if name == "" {
		return nil, xerrors.New(xerrors.InvalidInput, "table scan requires a non-empty table name")
	}
	if hasWhitespace(name) {
		return nil, xerrors.New(xerrors.InvalidInput, "table name %q contains whitespace", name)
	}
	if hasWhitespace(alias) {
		return nil, xerrors.New(xerrors.InvalidInput, "table alias %q contains whitespace", alias)
	}
	return &TableScan{TableName: name, Alias: alias}, nil
}

func (t *TableScan) Kind() Kind       { return TableScanKind }
func (t *TableScan) Children() []Node { return nil }

// EffectiveName is the alias if present, else the table name; this is
// how the validator qualifies the table's columns.
func (t *TableScan) EffectiveName() string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.TableName
}

func (t *TableScan) ToSQL() string {
	if t.Alias != "" {
		return t.TableName + " AS " + t.Alias
	}
	return t.TableName
}

func (t *TableScan) ToTreeString() string {
	return renderTreeString("TABLE_SCAN", t.ToSQL())
}

func (t *TableScan) ToParenthetical() string {
	return renderParenthetical("TABLE_SCAN", []string{t.ToSQL()})
}
