package exprtree

import (
	"github.com/relalg/sqlplan/function"
	"github.com/relalg/sqlplan/internal/xerrors"
	"github.com/relalg/sqlplan/schema"
)

// Function is a call to a registered built-in, e.g. COUNT(*), UPPER(name).
type Function struct {
	Name     string
	Args     []Node
	Category function.Category
	Typ      schema.DataType
}

func (f *Function) DataType() schema.DataType { return f.Typ }

// ValidateTypes recursively validates every argument, then applies the
// per-category constraint: string functions want
// VARCHAR/TEXT/CHAR/CLOB args, numeric functions want INTEGER/BIGINT/
// DECIMAL/FLOAT/DOUBLE args, and AGGREGATE is permissive. The '*'
// wildcard argument (COUNT(*)) is exempt from either check.
func (f *Function) ValidateTypes() error {
	for _, a := range f.Args {
		if err := a.ValidateTypes(); err != nil {
			return err
		}
	}
	switch f.Category {
	case function.STRING:
		for _, a := range f.Args {
			if isWildcard(a) {
				continue
			}
			if dt := a.DataType(); !dt.IsString() {
				return xerrors.New(xerrors.ArgumentError, "function %s expects string arguments, got %s", f.Name, dt)
			}
		}
	case function.NUMERIC:
		for _, a := range f.Args {
			if isWildcard(a) {
				continue
			}
			if dt := a.DataType(); !dt.IsNumeric() {
				return xerrors.New(xerrors.ArgumentError, "function %s expects numeric arguments, got %s", f.Name, dt)
			}
		}
	}
	return nil
}
