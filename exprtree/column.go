package exprtree

import "github.com/relalg/sqlplan/schema"

// Column is a reference to a table column, qualified or unqualified.
type Column struct {
	Name string
	Typ  schema.DataType
}

func (c *Column) DataType() schema.DataType { return c.Typ }

func (c *Column) ValidateTypes() error { return nil }
