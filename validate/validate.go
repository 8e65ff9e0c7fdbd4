package validate

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/relalg/sqlplan/internal/logging"
	"github.com/relalg/sqlplan/internal/xerrors"
	"github.com/relalg/sqlplan/plan"
	"github.com/relalg/sqlplan/schema"
)

// Result carries every problem found while validating a plan against
// a schema. Errors mean the plan is invalid; Warnings flag a
// suspicious but well-formed plan (e.g. an ambiguous join column).
type Result struct {
	Errors   []string
	Warnings []string
}

func (r *Result) addError(format string, args ...any)   { r.Errors = append(r.Errors, fmt.Sprintf(format, args...)) }
func (r *Result) addWarning(format string, args ...any) { r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...)) }

// Validator walks a plan post-order, checking each operator's rule
// from the schema validator's contract and logging its progress the
// way the rest of this module logs, via internal/logging.
type Validator struct {
	log       *logrus.Entry
	subqueryN int
}

// New creates a Validator that logs through logger's "validate"
// component. A nil logger discards log output.
func New(logger *logrus.Logger) *Validator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Validator{log: logging.Component(logger, "validate")}
}

// Validate checks root against sch and returns every error and
// warning found. A nil root or schema is an InvalidInput error.
func (v *Validator) Validate(root plan.Node, sch *schema.Schema) (*Result, error) {
	if root == nil {
		return nil, xerrors.New(xerrors.InvalidInput, "validator requires a plan")
	}
	if sch == nil {
		return nil, xerrors.New(xerrors.InvalidInput, "validator requires a schema")
	}
	res := &Result{}
	v.walk(root, sch, res)
	v.log.WithFields(logrus.Fields{
		"errors":   len(res.Errors),
		"warnings": len(res.Warnings),
	}).Debug("validated plan")
	return res, nil
}

func (v *Validator) walk(n plan.Node, sch *schema.Schema, res *Result) Context {
	switch node := n.(type) {
	case *plan.TableScan:
		return v.visitTableScan(node, sch, res)
	case *plan.Projection:
		return v.visitProjection(node, sch, res)
	case *plan.Selection:
		return v.visitSelection(node, sch, res)
	case *plan.Join:
		return v.visitJoin(node, sch, res)
	case *plan.Aggregation:
		return v.visitAggregation(node, sch, res)
	case *plan.Sort:
		return v.visitSort(node, sch, res)
	case *plan.Subquery:
		return v.visitSubquery(node, sch, res)
	default:
		res.addError("unrecognized plan node %T", n)
		return nil
	}
}

func (v *Validator) visitTableScan(t *plan.TableScan, sch *schema.Schema, res *Result) Context {
	table, ok := sch.Table(t.TableName)
	if !ok {
		res.addError("table %q does not exist in schema", t.TableName)
		return nil
	}
	v.log.WithField("table", t.TableName).Debug("resolved table scan")

	qualifier := t.EffectiveName()
	var ctx Context
	for _, c := range table.Columns() {
		ctx = append(ctx, Entry{Column: c.Name, Type: c.DataType})
		ctx = append(ctx, Entry{Table: qualifier, Column: c.Name, Type: c.DataType})
	}
	return ctx
}

func (v *Validator) visitProjection(p *plan.Projection, sch *schema.Schema, res *Result) Context {
	child := v.walk(p.Child, sch, res)

	var out Context
	for _, item := range p.Items {
		if item.Expression == "*" {
			out = append(out, child...)
			continue
		}
		if len(item.ParsedFunctions) > 0 {
			for _, fc := range item.ParsedFunctions {
				res.Errors = append(res.Errors, validateFunctionArgs("projection", fc.Args, fc.SourceText, child)...)
			}
		} else if _, ok := child.Resolve(item.Expression); !ok {
			res.addError("Column '%s' is not available in projection", item.Expression)
		}
		dt, _ := child.Resolve(item.Expression)
		out = append(out, Entry{Column: item.EffectiveName(), Type: dt})
	}
	return out
}

func (v *Validator) visitSelection(s *plan.Selection, sch *schema.Schema, res *Result) Context {
	child := v.walk(s.Child, sch, res)
	res.Errors = append(res.Errors, ValidateCondition("selection", s.Condition, child)...)
	return child
}

func (v *Validator) visitJoin(j *plan.Join, sch *schema.Schema, res *Result) Context {
	children := j.Children()
	if len(children) != 2 || children[0] == nil || children[1] == nil {
		res.addError("join must have exactly 2 children")
		return nil
	}
	left := v.walk(j.Left, sch, res)
	right := v.walk(j.Right, sch, res)

	for _, name := range HasUnqualifiedOverlap(left, right) {
		res.addWarning("Ambiguous column name '%s' exists in both sides of join", name)
	}

	merged := make(Context, 0, len(left)+len(right))
	merged = append(merged, left...)
	merged = append(merged, right...)

	if j.Condition != "" {
		res.Errors = append(res.Errors, ValidateCondition("join", j.Condition, merged)...)
	}
	return merged
}

func (v *Validator) visitAggregation(a *plan.Aggregation, sch *schema.Schema, res *Result) Context {
	child := v.walk(a.Child, sch, res)

	for _, g := range a.GroupBy {
		if _, ok := child.Resolve(g); !ok {
			res.addError("Column '%s' is not available for GROUP BY", g)
		}
	}
	for _, agg := range a.Aggregates {
		res.Errors = append(res.Errors, ValidateCondition("aggregate", agg, child)...)
	}

	var out Context
	for _, g := range a.GroupBy {
		dt, _ := child.Resolve(g)
		out = append(out, newEntry(g, dt))
	}
	for _, agg := range a.Aggregates {
		out = append(out, Entry{Column: agg, Type: schema.DECIMAL})
	}

	if a.Having != "" {
		res.Errors = append(res.Errors, ValidateCondition("having", a.Having, out)...)
	}
	return out
}

func (v *Validator) visitSort(s *plan.Sort, sch *schema.Schema, res *Result) Context {
	child := v.walk(s.Child, sch, res)
	for _, item := range s.OrderItems {
		if _, ok := child.Resolve(item.Column); !ok {
			res.addError("Column '%s' is not available for ORDER BY", item.Column)
		}
	}
	return child
}

func (v *Validator) visitSubquery(s *plan.Subquery, sch *schema.Schema, res *Result) Context {
	inner := v.walk(s.Child, sch, res)

	alias := s.Alias
	if alias == "" {
		v.subqueryN++
		alias = fmt.Sprintf("subquery_%d", v.subqueryN)
	}

	var out Context
	for _, e := range inner {
		if e.Table != "" {
			continue // already-qualified inner columns don't leak their inner qualifier
		}
		out = append(out, Entry{Column: e.Column, Type: e.Type})
		out = append(out, Entry{Table: alias, Column: e.Column, Type: e.Type})
	}
	return out
}
