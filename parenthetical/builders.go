package parenthetical

import (
	"strings"

	"github.com/relalg/sqlplan/internal/xerrors"
	"github.com/relalg/sqlplan/plan"
)

var opBuilders = map[string]func([]string) (plan.Node, error){
	"TABLE_SCAN":  buildTableScan,
	"PROJECTION":  buildProjection,
	"SELECTION":   buildSelection,
	"INNER_JOIN":  buildJoin(plan.INNER),
	"LEFT_JOIN":   buildJoin(plan.LEFT),
	"RIGHT_JOIN":  buildJoin(plan.RIGHT),
	"FULL_JOIN":   buildJoin(plan.FULL),
	"CROSS_JOIN":  buildJoin(plan.CROSS),
	"AGGREGATION": buildAggregation,
	"SORT":        buildSort,
	"SUBQUERY":    buildSubquery,
}

func build(opname string, params []string) (plan.Node, error) {
	fn, ok := opBuilders[opname]
	if !ok {
		return nil, xerrors.New(xerrors.SyntaxError, "unknown operator name %q", opname)
	}
	return fn(params)
}

// splitAS splits "expr AS alias" on the last top-level " AS " (case
// insensitive); absent that, returns s unchanged with an empty alias.
func splitAS(s string) (string, string) {
	upper := strings.ToUpper(s)
	idx := -1
	depth := 0
	for i := 0; i < len(upper); i++ {
		switch upper[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ' ':
			if depth == 0 && strings.HasPrefix(upper[i:], " AS ") {
				idx = i
			}
		}
	}
	if idx < 0 {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+4:])
}

func splitCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	fields := strings.Split(s, ",")
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func buildTableScan(params []string) (plan.Node, error) {
	if len(params) != 1 {
		return nil, xerrors.New(xerrors.SyntaxError, "TABLE_SCAN requires exactly one parameter")
	}
	name, alias := splitAS(params[0])
	return plan.NewTableScan(name, alias)
}

func buildProjection(params []string) (plan.Node, error) {
	if len(params) == 0 {
		return nil, xerrors.New(xerrors.SyntaxError, "PROJECTION requires a child")
	}
	childText := params[len(params)-1]
	if !isChildParam(childText) {
		return nil, xerrors.New(xerrors.SyntaxError, "PROJECTION is missing a required child")
	}
	child, err := parseChild(childText)
	if err != nil {
		return nil, err
	}

	itemParams := params[:len(params)-1]
	distinct := false
	if len(itemParams) > 0 && strings.EqualFold(itemParams[0], "DISTINCT") {
		distinct = true
		itemParams = itemParams[1:]
	}
	items := make([]plan.SelectItem, 0, len(itemParams))
	for _, raw := range itemParams {
		expr, alias := splitAS(raw)
		items = append(items, plan.SelectItem{Expression: expr, Alias: alias})
	}
	return plan.NewProjection(items, distinct, child)
}

func buildSelection(params []string) (plan.Node, error) {
	if len(params) != 2 {
		return nil, xerrors.New(xerrors.SyntaxError, "SELECTION requires a condition and a child")
	}
	child, err := parseChild(params[1])
	if err != nil {
		return nil, err
	}
	return plan.NewSelection(params[0], child)
}

func buildJoin(kind plan.JoinType) func([]string) (plan.Node, error) {
	return func(params []string) (plan.Node, error) {
		var condition string
		var leftText, rightText string
		switch {
		case kind == plan.CROSS && len(params) == 2:
			leftText, rightText = params[0], params[1]
		case kind != plan.CROSS && len(params) == 3:
			condition, leftText, rightText = params[0], params[1], params[2]
		default:
			return nil, xerrors.New(xerrors.SyntaxError, "%s_JOIN has the wrong number of parameters", kind)
		}
		left, err := parseChild(leftText)
		if err != nil {
			return nil, err
		}
		right, err := parseChild(rightText)
		if err != nil {
			return nil, err
		}
		return plan.NewJoin(kind, condition, left, right)
	}
}

func buildAggregation(params []string) (plan.Node, error) {
	if len(params) == 0 {
		return nil, xerrors.New(xerrors.SyntaxError, "AGGREGATION requires a child")
	}
	childText := params[len(params)-1]
	if !isChildParam(childText) {
		return nil, xerrors.New(xerrors.SyntaxError, "AGGREGATION is missing a required child")
	}
	child, err := parseChild(childText)
	if err != nil {
		return nil, err
	}

	// GROUP_BY: and AGG: each carry a comma-joined list as a single
	// logical parameter, but parseParam already split that list on
	// every top-level comma. Any param with no recognized prefix is a
	// continuation of whichever list/condition came before it, so it
	// gets rejoined onto *current rather than rejected.
	var groupByText, aggText, having string
	var current *string
	for _, p := range params[:len(params)-1] {
		switch {
		case strings.HasPrefix(p, "GROUP_BY:"):
			groupByText = strings.TrimPrefix(p, "GROUP_BY:")
			current = &groupByText
		case strings.HasPrefix(p, "AGG:"):
			aggText = strings.TrimPrefix(p, "AGG:")
			current = &aggText
		case strings.HasPrefix(p, "HAVING:"):
			having = strings.TrimPrefix(p, "HAVING:")
			current = &having
		default:
			if current == nil {
				return nil, xerrors.New(xerrors.SyntaxError, "unexpected AGGREGATION parameter %q", p)
			}
			*current += "," + p
		}
	}
	return plan.NewAggregation(splitCommaList(groupByText), splitCommaList(aggText), having, child)
}

func buildSort(params []string) (plan.Node, error) {
	if len(params) != 2 {
		return nil, xerrors.New(xerrors.SyntaxError, "SORT requires order items and a child")
	}
	child, err := parseChild(params[1])
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(params[0])
	var items []plan.OrderItem
	for i := 0; i < len(fields); i++ {
		col := fields[i]
		dir := plan.Unspecified
		if i+1 < len(fields) {
			switch strings.ToUpper(fields[i+1]) {
			case "ASC":
				dir = plan.Asc
				i++
			case "DESC":
				dir = plan.Desc
				i++
			}
		}
		items = append(items, plan.OrderItem{Column: col, Direction: dir})
	}
	return plan.NewSort(items, child)
}

func buildSubquery(params []string) (plan.Node, error) {
	if len(params) < 2 {
		return nil, xerrors.New(xerrors.SyntaxError, "SUBQUERY requires a TYPE and a child")
	}
	child, err := parseChild(params[len(params)-1])
	if err != nil {
		return nil, err
	}

	typeParam := params[0]
	if !strings.HasPrefix(strings.ToUpper(typeParam), "TYPE:") {
		return nil, xerrors.New(xerrors.SyntaxError, "SUBQUERY is missing a required TYPE: parameter")
	}
	kind, ok := plan.ParseSubqueryKind(typeParam[5:])
	if !ok {
		return nil, xerrors.New(xerrors.SyntaxError, "unknown subquery kind in %q", typeParam)
	}

	alias := ""
	if len(params) == 3 {
		aliasParam := params[1]
		if !strings.HasPrefix(strings.ToUpper(aliasParam), "ALIAS:") {
			return nil, xerrors.New(xerrors.SyntaxError, "unexpected SUBQUERY parameter %q", aliasParam)
		}
		alias = aliasParam[len("ALIAS:"):]
	}
	return plan.NewSubquery(kind, alias, child)
}
