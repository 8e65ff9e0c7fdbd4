package sqlparser

import (
	"github.com/relalg/sqlplan/plan"
	"github.com/relalg/sqlplan/token"
)

func parseOrderItems(toks []token.Item) ([]plan.OrderItem, error) {
	groups := splitTopLevelComma(toks)
	items := make([]plan.OrderItem, 0, len(groups))
	for _, g := range groups {
		dir := plan.Unspecified
		colToks := g
		if n := len(g); n > 0 {
			switch g[n-1].Type {
			case token.ASC:
				dir = plan.Asc
				colToks = g[:n-1]
			case token.DESC:
				dir = plan.Desc
				colToks = g[:n-1]
			}
		}
		items = append(items, plan.OrderItem{Column: reconstruct(colToks), Direction: dir})
	}
	return items, nil
}
