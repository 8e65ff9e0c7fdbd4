package sqlparser

import (
	"strings"

	"github.com/relalg/sqlplan/function"
	"github.com/relalg/sqlplan/internal/callscan"
	"github.com/relalg/sqlplan/plan"
	"github.com/relalg/sqlplan/token"
)

// parseSelectRange parses the token span between SELECT and FROM: an
// optional DISTINCT, then a comma-separated item list. Each item may
// carry an explicit AS alias; per the design note in DESIGN.md, bare
// trailing-identifier aliases are not supported, to avoid the
// ambiguity of telling a bare alias apart from a two-token function
// argument list.
func parseSelectRange(toks []token.Item) ([]plan.SelectItem, bool, error) {
	distinct := false
	if len(toks) > 0 && toks[0].Type == token.DISTINCT {
		distinct = true
		toks = toks[1:]
	}

	groups := splitTopLevelComma(toks)
	items := make([]plan.SelectItem, 0, len(groups))
	for _, g := range groups {
		asIdx := findLocalTopLevel(g, token.AS)
		exprToks := g
		var aliasToks []token.Item
		if asIdx >= 0 {
			exprToks = g[:asIdx]
			aliasToks = g[asIdx+1:]
		}
		expr := strings.TrimSpace(reconstruct(exprToks))
		alias := ""
		if len(aliasToks) > 0 {
			alias = unquoteIdent(strings.TrimSpace(reconstruct(aliasToks)))
		}
		items = append(items, plan.SelectItem{
			Expression:      expr,
			Alias:           alias,
			ParsedFunctions: callscan.ExtractFunctionCalls(exprToks),
		})
	}
	return items, distinct, nil
}

// collectAggregateSourceTexts gathers the source text of every
// AGGREGATE-category function call found across a SELECT list, in
// first-seen order with duplicates removed.
func collectAggregateSourceTexts(items []plan.SelectItem) []string {
	var out []string
	seen := make(map[string]bool)
	for _, item := range items {
		for _, fc := range item.ParsedFunctions {
			if fc.Category != function.AGGREGATE {
				continue
			}
			if seen[fc.SourceText] {
				continue
			}
			seen[fc.SourceText] = true
			out = append(out, fc.SourceText)
		}
	}
	return out
}
