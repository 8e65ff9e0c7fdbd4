package sqlparser

import (
	"github.com/relalg/sqlplan/internal/callscan"
	"github.com/relalg/sqlplan/token"
)

func reconstruct(toks []token.Item) string              { return callscan.Reconstruct(toks) }
func splitTopLevelComma(toks []token.Item) [][]token.Item { return callscan.SplitTopLevelComma(toks) }
func findLocalTopLevel(toks []token.Item, want token.Type) int {
	return callscan.FindTopLevel(toks, want)
}

func splitColumnList(toks []token.Item) []string {
	groups := splitTopLevelComma(toks)
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		if s := reconstruct(g); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func unquoteIdent(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
