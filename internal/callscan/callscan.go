// Package callscan provides the token-level text reconstruction and
// function-call extraction shared by the SQL parser and the schema
// validator, so both walk expression text the same way instead of
// each re-deriving it with ad hoc string matching.
package callscan

import (
	"strings"

	"github.com/relalg/sqlplan/function"
	"github.com/relalg/sqlplan/plan"
	"github.com/relalg/sqlplan/token"
)

// Reconstruct renders a token slice back to text, applying standard
// spacing rules: no space between an identifier and a following '('
// (function calls), none before ')' ',' ';' '.', none after '(' '.',
// and a single space everywhere else so operators stay legible.
func Reconstruct(toks []token.Item) string {
	var b strings.Builder
	for i, it := range toks {
		if i > 0 && !tightJoin(toks[i-1], it) {
			b.WriteByte(' ')
		}
		b.WriteString(it.Value)
	}
	return b.String()
}

func tightJoin(prev, cur token.Item) bool {
	switch cur.Type {
	case token.COMMA, token.RPAREN, token.SEMI, token.DOT:
		return true
	}
	switch prev.Type {
	case token.LPAREN, token.DOT:
		return true
	}
	return cur.Type == token.LPAREN && prev.Type == token.IDENT
}

// SplitTopLevelComma splits toks on commas that sit at paren depth 0
// relative to the start of toks.
func SplitTopLevelComma(toks []token.Item) [][]token.Item {
	var groups [][]token.Item
	depth := 0
	start := 0
	for i, t := range toks {
		switch t.Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
		case token.COMMA:
			if depth == 0 {
				groups = append(groups, toks[start:i])
				start = i + 1
			}
		}
	}
	groups = append(groups, toks[start:])
	return groups
}

// FindTopLevel finds want at paren depth 0 within toks, treating
// toks[0] as depth 0 regardless of its position in any outer stream.
func FindTopLevel(toks []token.Item, want token.Type) int {
	depth := 0
	for i, t := range toks {
		if t.Type == token.RPAREN {
			depth--
		}
		if depth == 0 && t.Type == want {
			return i
		}
		if t.Type == token.LPAREN {
			depth++
		}
	}
	return -1
}

// ExtractFunctionCalls walks toks for registered-function invocations,
// recursing into each call's arguments first so nested calls are
// reported before the call that encloses them (deepest first), and
// never overlapping a span already consumed by an enclosing match.
func ExtractFunctionCalls(toks []token.Item) []plan.FunctionCall {
	var out []plan.FunctionCall
	i := 0
	for i < len(toks) {
		t := toks[i]
		if t.Type == token.IDENT && i+1 < len(toks) && toks[i+1].Type == token.LPAREN && function.IsRegistered(t.Value) {
			depth := 1
			j := i + 2
			for j < len(toks) && depth > 0 {
				switch toks[j].Type {
				case token.LPAREN:
					depth++
				case token.RPAREN:
					depth--
				}
				if depth == 0 {
					break
				}
				j++
			}
			if j >= len(toks) {
				i++
				continue
			}
			argToks := toks[i+2 : j]
			out = append(out, ExtractFunctionCalls(argToks)...)
			out = append(out, plan.FunctionCall{
				Name:       strings.ToUpper(t.Value),
				Args:       SplitArgsText(argToks),
				Category:   function.CategoryOf(t.Value),
				SourceText: Reconstruct(toks[i : j+1]),
			})
			i = j + 1
			continue
		}
		i++
	}
	return out
}

// FunctionSpans returns the [start,end) token ranges of every
// outermost registered-function call in toks — "outermost" meaning a
// call nested inside another call's arguments is not reported
// separately, since it falls inside its enclosing call's range. Used
// to exclude already-validated function-call text from a subsequent
// identifier scan over the same tokens.
func FunctionSpans(toks []token.Item) [][2]int {
	var spans [][2]int
	i := 0
	for i < len(toks) {
		t := toks[i]
		if t.Type == token.IDENT && i+1 < len(toks) && toks[i+1].Type == token.LPAREN && function.IsRegistered(t.Value) {
			depth := 1
			j := i + 2
			for j < len(toks) && depth > 0 {
				switch toks[j].Type {
				case token.LPAREN:
					depth++
				case token.RPAREN:
					depth--
				}
				if depth == 0 {
					break
				}
				j++
			}
			if j >= len(toks) {
				i++
				continue
			}
			spans = append(spans, [2]int{i, j + 1})
			i = j + 1
			continue
		}
		i++
	}
	return spans
}

// SplitArgsText splits a function call's argument tokens into their
// reconstructed text, one entry per top-level comma-separated argument.
func SplitArgsText(toks []token.Item) []string {
	if len(toks) == 1 && toks[0].Type == token.STAR {
		return []string{"*"}
	}
	groups := SplitTopLevelComma(toks)
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		if s := strings.TrimSpace(Reconstruct(g)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
