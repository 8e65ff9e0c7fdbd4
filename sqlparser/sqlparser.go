// Package sqlparser orchestrates the tokenizer and the plan node model
// to turn a SELECT statement into a plan.Node tree, grounded on the
// pooled-lexer-plus-cursor parser shape of machparse's parser.Parser
// but emitting a relational-algebra plan instead of a flat statement
// AST.
package sqlparser

import (
	"strings"

	"github.com/relalg/sqlplan/internal/xerrors"
	"github.com/relalg/sqlplan/lexer"
	"github.com/relalg/sqlplan/plan"
	"github.com/relalg/sqlplan/token"
)

// Parse tokenizes and parses a single SELECT statement into a plan
// tree. Nil or whitespace-only input is an InvalidInput error.
func Parse(sql string) (plan.Node, error) {
	if strings.TrimSpace(sql) == "" {
		return nil, xerrors.New(xerrors.InvalidInput, "SQL text must not be empty")
	}
	toks := lexer.Tokenize(sql)
	if len(toks) == 0 {
		return nil, xerrors.New(xerrors.InvalidInput, "SQL text must not be empty")
	}
	p := &parser{toks: toks}
	return p.parseSelect()
}

type parser struct {
	toks []token.Item
}

// parenDepths returns, for each token, the paren-nesting depth it sits
// at — 0 for top-level tokens. Used so clause keywords inside a
// subquery's parentheses are never mistaken for the outer query's
// clauses.
func parenDepths(toks []token.Item) []int {
	depths := make([]int, len(toks))
	d := 0
	for i, t := range toks {
		if t.Type == token.RPAREN {
			d--
		}
		depths[i] = d
		if t.Type == token.LPAREN {
			d++
		}
	}
	return depths
}

func findTopLevelSingle(toks []token.Item, depths []int, from int, want token.Type) int {
	for i := from; i < len(toks); i++ {
		if depths[i] == 0 && toks[i].Type == want {
			return i
		}
	}
	return -1
}

// findTopLevelPair locates a two-keyword clause like "GROUP BY" or
// "ORDER BY" at depth 0, returning the index of the first keyword.
func findTopLevelPair(toks []token.Item, depths []int, from int, first, second token.Type) int {
	for i := from; i+1 < len(toks); i++ {
		if depths[i] == 0 && toks[i].Type == first && toks[i+1].Type == second {
			return i
		}
	}
	return -1
}

func (p *parser) parseSelect() (plan.Node, error) {
	toks := p.toks
	if len(toks) == 0 || toks[0].Type != token.SELECT {
		return nil, xerrors.New(xerrors.SyntaxError, "expected SELECT")
	}
	depths := parenDepths(toks)

	fromIdx := findTopLevelSingle(toks, depths, 1, token.FROM)
	if fromIdx < 0 {
		return nil, xerrors.New(xerrors.SyntaxError, "missing FROM clause")
	}

	whereIdx := findTopLevelSingle(toks, depths, fromIdx+1, token.WHERE)
	groupIdx := findTopLevelPair(toks, depths, fromIdx+1, token.GROUP, token.BY)
	havingIdx := findTopLevelSingle(toks, depths, fromIdx+1, token.HAVING)
	orderIdx := findTopLevelPair(toks, depths, fromIdx+1, token.ORDER, token.BY)

	fromRangeEnd := len(toks)
	switch {
	case whereIdx >= 0:
		fromRangeEnd = whereIdx
	case groupIdx >= 0:
		fromRangeEnd = groupIdx
	case orderIdx >= 0:
		fromRangeEnd = orderIdx
	}

	whereRangeEnd := len(toks)
	if groupIdx >= 0 {
		whereRangeEnd = groupIdx
	} else if orderIdx >= 0 {
		whereRangeEnd = orderIdx
	}

	groupColsEnd := len(toks)
	if havingIdx >= 0 {
		groupColsEnd = havingIdx
	} else if orderIdx >= 0 {
		groupColsEnd = orderIdx
	}

	havingEnd := len(toks)
	if orderIdx >= 0 {
		havingEnd = orderIdx
	}

	selectRange := toks[1:fromIdx]
	fromRange := toks[fromIdx+1 : fromRangeEnd]

	items, distinct, err := parseSelectRange(selectRange)
	if err != nil {
		return nil, err
	}

	fromNode, err := parseFromRange(fromRange)
	if err != nil {
		return nil, err
	}

	current := fromNode
	if whereIdx >= 0 {
		cond := reconstruct(toks[whereIdx+1 : whereRangeEnd])
		current, err = plan.NewSelection(cond, current)
		if err != nil {
			return nil, err
		}
	}

	if groupIdx >= 0 {
		groupBy := splitColumnList(toks[groupIdx+2 : groupColsEnd])
		aggregates := collectAggregateSourceTexts(items)
		having := ""
		if havingIdx >= 0 {
			having = reconstruct(toks[havingIdx+1 : havingEnd])
		}
		current, err = plan.NewAggregation(groupBy, aggregates, having, current)
		if err != nil {
			return nil, err
		}
	}

	proj, err := plan.NewProjection(items, distinct, current)
	if err != nil {
		return nil, err
	}

	var result plan.Node = proj
	if orderIdx >= 0 {
		orderItems, err := parseOrderItems(toks[orderIdx+2:])
		if err != nil {
			return nil, err
		}
		result, err = plan.NewSort(orderItems, proj)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
