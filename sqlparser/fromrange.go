package sqlparser

import (
	"github.com/relalg/sqlplan/internal/xerrors"
	"github.com/relalg/sqlplan/plan"
	"github.com/relalg/sqlplan/token"
)

// cursor walks a token slice left to right; used for the FROM range,
// which has sequential structure (table/subquery, alias, then zero or
// more JOIN clauses) rather than the keyword-search structure of the
// outer clause split.
type cursor struct {
	toks []token.Item
	pos  int
}

func (c *cursor) atEnd() bool { return c.pos >= len(c.toks) }

func (c *cursor) cur() token.Item {
	if c.atEnd() {
		return token.Item{Type: token.EOF}
	}
	return c.toks[c.pos]
}

func (c *cursor) advance() token.Item {
	it := c.cur()
	c.pos++
	return it
}

func isJoinKeyword(t token.Type) bool {
	switch t {
	case token.INNER, token.LEFT, token.RIGHT, token.FULL, token.CROSS, token.JOIN:
		return true
	default:
		return false
	}
}

// parseFromRange parses the FROM clause body: a table reference or
// parenthesized subquery, optionally aliased, followed by zero or
// more JOIN clauses that each fold the accumulator into a new Join.
func parseFromRange(toks []token.Item) (plan.Node, error) {
	c := &cursor{toks: toks}
	node, err := parseTableOrSubquery(c)
	if err != nil {
		return nil, err
	}
	for {
		kind, ok := tryConsumeJoinKeyword(c)
		if !ok {
			break
		}
		right, err := parseTableOrSubquery(c)
		if err != nil {
			return nil, err
		}
		condition := ""
		if c.cur().Type == token.ON {
			c.advance()
			condStart := c.pos
			for !c.atEnd() && !isJoinKeyword(c.cur().Type) {
				c.advance()
			}
			condition = reconstruct(c.toks[condStart:c.pos])
		}
		node, err = plan.NewJoin(kind, condition, node, right)
		if err != nil {
			return nil, err
		}
	}
	if !c.atEnd() {
		return nil, xerrors.New(xerrors.SyntaxError, "unexpected token %q in FROM clause", c.cur().Value)
	}
	return node, nil
}

func parseTableOrSubquery(c *cursor) (plan.Node, error) {
	if c.cur().Type == token.LPAREN {
		c.advance()
		depth := 1
		innerStart := c.pos
		for !c.atEnd() && depth > 0 {
			switch c.cur().Type {
			case token.LPAREN:
				depth++
			case token.RPAREN:
				depth--
			}
			if depth == 0 {
				break
			}
			c.advance()
		}
		if c.atEnd() {
			return nil, xerrors.New(xerrors.SyntaxError, "missing closing parenthesis in FROM clause")
		}
		innerEnd := c.pos
		c.advance() // consume ')'

		innerToks := c.toks[innerStart:innerEnd]
		if findLocalTopLevel(innerToks, token.SELECT) < 0 {
			return nil, xerrors.New(xerrors.SyntaxError, "no SELECT found inside parenthesized FROM term")
		}
		innerNode, err := (&parser{toks: innerToks}).parseSelect()
		if err != nil {
			return nil, err
		}
		alias := parseOptionalAlias(c)
		return plan.NewSubquery(plan.KindFrom, alias, innerNode)
	}

	if c.cur().Type != token.IDENT {
		return nil, xerrors.New(xerrors.SyntaxError, "expected a table name in FROM clause")
	}
	name := c.advance().Value
	alias := parseOptionalAlias(c)
	return plan.NewTableScan(name, alias)
}

func parseOptionalAlias(c *cursor) string {
	if c.cur().Type == token.AS {
		c.advance()
		if c.cur().Type == token.IDENT || c.cur().Type == token.STRING {
			return unquoteIdent(c.advance().Value)
		}
		return ""
	}
	if c.cur().Type == token.IDENT {
		return c.advance().Value
	}
	return ""
}

// tryConsumeJoinKeyword consumes an optional join-strength keyword
// (INNER/LEFT/RIGHT/FULL/CROSS) followed by JOIN. It leaves the
// cursor untouched and returns false if no JOIN is present.
func tryConsumeJoinKeyword(c *cursor) (plan.JoinType, bool) {
	save := c.pos
	kind := plan.INNER
	switch c.cur().Type {
	case token.INNER:
		kind = plan.INNER
		c.advance()
	case token.LEFT:
		kind = plan.LEFT
		c.advance()
	case token.RIGHT:
		kind = plan.RIGHT
		c.advance()
	case token.FULL:
		kind = plan.FULL
		c.advance()
	case token.CROSS:
		kind = plan.CROSS
		c.advance()
	}
	if c.cur().Type != token.JOIN {
		c.pos = save
		return 0, false
	}
	c.advance()
	return kind, true
}
