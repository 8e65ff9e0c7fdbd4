// Package parenthetical parses and prints the round-trippable textual
// plan form OPNAME(param, ..., child, ...): a small
// recursive grammar where parameters are quoted text, unparenthesized
// text, or a nested OPNAME(...) child, separated by top-level commas.
package parenthetical

import (
	"strings"

	"github.com/relalg/sqlplan/internal/xerrors"
	"github.com/relalg/sqlplan/plan"
)

// Parse parses s into an equivalent plan.Node.
func Parse(s string) (plan.Node, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, xerrors.New(xerrors.InvalidInput, "parenthetical expression must not be empty")
	}
	p := &parser{src: s}
	node, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, xerrors.New(xerrors.SyntaxError, "trailing text after parenthetical expression: %q", p.src[p.pos:])
	}
	return node, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n' || p.src[p.pos] == '\r') {
		p.pos++
	}
}

// parseNode parses one S := OPNAME '(' Params? ')' production.
func (p *parser) parseNode() (plan.Node, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && isOpnameChar(p.src[p.pos]) {
		p.pos++
	}
	opname := p.src[start:p.pos]
	if opname == "" {
		return nil, xerrors.New(xerrors.SyntaxError, "expected an operator name at position %d", start)
	}
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != '(' {
		return nil, xerrors.New(xerrors.SyntaxError, "no SELECT found: expected '(' after %s", opname)
	}
	p.pos++ // consume '('

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != ')' {
		return nil, xerrors.New(xerrors.SyntaxError, "missing closing parenthesis for %s", opname)
	}
	p.pos++ // consume ')'

	return build(strings.ToUpper(opname), params)
}

// parseParams splits the comma-separated parameter list up to (but not
// consuming) the matching ')', respecting nested parens and quotes.
func (p *parser) parseParams() ([]string, error) {
	var params []string
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == ')' {
		return params, nil
	}
	for {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	return params, nil
}

// parseParam consumes one top-level parameter: a quoted string, a
// nested OPNAME(...), or a run of unparenthesized text up to the next
// top-level comma or closing paren.
func (p *parser) parseParam() (string, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return "", xerrors.New(xerrors.SyntaxError, "unexpected end of input in parameter list")
	}
	if p.src[p.pos] == '"' || p.src[p.pos] == '\'' {
		return p.parseQuoted()
	}

	start := p.pos
	depth := 0
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return strings.TrimSpace(p.src[start:p.pos]), nil
			}
			depth--
		case ',':
			if depth == 0 {
				return strings.TrimSpace(p.src[start:p.pos]), nil
			}
		case '"', '\'':
			if err := p.skipQuotedRegion(); err != nil {
				return "", err
			}
			continue
		}
		p.pos++
	}
	return "", xerrors.New(xerrors.SyntaxError, "missing closing parenthesis in parameter list")
}

func (p *parser) parseQuoted() (string, error) {
	start := p.pos
	if err := p.skipQuotedRegion(); err != nil {
		return "", err
	}
	return p.src[start:p.pos], nil
}

func (p *parser) skipQuotedRegion() error {
	openedAt := p.pos
	quote := p.src[p.pos]
	p.pos++
	for p.pos < len(p.src) {
		if p.src[p.pos] == quote {
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == quote {
				p.pos += 2
				continue
			}
			p.pos++
			return nil
		}
		p.pos++
	}
	return xerrors.New(xerrors.SyntaxError, "unterminated quoted parameter starting at position %d", openedAt)
}

func isOpnameChar(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '_'
}

// isChildParam reports whether a parameter text parses as
// OPNAME(...) for a known OPNAME, in which case it is a nested plan
// node rather than a literal parameter.
func isChildParam(s string) bool {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && isOpnameChar(s[i]) {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != '(' || !strings.HasSuffix(s, ")") {
		return false
	}
	_, known := opBuilders[strings.ToUpper(s[:i])]
	return known
}

func parseChild(s string) (plan.Node, error) {
	cp := &parser{src: strings.TrimSpace(s)}
	node, err := cp.parseNode()
	if err != nil {
		return nil, err
	}
	return node, nil
}
