// Package exprtree parses a SQL expression substring (a WHERE
// condition, a SELECT item, a HAVING condition) into a small recursive
// expression tree distinct from the plan tree in package plan, and
// infers each node's data type. It is grounded on the precedence-
// climbing parser shape of machparse's parser/expression.go, narrowed
// to the five-level precedence table this module needs.
package exprtree

import (
	"strings"

	"github.com/relalg/sqlplan/function"
	"github.com/relalg/sqlplan/internal/xerrors"
	"github.com/relalg/sqlplan/lexer"
	"github.com/relalg/sqlplan/schema"
	"github.com/relalg/sqlplan/token"
)

// Node is an expression-tree value: a literal, a column reference, a
// binary operator, or a function call.
type Node interface {
	DataType() schema.DataType
	ValidateTypes() error
}

// ColumnTypeLookup resolves a bare or qualified column name to its
// schema type. A nil lookup (or a miss) means every column defaults to
// VARCHAR.
type ColumnTypeLookup interface {
	ColumnType(name string) (schema.DataType, bool)
}

const (
	precOr = iota + 1
	precAnd
	precComparison
	precAdditive
	precMultiplicative
)

func precedenceOf(it token.Item) (prec int, opText string, ok bool) {
	switch it.Type {
	case token.OR:
		return precOr, "OR", true
	case token.AND:
		return precAnd, "AND", true
	case token.EQ:
		return precComparison, "=", true
	case token.NEQ:
		return precComparison, it.Value, true
	case token.LT:
		return precComparison, "<", true
	case token.GT:
		return precComparison, ">", true
	case token.LTE:
		return precComparison, "<=", true
	case token.GTE:
		return precComparison, ">=", true
	case token.LIKE:
		return precComparison, "LIKE", true
	case token.PLUS:
		return precAdditive, "+", true
	case token.MINUS:
		return precAdditive, "-", true
	case token.STAR:
		return precMultiplicative, "*", true
	case token.SLASH:
		return precMultiplicative, "/", true
	case token.PERCENT:
		return precMultiplicative, "%", true
	default:
		return 0, "", false
	}
}

// ParseExpression parses expr into an expression tree. columns lists
// the column names in scope (informational; out-of-scope identifiers
// are still accepted here and left for the schema validator to
// reject). lookup resolves column types from the schema in force; it
// may be nil.
func ParseExpression(expr string, columns []string, lookup ColumnTypeLookup) (Node, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, xerrors.New(xerrors.InvalidInput, "expression must not be empty")
	}
	toks := lexer.Tokenize(expr)
	if len(toks) == 0 {
		return nil, xerrors.New(xerrors.InvalidInput, "expression must not be empty")
	}
	p := &parser{toks: toks, lookup: lookup}
	node, err := p.parseExpr(precOr)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, xerrors.New(xerrors.SyntaxError, "unexpected token %q in expression %q", p.cur().Value, expr)
	}
	return node, nil
}

type parser struct {
	toks   []token.Item
	pos    int
	lookup ColumnTypeLookup
}

var eofItem = token.Item{Type: token.EOF, Value: ""}

func (p *parser) cur() token.Item {
	if p.pos >= len(p.toks) {
		return eofItem
	}
	return p.toks[p.pos]
}

func (p *parser) peekNext() token.Item {
	if p.pos+1 >= len(p.toks) {
		return eofItem
	}
	return p.toks[p.pos+1]
}

func (p *parser) advance() token.Item {
	it := p.cur()
	p.pos++
	return it
}

// parseExpr implements precedence climbing: parse a primary, then
// repeatedly fold in binary operators at or above minPrec, recursing
// at prec+1 for the right operand to keep each level left-associative.
func (p *parser) parseExpr(minPrec int) (Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		prec, opText, ok := precedenceOf(p.cur())
		if !ok || prec < minPrec {
			return left, nil
		}
		p.advance()
		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		left, err = newOperator(opText, left, right)
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) parsePrimary() (Node, error) {
	it := p.cur()
	switch it.Type {
	case token.LPAREN:
		p.advance()
		node, err := p.parseExpr(precOr)
		if err != nil {
			return nil, err
		}
		if p.cur().Type != token.RPAREN {
			return nil, xerrors.New(xerrors.SyntaxError, "expected ')' in expression")
		}
		p.advance()
		return node, nil
	case token.MINUS:
		p.advance()
		nxt := p.cur()
		if nxt.Type != token.INT && nxt.Type != token.FLOAT {
			return nil, xerrors.New(xerrors.SyntaxError, "unexpected '-' in expression")
		}
		p.advance()
		return NewNumericLiteral("-" + nxt.Value)
	case token.STRING:
		p.advance()
		return &Literal{Raw: it.Value, IsString: true, Typ: schema.VARCHAR}, nil
	case token.INT, token.FLOAT:
		p.advance()
		return NewNumericLiteral(it.Value)
	case token.STAR:
		p.advance()
		return &Literal{Raw: "*", Typ: schema.VARCHAR}, nil
	case token.IDENT:
		if p.peekNext().Type == token.LPAREN && function.IsRegistered(it.Value) {
			return p.parseFunctionCall()
		}
		p.advance()
		return p.newColumn(it.Value), nil
	default:
		return nil, xerrors.New(xerrors.SyntaxError, "unexpected token %q in expression", it.Value)
	}
}

func (p *parser) parseFunctionCall() (Node, error) {
	name := p.advance().Value // IDENT
	p.advance()               // LPAREN

	var args []Node
	if p.cur().Type == token.STAR && p.peekNext().Type == token.RPAREN {
		p.advance()
		args = []Node{&Literal{Raw: "*", Typ: schema.VARCHAR}}
	} else if p.cur().Type != token.RPAREN {
		for {
			arg, err := p.parseExpr(precOr)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur().Type == token.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	if p.cur().Type != token.RPAREN {
		return nil, xerrors.New(xerrors.SyntaxError, "expected ')' closing call to %s", name)
	}
	p.advance()

	cat := function.CategoryOf(name)
	return &Function{
		Name:     strings.ToUpper(name),
		Args:     args,
		Category: cat,
		Typ:      functionDefaultType(name, cat, args),
	}, nil
}

func (p *parser) newColumn(name string) *Column {
	typ := schema.VARCHAR
	if p.lookup != nil {
		if dt, ok := p.lookup.ColumnType(name); ok {
			typ = dt
		}
	}
	return &Column{Name: name, Typ: typ}
}

func isWildcard(n Node) bool {
	lit, ok := n.(*Literal)
	return ok && lit.Raw == "*"
}

func functionDefaultType(name string, cat function.Category, args []Node) schema.DataType {
	up := strings.ToUpper(name)
	switch cat {
	case function.AGGREGATE:
		if up == "COUNT" {
			return schema.INTEGER
		}
		if (up == "SUM" || up == "AVG" || up == "MIN" || up == "MAX") && len(args) > 0 {
			if dt := args[0].DataType(); dt.IsNumeric() {
				return dt
			}
		}
		return schema.DECIMAL
	case function.STRING:
		if up == "LENGTH" || up == "LEN" {
			return schema.INTEGER
		}
		return schema.VARCHAR
	case function.NUMERIC:
		if len(args) > 0 {
			if dt := args[0].DataType(); dt.IsInteger() || dt == schema.DECIMAL {
				return dt
			}
		}
		return schema.DECIMAL
	case function.DATE:
		return schema.TIMESTAMP
	case function.CONDITIONAL:
		if len(args) > 0 {
			return args[0].DataType()
		}
		return schema.VARCHAR
	default:
		return schema.VARCHAR
	}
}
