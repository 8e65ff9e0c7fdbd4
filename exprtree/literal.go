package exprtree

import (
	"strings"

	"github.com/relalg/sqlplan/internal/xerrors"
	"github.com/relalg/sqlplan/schema"
)

// Literal is a constant value: a quoted string or a bare number.
type Literal struct {
	Raw      string
	IsString bool
	Typ      schema.DataType
}

// NewNumericLiteral validates raw as digits with an optional single
// decimal point and builds the Literal, typed INTEGER or DECIMAL by
// the presence of '.'. A non-numeric raw is an ArgumentError.
func NewNumericLiteral(raw string) (*Literal, error) {
	body := raw
	if strings.HasPrefix(body, "-") {
		body = body[1:]
	}
	if body == "" {
		return nil, xerrors.New(xerrors.ArgumentError, "invalid numeric literal %q", raw)
	}
	seenDot := false
	for _, r := range body {
		switch {
		case r == '.' && !seenDot:
			seenDot = true
		case r >= '0' && r <= '9':
		default:
			return nil, xerrors.New(xerrors.ArgumentError, "invalid numeric literal %q", raw)
		}
	}
	typ := schema.INTEGER
	if seenDot {
		typ = schema.DECIMAL
	}
	return &Literal{Raw: raw, Typ: typ}, nil
}

func (l *Literal) DataType() schema.DataType { return l.Typ }

func (l *Literal) ValidateTypes() error { return nil }
