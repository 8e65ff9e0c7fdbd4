package validate

import (
	"fmt"
	"strings"

	"github.com/relalg/sqlplan/internal/callscan"
	"github.com/relalg/sqlplan/lexer"
	"github.com/relalg/sqlplan/token"
)

// ValidateCondition checks a WHERE/ON/HAVING condition string against
// ctx: function calls are extracted first (deepest first, never
// re-scanning a span already covered by an enclosing call), their
// non-literal, non-wildcard arguments are checked, and every
// remaining identifier — with string and numeric literals and SQL
// keywords skipped — must resolve in ctx. label names the clause in
// error messages.
func ValidateCondition(label, cond string, ctx Context) []string {
	if strings.TrimSpace(cond) == "" {
		return nil
	}
	toks := lexer.Tokenize(cond)

	var errs []string
	for _, fc := range callscan.ExtractFunctionCalls(toks) {
		errs = append(errs, validateFunctionArgs(label, fc.Args, fc.SourceText, ctx)...)
	}

	excluded := make([]bool, len(toks))
	for _, span := range callscan.FunctionSpans(toks) {
		for i := span[0]; i < span[1]; i++ {
			excluded[i] = true
		}
	}

	i := 0
	for i < len(toks) {
		if excluded[i] {
			i++
			continue
		}
		t := toks[i]
		if t.Type != token.IDENT || t.Type.IsKeyword() {
			i++
			continue
		}
		name := t.Value
		if i+2 < len(toks) && toks[i+1].Type == token.DOT && toks[i+2].Type == token.IDENT && !excluded[i+2] {
			name = name + "." + toks[i+2].Value
			i += 3
		} else {
			i++
		}
		if _, ok := ctx.Resolve(name); !ok {
			errs = append(errs, unavailableColumnMessage(label, name))
		}
	}
	return errs
}

// validateFunctionArgs checks a function's non-literal, non-wildcard
// arguments against ctx. source names the enclosing call in errors.
func validateFunctionArgs(label string, args []string, source string, ctx Context) []string {
	var errs []string
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if isLiteralOrWildcard(arg) || !isSimpleIdentifier(arg) {
			continue
		}
		if _, ok := ctx.Resolve(arg); !ok {
			errs = append(errs, unavailableColumnMessage(label, fmt.Sprintf("%s (in %s)", arg, source)))
		}
	}
	return errs
}

// unavailableColumnMessage reports that name cannot be resolved in
// label's clause. HAVING gets its own wording since the validator's
// contract asserts on "in HAVING condition is not available"
// specifically, distinct from every other clause's generic phrasing.
func unavailableColumnMessage(label, name string) string {
	if label == "having" {
		return fmt.Sprintf("column %q in HAVING condition is not available", name)
	}
	return fmt.Sprintf("%s: column %q is not available", label, name)
}

func isLiteralOrWildcard(s string) bool {
	if s == "*" || s == "" {
		return true
	}
	if s[0] == '\'' || s[0] == '"' {
		return true
	}
	return isNumeric(s)
}

func isNumeric(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	dotSeen := false
	for _, r := range s {
		switch {
		case r == '.' && !dotSeen:
			dotSeen = true
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

func isSimpleIdentifier(s string) bool {
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_' || c == '.':
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
