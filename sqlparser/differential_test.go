package sqlparser

import (
	"strings"
	"testing"

	vitess "github.com/blastrain/vitess-sqlparser/sqlparser"
	"github.com/relalg/sqlplan/plan"
)

// TestDifferentialAgainstVitess cross-checks our parser against
// vitess-sqlparser as an independent oracle, grounded on machparse's
// own compat_test.go/compare_test.go use of the same dependency: for
// a query vitess itself accepts, every table our plan scans should
// still be nameable in vitess's own reformatting of that statement.
// This doesn't assert full semantic equivalence (the two parsers
// target different grammars) but catches gross table-name mishandling.
func TestDifferentialAgainstVitess(t *testing.T) {
	queries := []string{
		"SELECT name FROM users",
		"SELECT * FROM users WHERE age > 18",
		"SELECT a.id, b.total FROM orders a JOIN payments b ON a.id = b.order_id",
		"SELECT department, COUNT(*) FROM employees GROUP BY department HAVING COUNT(*) > 5",
		"SELECT name FROM users ORDER BY name DESC",
	}
	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			oracleStmt, err := vitess.Parse(q)
			if err != nil {
				t.Fatalf("vitess-sqlparser rejected a query our tests assume is valid SQL: %v", err)
			}
			oracleText := strings.ToLower(vitess.String(oracleStmt))

			node, err := Parse(q)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			for _, name := range tableNames(node) {
				if !strings.Contains(oracleText, strings.ToLower(name)) {
					t.Errorf("table %q from our plan not found in vitess's reformatting %q", name, oracleText)
				}
			}
		})
	}
}

func tableNames(n plan.Node) []string {
	var out []string
	switch v := n.(type) {
	case *plan.TableScan:
		out = append(out, v.TableName)
	case *plan.Subquery:
		out = append(out, tableNames(v.Child)...)
	default:
		for _, c := range n.Children() {
			out = append(out, tableNames(c)...)
		}
	}
	return out
}
