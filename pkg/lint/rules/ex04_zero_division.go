package rules

import (
	"strings"

	"github.com/leapstack-labs/leapcalc/pkg/lint"
	"github.com/leapstack-labs/leapcalc/pkg/token"
)

func init() {
	lint.Register(LiteralZeroDivision)
}

// LiteralZeroDivision rejects "/0" unless a decimal point follows the zero.
var LiteralZeroDivision = lint.RuleDef{
	ID:          "EX04",
	Name:        "division.literal-zero",
	Group:       "division",
	Description: "Division by a literal zero is not allowed.",
	Severity:    lint.SeverityError,
	Check:       checkZeroDivision,
	Rationale: "Catches the common case of dividing by zero before evaluation. " +
		"The check is textual: it also flags divisors such as 05, and it misses zeros computed at runtime.",
	BadExample:  "8/0",
	GoodExample: "8/0.5",
}

func checkZeroDivision(expr string, _ map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic

	offset := 0
	for {
		idx := strings.Index(expr[offset:], "/0")
		if idx < 0 {
			return diags
		}
		at := offset + idx
		next := at + 2
		if next >= len(expr) || expr[next] != '.' {
			diags = append(diags, lint.Diagnostic{
				Message: "division by zero",
				Pos:     token.PositionAt(expr, at),
				EndPos:  token.PositionAt(expr, next),
			})
		}
		offset = next
	}
}
