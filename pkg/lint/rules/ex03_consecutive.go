package rules

import (
	"fmt"

	"github.com/leapstack-labs/leapcalc/pkg/lint"
	"github.com/leapstack-labs/leapcalc/pkg/token"
)

func init() {
	lint.Register(ConsecutiveOperators)
}

// ConsecutiveOperators rejects runs of two or more characters from + - * / and '.'.
var ConsecutiveOperators = lint.RuleDef{
	ID:          "EX03",
	Name:        "operator.consecutive",
	Group:       "operator",
	Description: "Operators and decimal points must not follow each other directly.",
	Severity:    lint.SeverityError,
	Check:       checkConsecutive,
	Rationale: "A repeated operator is almost always a double key press. " +
		"The check is textual, so a unary minus after an operator is rejected as well.",
	BadExample:  "3++3",
	GoodExample: "3+3",
	Fix:         "Remove the extra operator, or wrap a negative operand in parentheses: 3+(-2).",
}

func checkConsecutive(expr string, _ map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic

	// All run-breaking characters are ASCII, so byte indexing is safe here.
	start := -1
	for i := 0; i <= len(expr); i++ {
		if i < len(expr) && token.Lookup(rune(expr[i])).IsRunBreaking() {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start >= 2 {
			diags = append(diags, lint.Diagnostic{
				Message: fmt.Sprintf("consecutive operators %q", expr[start:i]),
				Pos:     token.PositionAt(expr, start),
				EndPos:  token.PositionAt(expr, i),
			})
		}
		start = -1
	}
	return diags
}
