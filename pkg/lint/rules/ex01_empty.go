package rules

import (
	"github.com/leapstack-labs/leapcalc/pkg/lint"
	"github.com/leapstack-labs/leapcalc/pkg/token"
)

func init() {
	lint.Register(EmptyExpression)
}

// EmptyExpression rejects the empty string.
var EmptyExpression = lint.RuleDef{
	ID:          "EX01",
	Name:        "structure.empty",
	Group:       "structure",
	Description: "Expression must not be empty.",
	Severity:    lint.SeverityError,
	Check:       checkEmpty,
	Rationale:   "An empty expression has no value to compute.",
	BadExample:  "",
	GoodExample: "0",
}

func checkEmpty(expr string, _ map[string]any) []lint.Diagnostic {
	if expr != "" {
		return nil
	}
	pos := token.PositionAt(expr, 0)
	return []lint.Diagnostic{{
		Message: "expression is empty",
		Pos:     pos,
		EndPos:  pos,
	}}
}
