package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/leapstack-labs/leapcalc/pkg/lint"
	"github.com/leapstack-labs/leapcalc/pkg/token"
)

func init() {
	lint.Register(InvalidCharacter)
}

// InvalidCharacter rejects characters outside 0-9 + - * / . % ( ) and space.
var InvalidCharacter = lint.RuleDef{
	ID:          "EX02",
	Name:        "charset.whitelist",
	Group:       "charset",
	Description: "Expression may only contain digits, + - * / . % ( ) and spaces.",
	Severity:    lint.SeverityError,
	Check:       checkCharset,
	Rationale:   "Anything else cannot be produced by the keypad and is not part of the grammar.",
	BadExample:  "2^3",
	GoodExample: "2*2*2",
	Fix:         "Remove the character or rewrite it with the supported operators.",
}

func checkCharset(expr string, _ map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for i, ch := range expr {
		if token.Lookup(ch).IsAllowed() {
			continue
		}
		width := utf8.RuneLen(ch)
		if width < 0 {
			width = 1
		}
		diags = append(diags, lint.Diagnostic{
			Message: fmt.Sprintf("invalid character %q", ch),
			Pos:     token.PositionAt(expr, i),
			EndPos:  token.PositionAt(expr, i+width),
		})
	}
	return diags
}
