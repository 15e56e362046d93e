package parser

import "strings"

// glyphs maps display glyphs onto grammar tokens. Percent becomes a
// division by one hundred, so "50%" reads as "50/100".
var glyphs = strings.NewReplacer(
	"%", "/100",
	"×", "*",
	"÷", "/",
)

// Preprocess rewrites display glyphs into the grammar's tokens in a
// single left-to-right pass. Replacements are not re-scanned.
func Preprocess(expression string) string {
	return glyphs.Replace(expression)
}
