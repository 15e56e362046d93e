// Package token classifies the characters of arithmetic expressions.
//
// Expressions are scanned one character at a time, so there is no separate
// token stream: a Kind describes what a single character means to the
// validator and the evaluator.
package token

// Kind represents the lexical class of a single character.
type Kind int

//nolint:revive // ALL_CAPS names follow the lexer convention used elsewhere
const (
	// Special kinds
	ILLEGAL Kind = iota
	EOF

	// Literals
	DIGIT // 0-9
	DOT   // .
	SPACE // ' '

	// Operators
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %
	LPAREN  // (
	RPAREN  // )
)

var kindNames = map[Kind]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	DIGIT:   "DIGIT",
	DOT:     "DOT",
	SPACE:   "SPACE",
	PLUS:    "+",
	MINUS:   "-",
	STAR:    "*",
	SLASH:   "/",
	PERCENT: "%",
	LPAREN:  "(",
	RPAREN:  ")",
}

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Lookup returns the kind of ch. Characters outside the expression
// alphabet are ILLEGAL.
func Lookup(ch rune) Kind {
	switch {
	case ch >= '0' && ch <= '9':
		return DIGIT
	case ch < 0:
		return EOF
	}

	switch ch {
	case '.':
		return DOT
	case ' ':
		return SPACE
	case '+':
		return PLUS
	case '-':
		return MINUS
	case '*':
		return STAR
	case '/':
		return SLASH
	case '%':
		return PERCENT
	case '(':
		return LPAREN
	case ')':
		return RPAREN
	default:
		return ILLEGAL
	}
}

// IsAllowed reports whether k belongs to the expression alphabet.
func (k Kind) IsAllowed() bool {
	return k != ILLEGAL && k != EOF
}

// IsRunBreaking reports whether two characters of this kind may not
// appear back to back. The set is + - * / and the decimal point.
func (k Kind) IsRunBreaking() bool {
	switch k {
	case PLUS, MINUS, STAR, SLASH, DOT:
		return true
	default:
		return false
	}
}
