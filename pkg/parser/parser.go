// Package parser evaluates arithmetic expressions by recursive descent.
//
// The grammar, from lowest to highest precedence:
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/') factor)*
//	factor     := '+' factor | '-' factor | '(' expression ')' | number
//	number     := digit+ ('.' digit+)?
//
// Values are computed during descent; no syntax tree is built. Division
// follows IEEE 754, so a zero divisor yields an infinity or NaN rather
// than an error.
package parser

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/leapstack-labs/leapcalc/pkg/token"
)

// EOF is the lookahead value once the input is exhausted.
const EOF rune = -1

// Evaluate parses expression and returns its value.
// It fails with a *ParseError when the grammar is violated.
func Evaluate(expression string) (float64, error) {
	return newParser(expression).parse()
}

// parser holds the state of a single evaluation. It is never shared.
type parser struct {
	input string
	pos   int  // byte offset of ch
	width int  // byte width of ch
	ch    rune // lookahead
}

func newParser(input string) *parser {
	p := &parser{input: input}
	p.readChar()
	return p
}

// readChar advances the cursor past the current lookahead.
func (p *parser) readChar() {
	p.pos += p.width
	if p.pos >= len(p.input) {
		p.width = 0
		p.ch = EOF
		return
	}
	p.ch, p.width = utf8.DecodeRuneInString(p.input[p.pos:])
}

// eat skips spaces, then consumes want if it is the lookahead.
func (p *parser) eat(want rune) bool {
	for p.ch == ' ' {
		p.readChar()
	}
	if p.ch == want {
		p.readChar()
		return true
	}
	return false
}

func (p *parser) parse() (float64, error) {
	x, err := p.parseExpression()
	if err != nil {
		return 0, err
	}
	if p.pos < len(p.input) {
		return 0, p.errorf(ErrUnexpectedTrailing, p.ch)
	}
	return x, nil
}

func (p *parser) parseExpression() (float64, error) {
	x, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.eat('+'):
			y, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			x += y
		case p.eat('-'):
			y, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			x -= y
		default:
			return x, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	x, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.eat('*'):
			y, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			x *= y
		case p.eat('/'):
			y, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			x /= y
		default:
			return x, nil
		}
	}
}

func (p *parser) parseFactor() (float64, error) {
	if p.eat('+') {
		return p.parseFactor()
	}
	if p.eat('-') {
		x, err := p.parseFactor()
		return -x, err
	}

	if p.eat('(') {
		x, err := p.parseExpression()
		if err != nil {
			return 0, err
		}
		if !p.eat(')') {
			return 0, p.errorf(ErrMissingRParen)
		}
		return x, nil
	}

	if token.Lookup(p.ch) == token.DIGIT {
		return p.parseNumber()
	}

	if p.ch == EOF {
		return 0, p.errorf(ErrUnexpectedEOF)
	}
	return 0, p.errorf(ErrUnexpectedChar, p.ch)
}

// parseNumber reads digit+ ('.' digit+)? starting at the lookahead.
func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	p.readDigits()

	if p.ch == '.' {
		p.readChar()
		if token.Lookup(p.ch) != token.DIGIT {
			return 0, p.errorf(ErrMalformedNumber, p.input[start:p.pos])
		}
		p.readDigits()
	}

	lit := p.input[start:p.pos]
	x, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		perr := p.errorf(ErrMalformedNumber, lit)
		perr.Char = rune(lit[0])
		perr.Pos = token.PositionAt(p.input, start)
		perr.Err = err
		return 0, perr
	}
	return x, nil
}

func (p *parser) readDigits() {
	for token.Lookup(p.ch) == token.DIGIT {
		p.readChar()
	}
}

// errorf builds a ParseError at the current lookahead.
func (p *parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{
		Char:    p.ch,
		Pos:     token.PositionAt(p.input, p.pos),
		Message: fmt.Sprintf(format, args...),
	}
}
