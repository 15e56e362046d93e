// Package keypad implements the button state machine of the calculator.
//
// A State accumulates digit presses into the current input, remembers one
// pending binary operation, and evaluates it on equals or when the next
// operator is pressed. Arithmetic is done on two operands directly; the
// expression evaluator is not involved.
package keypad

import (
	"math"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leapcalc/pkg/format"
)

// ErrorDisplay is shown when an operation fails.
const ErrorDisplay = "Error"

// DivideByZeroNotice is raised when equals divides by zero.
const DivideByZeroNotice = "Cannot divide by zero"

// Operator is a binary operator key.
type Operator string

// Operator keys, labelled as on the keypad.
const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "×"
	Divide   Operator = "÷"
)

// ParseOperator maps a key label to an Operator. Both the keypad glyphs
// and their ASCII forms are accepted.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "+":
		return Add, true
	case "-":
		return Subtract, true
	case "×", "*", "x":
		return Multiply, true
	case "÷", "/":
		return Divide, true
	default:
		return "", false
	}
}

// State is the calculator state between key presses.
type State struct {
	current     string
	previous    string
	operator    Operator
	resetScreen bool
	hasDecimal  bool
	notice      string
}

// New returns a cleared calculator.
func New() *State {
	s := &State{}
	s.Clear()
	return s
}

// Display returns the current input.
func (s *State) Display() string {
	return s.current
}

// Expression returns the pending operation, e.g. "12 +", or "" when none
// is pending.
func (s *State) Expression() string {
	if s.previous == "" || s.operator == "" {
		return ""
	}
	return s.previous + " " + string(s.operator)
}

// Pending returns the pending operator, if any.
func (s *State) Pending() Operator {
	return s.operator
}

// TakeNotice returns and clears the transient notice.
func (s *State) TakeNotice() string {
	n := s.notice
	s.notice = ""
	return n
}

// Digit appends d (0-9) to the current input. Other runes are ignored.
func (s *State) Digit(d rune) {
	if d < '0' || d > '9' {
		return
	}
	if s.resetScreen {
		s.current = ""
		s.resetScreen = false
		s.hasDecimal = false
	}
	if s.current == "0" || s.current == ErrorDisplay {
		s.current = string(d)
		return
	}
	s.current += string(d)
}

// Decimal appends a decimal point unless the input already has one.
func (s *State) Decimal() {
	if s.resetScreen {
		s.current = "0"
		s.resetScreen = false
		s.hasDecimal = false
	}
	if s.hasDecimal {
		return
	}
	if s.current == "" || s.current == ErrorDisplay {
		s.current = "0."
	} else {
		s.current += "."
	}
	s.hasDecimal = true
}

// Operator sets the pending operator. A pending operation whose second
// operand has been entered is evaluated first, so "1 + 2 +" shows 3.
func (s *State) Operator(op Operator) {
	if s.current == "" || s.current == ErrorDisplay {
		return
	}
	if s.previous != "" && s.operator != "" && !s.resetScreen {
		s.Equals()
		if s.current == ErrorDisplay {
			return
		}
	}
	s.previous = s.current
	s.operator = op
	s.resetScreen = true
	s.hasDecimal = false
}

// Equals evaluates the pending operation.
func (s *State) Equals() {
	if s.previous == "" || s.operator == "" || s.current == "" || s.current == ErrorDisplay {
		return
	}

	lhs, err := strconv.ParseFloat(s.previous, 64)
	if err != nil {
		s.current = ErrorDisplay
		return
	}
	rhs, err := strconv.ParseFloat(s.current, 64)
	if err != nil {
		s.current = ErrorDisplay
		return
	}

	var result float64
	switch s.operator {
	case Add:
		result = lhs + rhs
	case Subtract:
		result = lhs - rhs
	case Multiply:
		result = lhs * rhs
	case Divide:
		if rhs == 0 {
			s.current = ErrorDisplay
			s.notice = DivideByZeroNotice
			return
		}
		result = lhs / rhs
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		s.current = ErrorDisplay
		s.previous = ""
		s.operator = ""
		s.resetScreen = true
		s.hasDecimal = false
		return
	}

	s.current = format.Result(result, format.KeypadPrecision)
	s.previous = ""
	s.operator = ""
	s.resetScreen = true
	s.hasDecimal = strings.Contains(s.current, ".")
}

// Percent divides the current input by 100.
func (s *State) Percent() {
	if s.current == "" || s.current == ErrorDisplay {
		return
	}
	v, err := strconv.ParseFloat(s.current, 64)
	if err != nil {
		s.current = ErrorDisplay
		return
	}
	s.current = format.Result(v/100, format.KeypadPrecision)
	s.hasDecimal = strings.Contains(s.current, ".")
}

// Clear resets every field.
func (s *State) Clear() {
	s.current = "0"
	s.previous = ""
	s.operator = ""
	s.resetScreen = false
	s.hasDecimal = false
	s.notice = ""
}

// ToggleSign negates the current input. Zero and Error are left alone.
func (s *State) ToggleSign() {
	if s.current == "" || s.current == "0" || s.current == ErrorDisplay {
		return
	}
	if strings.HasPrefix(s.current, "-") {
		s.current = s.current[1:]
	} else {
		s.current = "-" + s.current
	}
}

// Backspace removes the last character of the current input. A single
// character or Error resets the input to "0". It returns false when there
// is nothing to delete, leaving the caller to handle the key.
func (s *State) Backspace() bool {
	switch {
	case len(s.current) > 1 && s.current != ErrorDisplay:
		s.current = s.current[:len(s.current)-1]
		if !strings.Contains(s.current, ".") {
			s.hasDecimal = false
		}
		return true
	case len(s.current) == 1 || s.current == ErrorDisplay:
		s.current = "0"
		s.hasDecimal = false
		return true
	default:
		return false
	}
}
