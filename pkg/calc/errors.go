package calc

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/leapcalc/pkg/lint"
)

// Sentinel errors for errors.Is. Parse failures match parser.ErrParse.
var (
	ErrValidation     = errors.New("invalid expression")
	ErrNumericAnomaly = errors.New("numeric anomaly")
)

// ValidationError reports an expression rejected before evaluation.
type ValidationError struct {
	Expression  string
	Diagnostics []lint.Diagnostic
}

func (e *ValidationError) Error() string {
	if len(e.Diagnostics) == 0 {
		return fmt.Sprintf("invalid expression %q", e.Expression)
	}
	msg := fmt.Sprintf("invalid expression %q: %s", e.Expression, e.Diagnostics[0].Message)
	if n := len(e.Diagnostics) - 1; n > 0 {
		msg += fmt.Sprintf(" (and %d more)", n)
	}
	return msg
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NumericAnomalyError reports an evaluation that produced an infinity or NaN,
// typically a division by a zero computed at runtime.
type NumericAnomalyError struct {
	Expression string
	Value      float64
}

func (e *NumericAnomalyError) Error() string {
	return fmt.Sprintf("expression %q evaluated to %v", e.Expression, e.Value)
}

// Is reports whether target is ErrNumericAnomaly.
func (e *NumericAnomalyError) Is(target error) bool {
	return target == ErrNumericAnomaly
}
