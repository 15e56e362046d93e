// Package calc is the calculator facade.
//
// It chains validation, preprocessing, evaluation and formatting:
//
//	result, err := calc.Evaluate("(2+3)*4")
//	// result.Display == "20"
//
// Errors are typed up to this boundary. Only Calculate collapses them to
// the display sentinel "Error".
package calc

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/leapcalc/pkg/format"
	"github.com/leapstack-labs/leapcalc/pkg/lint"
	_ "github.com/leapstack-labs/leapcalc/pkg/lint/rules" // register validation rules
	"github.com/leapstack-labs/leapcalc/pkg/parser"
)

// ErrorDisplay is what Calculate returns for any failure.
const ErrorDisplay = "Error"

// DefaultJobs bounds EvaluateAll when Options.Jobs is not positive.
const DefaultJobs = 4

// Options controls evaluation.
type Options struct {
	Precision int // decimal places for non-whole results
	Jobs      int // parallelism for EvaluateAll
}

// DefaultOptions returns the options used by Evaluate.
func DefaultOptions() Options {
	return Options{
		Precision: format.ExpressionPrecision,
		Jobs:      DefaultJobs,
	}
}

// Result is a successful evaluation.
type Result struct {
	Expression string  `json:"expression" yaml:"expression"`
	Value      float64 `json:"value" yaml:"value"`
	Display    string  `json:"display" yaml:"display"`
}

// IsValidExpression reports whether expr passes every validation rule.
func IsValidExpression(expr string) bool {
	return lint.NewAnalyzer(nil).Valid(expr)
}

// Diagnose runs the validation rules under cfg. A nil cfg enables all rules
// at their default severity.
func Diagnose(expr string, cfg *lint.Config) []lint.Diagnostic {
	return lint.NewAnalyzer(cfg).Analyze(expr)
}

// Validate returns a *ValidationError if expr fails any validation rule.
func Validate(expr string) error {
	diags := Diagnose(expr, nil)
	if lint.HasErrors(diags) {
		return &ValidationError{Expression: expr, Diagnostics: diags}
	}
	return nil
}

// EvaluateExpression evaluates expr against the raw grammar, without
// validation or preprocessing. Division by zero yields an infinity or NaN.
func EvaluateExpression(expr string) (float64, error) {
	return parser.Evaluate(expr)
}

// Evaluate validates, evaluates and formats expr with the default options.
func Evaluate(expr string) (Result, error) {
	return EvaluateWith(expr, DefaultOptions())
}

// EvaluateWith is Evaluate with explicit options.
func EvaluateWith(expr string, opts Options) (Result, error) {
	if err := Validate(expr); err != nil {
		return Result{}, err
	}

	value, err := parser.Evaluate(parser.Preprocess(expr))
	if err != nil {
		return Result{}, err
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return Result{}, &NumericAnomalyError{Expression: expr, Value: value}
	}

	return Result{
		Expression: expr,
		Value:      value,
		Display:    format.Result(value, opts.Precision),
	}, nil
}

// Calculate returns the display string for expr, or ErrorDisplay.
func Calculate(expr string) string {
	res, err := Evaluate(expr)
	if err != nil {
		return ErrorDisplay
	}
	return res.Display
}

// Outcome is the result of one expression in a batch.
type Outcome struct {
	Result
	Err error `json:"-" yaml:"-"`
}

// EvaluateAll evaluates exprs concurrently, at most opts.Jobs at a time.
// Outcomes are returned in input order. Evaluation failures are recorded per
// outcome; the returned error is non-nil only when ctx is done before every
// expression was evaluated.
func EvaluateAll(ctx context.Context, exprs []string, opts Options) ([]Outcome, error) {
	outcomes := make([]Outcome, len(exprs))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = DefaultJobs
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, expr := range exprs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := EvaluateWith(expr, opts)
			if err != nil {
				res.Expression = expr
			}
			outcomes[i] = Outcome{Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}
