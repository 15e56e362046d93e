package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapcalc/internal/cli/config"
	"github.com/leapstack-labs/leapcalc/internal/cli/output"
	"github.com/leapstack-labs/leapcalc/pkg/calc"
)

// EvalOptions holds options for the eval command.
type EvalOptions struct {
	File      string // Read expressions from file ("-" for stdin)
	Precision int    // Decimal places for non-whole results
	Jobs      int    // Parallel evaluations
	Watch     bool   // Re-evaluate File whenever it changes
}

// EvalResult is one evaluated expression in structured output.
type EvalResult struct {
	Expression string   `json:"expression" yaml:"expression"`
	Value      *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Display    string   `json:"display" yaml:"display"`
	Error      string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// EvalOutput is the structured output of the eval command.
type EvalOutput struct {
	Results []EvalResult `json:"results" yaml:"results"`
	Summary struct {
		Total  int `json:"total" yaml:"total"`
		Failed int `json:"failed" yaml:"failed"`
	} `json:"summary" yaml:"summary"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	opts := &EvalOptions{}
	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `Evaluate one or more arithmetic expressions.

Expressions support + - * / % and parentheses. % divides by 100, so 50% is 0.5.
Each expression is validated before it is evaluated. An invalid expression,
a parse failure or a division by zero makes the command exit non-zero.

Flags go before the expressions. Everything from the first expression on is
read as an expression, so negative values such as -5 or -(2+3) can be passed
directly. Use -- to end flag parsing explicitly.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON/YAML: Machine-readable format`,
		Example: `  # Evaluate a single expression
  leapcalc eval "2+3*4"

  # Evaluate several expressions
  leapcalc eval "10/4" "50%" "(2+3)*4"

  # Negative expressions
  leapcalc eval -- -5 "-(2+3)"

  # Evaluate lines from a file, four at a time
  leapcalc eval --file sums.txt --jobs 4

  # Re-evaluate a file every time it is saved
  leapcalc eval --file sums.txt --watch

  # Read from stdin and print JSON
  echo "1/3" | leapcalc eval --file - --format json`,
		Annotations: map[string]string{ExpressionArgsAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args, opts)
		},
	}
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringVar(&opts.File, "file", "", "Read expressions from a file, one per line (- for stdin)")
	cmd.Flags().IntVarP(&opts.Precision, "precision", "p", 0, "Decimal places for non-whole results")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Number of expressions evaluated in parallel")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-evaluate --file whenever it changes")
	addFormatFlag(cmd)

	return cmd
}

func runEval(cmd *cobra.Command, args []string, opts *EvalOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	if opts.Watch && (opts.File == "" || opts.File == "-") {
		return fmt.Errorf("--watch requires --file with a path")
	}

	calcOpts := calc.Options{
		Precision: intFlagOr(cmd, "precision", cmdCtx.Cfg.Precision),
		Jobs:      intFlagOr(cmd, "jobs", cmdCtx.Cfg.Jobs),
	}
	if calcOpts.Precision < 0 || calcOpts.Precision > config.MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", config.MaxPrecision, calcOpts.Precision)
	}

	if !opts.Watch {
		return evalOnce(cmd, cmdCtx, args, opts.File, calcOpts)
	}

	rerun := func() {
		if err := evalOnce(cmd, cmdCtx, args, opts.File, calcOpts); err != nil {
			cmdCtx.Renderer.Error(err.Error())
		}
	}
	rerun()
	return watchFile(cmd.Context(), opts.File, watchDebounce, cmdCtx.Logger, rerun)
}

// evalOnce collects, evaluates and renders one batch of expressions.
func evalOnce(cmd *cobra.Command, cmdCtx *CommandContext, args []string, file string, calcOpts calc.Options) error {
	r := cmdCtx.Renderer

	exprs, err := collectExpressions(cmd, args, file)
	if err != nil {
		return err
	}

	cmdCtx.Logger.Debug("evaluating expressions",
		"count", len(exprs),
		"precision", calcOpts.Precision,
		"jobs", calcOpts.Jobs,
	)

	outcomes, err := calc.EvaluateAll(cmd.Context(), exprs, calcOpts)
	if err != nil {
		return fmt.Errorf("evaluation interrupted: %w", err)
	}

	out := buildEvalOutput(outcomes)
	for _, o := range outcomes {
		if o.Err != nil {
			cmdCtx.Logger.Debug("evaluation failed", "expression", o.Expression, "error", o.Err)
		}
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		err = r.JSON(out)
	case output.ModeYAML:
		err = r.YAML(out)
	case output.ModeMarkdown:
		renderEvalTable(r, out)
	default:
		renderEvalText(r, out)
	}
	if err != nil {
		return err
	}

	if out.Summary.Failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", out.Summary.Failed, out.Summary.Total)
	}
	return nil
}

func buildEvalOutput(outcomes []calc.Outcome) EvalOutput {
	var out EvalOutput
	out.Results = make([]EvalResult, 0, len(outcomes))
	for _, o := range outcomes {
		res := EvalResult{Expression: o.Expression}
		if o.Err != nil {
			res.Display = calc.ErrorDisplay
			res.Error = o.Err.Error()
			out.Summary.Failed++
		} else {
			v := o.Value
			res.Value = &v
			res.Display = o.Display
		}
		out.Results = append(out.Results, res)
	}
	out.Summary.Total = len(outcomes)
	return out
}

// renderEvalText prints bare results for a single expression and a table
// otherwise.
func renderEvalText(r *output.Renderer, out EvalOutput) {
	styles := r.Styles()

	if len(out.Results) == 1 {
		res := out.Results[0]
		if res.Error != "" {
			r.Println(styles.Error.Render(res.Display))
			r.Error(res.Error)
			return
		}
		r.Println(styles.Value.Render(res.Display))
		return
	}

	renderEvalTable(r, out)
	for _, res := range out.Results {
		if res.Error != "" {
			r.Error(res.Error)
		}
	}
}

func renderEvalTable(r *output.Renderer, out EvalOutput) {
	rows := make([][]string, 0, len(out.Results))
	for _, res := range out.Results {
		rows = append(rows, []string{res.Expression, res.Display})
	}
	r.Table([]string{"Expression", "Result"}, rows)
}
