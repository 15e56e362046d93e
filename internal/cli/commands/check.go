package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapcalc/internal/cli/output"
	"github.com/leapstack-labs/leapcalc/pkg/calc"
	"github.com/leapstack-labs/leapcalc/pkg/lint"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	File    string   // Read expressions from file ("-" for stdin)
	Disable []string // Rule IDs to skip
}

// CheckResult is the validation result of one expression.
type CheckResult struct {
	Expression  string            `json:"expression" yaml:"expression"`
	Valid       bool              `json:"valid" yaml:"valid"`
	Diagnostics []lint.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// CheckOutput is the structured output of the check command.
type CheckOutput struct {
	Results []CheckResult `json:"results" yaml:"results"`
	Summary struct {
		Total   int `json:"total" yaml:"total"`
		Invalid int `json:"invalid" yaml:"invalid"`
	} `json:"summary" yaml:"summary"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [expression...]",
		Short: "Validate expressions without evaluating them",
		Long: `Run the validation rules against expressions and report every finding.

An expression is invalid when any rule reports an error. Rules can be
disabled with --disable or in the lint section of leapcalc.yaml.
Use 'leapcalc rules' to list the available rules.

Flags go before the expressions. Everything from the first expression on is
read as an expression.`,
		Example: `  # Check an expression
  leapcalc check "3++3"

  # Allow a unary minus after an operator
  leapcalc check --disable EX03 "3+-2"

  # Check a file of expressions and print JSON
  leapcalc check --file sums.txt --format json`,
		Annotations: map[string]string{ExpressionArgsAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringVar(&opts.File, "file", "", "Read expressions from a file, one per line (- for stdin)")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable (comma-separated)")
	addFormatFlag(cmd)

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	exprs, err := collectExpressions(cmd, args, opts.File)
	if err != nil {
		return err
	}

	lintCfg, err := cmdCtx.Cfg.Lint.AnalyzerConfig()
	if err != nil {
		return err
	}
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.ToUpper(strings.TrimSpace(id)))
	}

	var out CheckOutput
	out.Results = make([]CheckResult, 0, len(exprs))
	for _, expr := range exprs {
		diags := calc.Diagnose(expr, lintCfg)
		if diags == nil {
			diags = []lint.Diagnostic{}
		}
		valid := !lint.HasErrors(diags)
		if !valid {
			out.Summary.Invalid++
		}
		cmdCtx.Logger.Debug("checked expression", "expression", expr, "diagnostics", len(diags))
		out.Results = append(out.Results, CheckResult{Expression: expr, Valid: valid, Diagnostics: diags})
	}
	out.Summary.Total = len(exprs)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		err = r.JSON(out)
	case output.ModeYAML:
		err = r.YAML(out)
	case output.ModeMarkdown:
		renderCheckMarkdown(r, out)
	default:
		renderCheckText(r, out)
	}
	if err != nil {
		return err
	}

	if out.Summary.Invalid > 0 {
		return fmt.Errorf("%d of %d expressions are invalid", out.Summary.Invalid, out.Summary.Total)
	}
	return nil
}

func renderCheckText(r *output.Renderer, out CheckOutput) {
	styles := r.Styles()

	for _, res := range out.Results {
		if res.Valid {
			r.Printf("%s %s\n", styles.Success.Render("✓"), res.Expression)
		} else {
			r.Printf("%s %s\n", styles.Error.Render("✗"), res.Expression)
		}
		for _, d := range res.Diagnostics {
			r.Printf("    %s  %s  %s  %s\n",
				styles.Muted.Render(fmt.Sprintf("col %d", d.Pos.Column)),
				styles.Muted.Render(d.RuleID),
				getSeverityStyle(styles, d.Severity).Render(d.Severity.String()),
				d.Message,
			)
		}
	}

	r.Println("")
	summary := fmt.Sprintf("%d checked, %d invalid", out.Summary.Total, out.Summary.Invalid)
	if out.Summary.Invalid > 0 {
		r.Println(styles.Error.Render(summary))
	} else {
		r.Println(styles.Success.Render(summary))
	}
}

func renderCheckMarkdown(r *output.Renderer, out CheckOutput) {
	r.Println("# Validation Results")
	r.Println("")

	var rows [][]string
	for _, res := range out.Results {
		if len(res.Diagnostics) == 0 {
			rows = append(rows, []string{res.Expression, "", "", "", "ok"})
			continue
		}
		for _, d := range res.Diagnostics {
			rows = append(rows, []string{
				res.Expression,
				strconv.Itoa(d.Pos.Column),
				d.RuleID,
				d.Severity.String(),
				d.Message,
			})
		}
	}
	r.Table([]string{"Expression", "Column", "Rule", "Severity", "Message"}, rows)

	r.Println("")
	r.Printf("**Summary:** %d checked, %d invalid\n", out.Summary.Total, out.Summary.Invalid)
}
