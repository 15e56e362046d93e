// Package lint provides the structural validator for arithmetic expressions.
//
// # Architecture
//
// Validation is a set of small, data-driven rules. Each rule scans the raw
// expression text and reports diagnostics; no parsing is involved, so the
// validator can reject hopeless input before the evaluator ever runs.
//
//  1. Root package (pkg/lint/): shared contracts, the registry and the Analyzer
//  2. Rules (pkg/lint/rules/): the built-in rule set
//
// # Rule Registration
//
// Rules are automatically registered via init() functions when their package is imported:
//
//	import _ "github.com/leapstack-labs/leapcalc/pkg/lint/rules"
//
// # Rule Categories
//
//   - EX01 (structure): empty input
//   - EX02 (charset): characters outside the expression alphabet
//   - EX03 (operator): consecutive operators or decimal points
//   - EX04 (division): literal division by zero
//
// # Using the Analyzer
//
//	diags := lint.NewAnalyzer(nil).Analyze("3++3")
//	if lint.HasErrors(diags) {
//		// reject the expression
//	}
package lint
