package lint

import "sort"

// Analyzer runs lint rules against expressions.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// Analyze runs all registered rules against the expression. Diagnostics
// are ordered by position, then by rule ID.
func (a *Analyzer) Analyze(expr string) []Diagnostic {
	var diagnostics []Diagnostic

	for _, rule := range GetAll() {
		// Skip disabled rules
		if a.config.IsDisabled(rule.ID) {
			continue
		}

		diags := rule.Check(expr, a.config.GetRuleOptions(rule.ID))

		// Apply severity overrides
		for i := range diags {
			diags[i].RuleID = rule.ID
			diags[i].Severity = a.config.GetSeverity(rule.ID, rule.Severity)
		}

		diagnostics = append(diagnostics, diags...)
	}

	sort.SliceStable(diagnostics, func(i, j int) bool {
		if diagnostics[i].Pos.Offset != diagnostics[j].Pos.Offset {
			return diagnostics[i].Pos.Offset < diagnostics[j].Pos.Offset
		}
		return diagnostics[i].RuleID < diagnostics[j].RuleID
	})

	return diagnostics
}

// Valid reports whether the expression produces no error diagnostics.
func (a *Analyzer) Valid(expr string) bool {
	return !HasErrors(a.Analyze(expr))
}
