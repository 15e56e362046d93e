package lint

import (
	"fmt"

	"github.com/leapstack-labs/leapcalc/pkg/core"
	"github.com/leapstack-labs/leapcalc/pkg/token"
)

// Severity is an alias for core.Severity.
type Severity = core.Severity

// Severity levels re-exported for rule packages.
const (
	SeverityError   = core.SeverityError
	SeverityWarning = core.SeverityWarning
	SeverityInfo    = core.SeverityInfo
	SeverityHint    = core.SeverityHint
)

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string    // Unique identifier, e.g., "EX03"
	Name        string    // Human-readable name, e.g., "operator.consecutive"
	Group       string    // Category, e.g., "operator", "division"
	Description string    // Human-readable description
	Severity    Severity  // Default severity
	Check       CheckFunc // The check function

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Expression showing the anti-pattern
	GoodExample string // Expression showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes an expression and returns diagnostics.
// The opts parameter contains rule-specific options from configuration.
type CheckFunc func(expr string, opts map[string]any) []Diagnostic

// Info extracts metadata from the rule for documentation/tooling.
func (r RuleDef) Info() core.RuleInfo {
	return core.RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		Fix:             r.Fix,
	}
}

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string         `json:"rule_id" yaml:"rule_id"`
	Severity Severity       `json:"severity" yaml:"severity"`
	Message  string         `json:"message" yaml:"message"`
	Pos      token.Position `json:"pos" yaml:"pos"`
	EndPos   token.Position `json:"end_pos" yaml:"end_pos"` // Optional: end of the problematic range
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s at column %d: %s", d.RuleID, d.Severity, d.Pos.Column, d.Message)
}

// HasErrors reports whether any diagnostic has error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
