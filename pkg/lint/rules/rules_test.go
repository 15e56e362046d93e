package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcalc/pkg/lint"
)

func ruleIDs(diags []lint.Diagnostic) []string {
	ids := make([]string, 0, len(diags))
	for _, d := range diags {
		ids = append(ids, d.RuleID)
	}
	return ids
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"EX01", "EX02", "EX03", "EX04"} {
		rule, ok := lint.GetByID(id)
		require.True(t, ok, id)
		assert.Equal(t, lint.SeverityError, rule.Severity)
		assert.NotEmpty(t, rule.Description)
		assert.NotEmpty(t, rule.Rationale)
	}
}

func TestAnalyze_Accepts(t *testing.T) {
	analyzer := lint.NewAnalyzer(nil)

	tests := []string{
		"0",
		"2+3*4",
		"(2+3)*4",
		"-5",
		"10/4",
		"50%",
		"1/0.5",
		"1/(1-1)",
		"3 + + 3",
		"  7  ",
		"((1))",
	}
	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			assert.Empty(t, analyzer.Analyze(expr))
			assert.True(t, analyzer.Valid(expr))
		})
	}
}

func TestAnalyze_Rejects(t *testing.T) {
	analyzer := lint.NewAnalyzer(nil)

	tests := []struct {
		name string
		expr string
		want []string
	}{
		{"empty", "", []string{"EX01"}},
		{"letter", "2a", []string{"EX02"}},
		{"caret", "2^3", []string{"EX02"}},
		{"times glyph", "2×3", []string{"EX02"}},
		{"double plus", "3++3", []string{"EX03"}},
		{"double dot", "1..2", []string{"EX03"}},
		{"unary after operator", "3+-2", []string{"EX03"}},
		{"operator then dot", "3+.5", []string{"EX03"}},
		{"literal zero", "8/0", []string{"EX04"}},
		{"leading zero divisor", "10/05", []string{"EX04"}},
		{"zero then paren", "8/0+1", []string{"EX04"}},
		{"multiple", "1++2/0", []string{"EX03", "EX04"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := analyzer.Analyze(tt.expr)
			assert.Equal(t, tt.want, ruleIDs(diags))
			assert.False(t, analyzer.Valid(tt.expr))
		})
	}
}

func TestCharset_OneDiagnosticPerCharacter(t *testing.T) {
	diags := checkCharset("a+b×c", nil)
	require.Len(t, diags, 4)

	assert.Equal(t, 1, diags[0].Pos.Column)
	assert.Equal(t, 3, diags[1].Pos.Column)
	assert.Equal(t, 4, diags[2].Pos.Column)
	assert.Equal(t, 5, diags[2].EndPos.Column)
	assert.Equal(t, 5, diags[3].Pos.Column)
	assert.Equal(t, `invalid character '×'`, diags[2].Message)
}

func TestConsecutive_Runs(t *testing.T) {
	diags := checkConsecutive("1+-2*/3", nil)
	require.Len(t, diags, 2)

	assert.Equal(t, 2, diags[0].Pos.Column)
	assert.Equal(t, 4, diags[0].EndPos.Column)
	assert.Equal(t, `consecutive operators "+-"`, diags[0].Message)

	assert.Equal(t, 5, diags[1].Pos.Column)
	assert.Equal(t, 7, diags[1].EndPos.Column)
}

func TestConsecutive_TrailingRun(t *testing.T) {
	diags := checkConsecutive("5+-", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Pos.Column)
	assert.Equal(t, 4, diags[0].EndPos.Column)
}

func TestZeroDivision_PerOccurrence(t *testing.T) {
	assert.Empty(t, checkZeroDivision("1/0.5", nil))
	assert.Empty(t, checkZeroDivision("10/2", nil))

	// The safe "/0." does not excuse a later "/0".
	diags := checkZeroDivision("1/0.5+2/0", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, 8, diags[0].Pos.Column)

	diags = checkZeroDivision("1/0+2/0", nil)
	assert.Len(t, diags, 2)
}

func TestAnalyze_ConfigOverrides(t *testing.T) {
	cfg := lint.NewConfig().Disable("EX03").SetSeverity("EX04", lint.SeverityWarning)
	analyzer := lint.NewAnalyzer(cfg)

	assert.True(t, analyzer.Valid("3+-2"))

	diags := analyzer.Analyze("8/0")
	require.Len(t, diags, 1)
	assert.Equal(t, lint.SeverityWarning, diags[0].Severity)
	assert.True(t, analyzer.Valid("8/0"))
}
