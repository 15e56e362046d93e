package lint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcalc/pkg/token"
)

// registerTestRules installs two synthetic rules and clears the registry afterwards.
func registerTestRules(t *testing.T) {
	t.Helper()
	Clear()
	t.Cleanup(Clear)

	Register(RuleDef{
		ID:          "TS02",
		Name:        "test.letter-x",
		Group:       "test",
		Description: "Reports every x.",
		Severity:    SeverityError,
		Check: func(expr string, _ map[string]any) []Diagnostic {
			var out []Diagnostic
			for i, ch := range expr {
				if ch == 'x' {
					out = append(out, Diagnostic{Message: "x found", Pos: token.PositionAt(expr, i)})
				}
			}
			return out
		},
	})
	Register(RuleDef{
		ID:          "TS01",
		Name:        "test.too-long",
		Group:       "length",
		Description: "Reports expressions longer than max_len.",
		Severity:    SeverityWarning,
		Check: func(expr string, opts map[string]any) []Diagnostic {
			limit := 3
			if v, ok := opts["max_len"].(int); ok {
				limit = v
			}
			if len(expr) <= limit {
				return nil
			}
			return []Diagnostic{{Message: "too long", Pos: token.PositionAt(expr, limit)}}
		},
	})
}

func TestRegistry(t *testing.T) {
	registerTestRules(t)

	assert.Equal(t, 2, Count())

	all := GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "TS01", all[0].ID, "rules should be ordered by ID")
	assert.Equal(t, "TS02", all[1].ID)

	rule, ok := GetByID("TS02")
	require.True(t, ok)
	assert.Equal(t, "test.letter-x", rule.Name)

	_, ok = GetByID("NOPE")
	assert.False(t, ok)

	byGroup := GetByGroup("length")
	require.Len(t, byGroup, 1)
	assert.Equal(t, "TS01", byGroup[0].ID)
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	registerTestRules(t)

	Register(RuleDef{ID: "TS01", Name: "replaced", Check: func(string, map[string]any) []Diagnostic { return nil }})
	assert.Equal(t, 2, Count())

	rule, ok := GetByID("TS01")
	require.True(t, ok)
	assert.Equal(t, "replaced", rule.Name)
}

func TestAnalyzer_Analyze(t *testing.T) {
	registerTestRules(t)

	diags := NewAnalyzer(nil).Analyze("1x2x")
	require.Len(t, diags, 3)

	// Ordered by position: x at offset 1, x at offset 3 (TS01 and TS02 tie, TS01 first).
	assert.Equal(t, "TS02", diags[0].RuleID)
	assert.Equal(t, 2, diags[0].Pos.Column)
	assert.Equal(t, "TS01", diags[1].RuleID)
	assert.Equal(t, SeverityWarning, diags[1].Severity)
	assert.Equal(t, "TS02", diags[2].RuleID)
	assert.Equal(t, SeverityError, diags[2].Severity)

	assert.True(t, HasErrors(diags))
}

func TestAnalyzer_Config(t *testing.T) {
	registerTestRules(t)

	t.Run("disabled rule is skipped", func(t *testing.T) {
		cfg := NewConfig().Disable("TS02")
		diags := NewAnalyzer(cfg).Analyze("xxxx")
		require.Len(t, diags, 1)
		assert.Equal(t, "TS01", diags[0].RuleID)
		assert.False(t, HasErrors(diags))
		assert.True(t, NewAnalyzer(cfg).Valid("xxxx"))
	})

	t.Run("severity override", func(t *testing.T) {
		cfg := NewConfig().SetSeverity("TS02", SeverityHint)
		diags := NewAnalyzer(cfg).Analyze("x")
		require.Len(t, diags, 1)
		assert.Equal(t, SeverityHint, diags[0].Severity)
	})

	t.Run("rule options", func(t *testing.T) {
		cfg := NewConfig().SetRuleOption("TS01", "max_len", 10)
		assert.Empty(t, NewAnalyzer(cfg).Analyze("12345"))
		assert.Len(t, NewAnalyzer(nil).Analyze("12345"), 1)
	})

	t.Run("nil config is permissive", func(t *testing.T) {
		var cfg *Config
		assert.False(t, cfg.IsDisabled("TS01"))
		assert.Equal(t, SeverityInfo, cfg.GetSeverity("TS01", SeverityInfo))
		assert.Nil(t, cfg.GetRuleOptions("TS01"))
	})
}

func TestRuleDef_Info(t *testing.T) {
	def := RuleDef{
		ID:          "TS09",
		Name:        "test.info",
		Group:       "test",
		Description: "desc",
		Severity:    SeverityInfo,
		Rationale:   "why",
		BadExample:  "1++1",
		GoodExample: "1+1",
		Fix:         "remove it",
	}

	info := def.Info()
	assert.Equal(t, "TS09", info.ID)
	assert.Equal(t, SeverityInfo, info.DefaultSeverity)
	assert.Equal(t, "1++1", info.BadExample)
	assert.Equal(t, "remove it", info.Fix)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{RuleID: "EX03", Severity: SeverityError, Message: "consecutive operators", Pos: token.Position{Column: 2, Offset: 1}}
	s := d.String()
	assert.True(t, strings.HasPrefix(s, "EX03 error at column 2"))
}
