package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision int
		want      string
	}{
		{"integer", 14, ExpressionPrecision, "14"},
		{"negative integer", -5, ExpressionPrecision, "-5"},
		{"zero", 0, ExpressionPrecision, "0"},
		{"negative zero", math.Copysign(0, -1), ExpressionPrecision, "0"},
		{"half", 2.5, ExpressionPrecision, "2.5"},
		{"percent", 0.5, ExpressionPrecision, "0.5"},
		{"third", 1.0 / 3, ExpressionPrecision, "0.33333333"},
		{"third keypad", 1.0 / 3, KeypadPrecision, "0.3333333333"},
		{"rounds to whole", 1.000000001, ExpressionPrecision, "1"},
		{"rounds to negative zero", -0.000000001, ExpressionPrecision, "0"},
		{"float noise", 0.1 + 0.2, ExpressionPrecision, "0.3"},
		{"negative fraction", -0.25, ExpressionPrecision, "-0.25"},
		{"large whole", 1e15, ExpressionPrecision, "1000000000000000"},
		{"beyond int64", 1e20, ExpressionPrecision, "100000000000000000000"},
		{"negative precision", 0.125, -1, "0.125"},
		{"zero precision", 2.5, 0, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Result(tt.value, tt.precision))
		})
	}
}

func TestResult_NonFinite(t *testing.T) {
	assert.Equal(t, "+Inf", Result(math.Inf(1), ExpressionPrecision))
	assert.Equal(t, "-Inf", Result(math.Inf(-1), ExpressionPrecision))
	assert.Equal(t, "NaN", Result(math.NaN(), ExpressionPrecision))
}

func TestIsWhole(t *testing.T) {
	assert.True(t, IsWhole(3))
	assert.True(t, IsWhole(-3))
	assert.True(t, IsWhole(1e300))
	assert.False(t, IsWhole(3.5))
	assert.False(t, IsWhole(math.Inf(1)))
	assert.False(t, IsWhole(math.NaN()))
}

func TestResult_NoTrailingZeros(t *testing.T) {
	for _, v := range []float64{0.1, 0.75, 12.5, -3.125, 100.01} {
		got := Result(v, ExpressionPrecision)
		assert.NotRegexp(t, `\.\d*0$`, got)
		assert.NotRegexp(t, `\.$`, got)
	}
}
