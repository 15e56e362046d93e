package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		ch   rune
		want Kind
	}{
		{'0', DIGIT},
		{'9', DIGIT},
		{'.', DOT},
		{' ', SPACE},
		{'+', PLUS},
		{'-', MINUS},
		{'*', STAR},
		{'/', SLASH},
		{'%', PERCENT},
		{'(', LPAREN},
		{')', RPAREN},
		{'x', ILLEGAL},
		{'×', ILLEGAL},
		{'\t', ILLEGAL},
		{-1, EOF},
	}

	for _, tt := range tests {
		t.Run(string(tt.ch), func(t *testing.T) {
			assert.Equal(t, tt.want, Lookup(tt.ch))
		})
	}
}

func TestKind_IsRunBreaking(t *testing.T) {
	for _, k := range []Kind{PLUS, MINUS, STAR, SLASH, DOT} {
		assert.True(t, k.IsRunBreaking(), k.String())
	}
	for _, k := range []Kind{DIGIT, SPACE, PERCENT, LPAREN, RPAREN, ILLEGAL} {
		assert.False(t, k.IsRunBreaking(), k.String())
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "+", PLUS.String())
	assert.Equal(t, "DIGIT", DIGIT.String())
	assert.Equal(t, "UNKNOWN", Kind(99).String())
}

func TestPositionAt(t *testing.T) {
	t.Run("ascii", func(t *testing.T) {
		pos := PositionAt("12+3", 2)
		assert.Equal(t, Position{Column: 3, Offset: 2}, pos)
	})

	t.Run("multibyte characters count once", func(t *testing.T) {
		input := "2×3"
		pos := PositionAt(input, len("2×"))
		assert.Equal(t, 3, pos.Column)
		assert.Equal(t, 3, pos.Offset)
	})

	t.Run("clamped to input", func(t *testing.T) {
		assert.Equal(t, Position{Column: 3, Offset: 2}, PositionAt("12", 10))
		assert.Equal(t, Position{Column: 1, Offset: 0}, PositionAt("12", -4))
	})
}

func TestSpan(t *testing.T) {
	s := Span{Start: Position{Column: 2, Offset: 1}, End: Position{Column: 4, Offset: 3}}
	assert.True(t, s.IsValid())
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(3))
	assert.False(t, Span{}.IsValid())
}
