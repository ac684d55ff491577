package scaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFraction(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		value    float64
		consumed int
		ok       bool
	}{
		{"ascii quarter", "1/4", 0.25, 3, true},
		{"ascii half with tail", "1/2 cups Flour", 0.5, 3, true},
		{"spaced mixed number", "1 1/2 cups", 1.5, 5, true},
		{"glued unicode mixed", "1½", 1.5, 3, true},
		{"unicode three quarters", "¾", 0.75, 2, true},
		{"unicode third", "⅓ cup", 1.0 / 3.0, 3, true},
		{"unicode eighth", "⅛", 0.125, 3, true},
		{"mixed with unicode after space", "2 ½", 2.5, 4, true},
		{"zero denominator", "1/0", 0, 0, false},
		{"zero denominator mixed", "1 3/0", 0, 0, false},
		{"bare integer", "600", 0, 0, false},
		{"bare integer with unit", "600g", 0, 0, false},
		{"decimal is not a fraction", "1.5", 0, 0, false},
		{"empty", "", 0, 0, false},
		{"plain text", "Flour", 0, 0, false},
		{"slash without denominator", "1/", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, consumed, ok := ParseFraction(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.value, value, 1e-9)
				assert.Equal(t, tt.consumed, consumed)
			}
		})
	}
}

func TestParseFractionAllUnicodeGlyphs(t *testing.T) {
	expected := map[string]float64{
		"½": 0.5, "⅓": 1.0 / 3.0, "⅔": 2.0 / 3.0,
		"¼": 0.25, "¾": 0.75,
		"⅕": 0.2, "⅖": 0.4, "⅗": 0.6, "⅘": 0.8,
		"⅙": 1.0 / 6.0, "⅚": 5.0 / 6.0,
		"⅛": 0.125, "⅜": 0.375, "⅝": 0.625, "⅞": 0.875,
	}

	for glyph, want := range expected {
		value, consumed, ok := ParseFraction(glyph)
		require.True(t, ok, "glyph %q should parse", glyph)
		assert.InDelta(t, want, value, 1e-9, "glyph %q", glyph)
		assert.Equal(t, len(glyph), consumed, "glyph %q", glyph)
	}
}
