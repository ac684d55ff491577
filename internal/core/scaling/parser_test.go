package scaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIngredientsLiteralCases(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantName string
		wantQty  float64
		wantUnit string
	}{
		{"stuck unit", "600g Self Raising Flour", "Self Raising Flour", 600, "g"},
		{"spaced mixed number", "1 1/2 cups Flour", "Flour", 1.5, "cup"},
		{"size word unit", "2 large Eggs", "Eggs", 2, "large"},
		{"no quantity", "Pinch Of Salt", "Pinch Of Salt", 0, ""},
		{"glued unicode fraction", "1½ cups Sugar", "Sugar", 1.5, "cup"},
		{"standalone ascii fraction", "1/4 tsp Vanilla", "Vanilla", 0.25, "tsp"},
		{"unicode fraction only", "¾ cup Milk", "Milk", 0.75, "cup"},
		{"decimal quantity", "2.5 kg Flour", "Flour", 2.5, "kg"},
		{"quantity without unit", "3 Apples", "Apples", 3, "unit"},
		{"unknown unit stays in name", "2 handfuls Spinach", "Handfuls Spinach", 2, "unit"},
		{"plural synonym", "200 grams Butter", "Butter", 200, "g"},
		{"lowercase name gets capitalized", "100g caster sugar", "Caster Sugar", 100, "g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseIngredients(tt.line)
			require.Len(t, parsed, 1)
			assert.Equal(t, tt.wantName, parsed[0].Name)
			assert.InDelta(t, tt.wantQty, parsed[0].Quantity, 1e-9)
			assert.Equal(t, tt.wantUnit, parsed[0].Unit)
			assert.Equal(t, tt.line, parsed[0].OriginalLine)
		})
	}
}

func TestParseIngredientsDroppedLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"bare number", "42"},
		{"bare fraction", "1/2"},
		{"bare mixed number", "1 1/2"},
		{"empty line", ""},
		{"whitespace only", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ParseIngredients(tt.line))
		})
	}
}

func TestParseIngredientsMultiLine(t *testing.T) {
	text := "600g Self Raising Flour\n" +
		"\n" +
		"1 1/2 cups Sugar\n" +
		"42\n" +
		"2 large Eggs\n" +
		"Pinch Of Salt"

	parsed := ParseIngredients(text)
	require.Len(t, parsed, 4)

	assert.Equal(t, "Self Raising Flour", parsed[0].Name)
	assert.Equal(t, "Sugar", parsed[1].Name)
	assert.InDelta(t, 1.5, parsed[1].Quantity, 1e-9)
	assert.Equal(t, "Eggs", parsed[2].Name)
	assert.Equal(t, "large", parsed[2].Unit)
	assert.Equal(t, "Pinch Of Salt", parsed[3].Name)
	assert.Equal(t, "", parsed[3].Unit)
}

func TestParseIngredientsSingleWordNeverBecomesBareUnit(t *testing.T) {
	// 單字行不能被拆成「數量＋單位、沒有名稱」
	parsed := ParseIngredients("2 cups")
	require.Len(t, parsed, 1)
	assert.Equal(t, "Cups", parsed[0].Name)
	assert.InDelta(t, 2, parsed[0].Quantity, 1e-9)
	assert.Equal(t, "unit", parsed[0].Unit)
}

func TestParseIngredientsPrecedence(t *testing.T) {
	// 帶分數檢查先於純十進位，避免 "1 1/2 ..." 被拆成數量 1
	parsed := ParseIngredients("1 1/2 cups Flour")
	require.Len(t, parsed, 1)
	assert.InDelta(t, 1.5, parsed[0].Quantity, 1e-9)
	assert.Equal(t, "Flour", parsed[0].Name)
}
