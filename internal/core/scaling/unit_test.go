package scaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"grams", "g"},
		{"gram", "g"},
		{"Grams", "g"},
		{"kilograms", "kg"},
		{"ounces", "oz"},
		{"pounds", "lb"},
		{"lbs", "lb"},
		{"liters", "L"},
		{"litres", "L"},
		{"millilitres", "ml"},
		{"teaspoons", "tsp"},
		{"tablespoons", "tbsp"},
		{"cups", "cup"},
		{"cup", "cup"},
		// 未知單位原樣通過
		{"handful", "handful"},
		{"unit", "unit"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeUnit(tt.token), "token %q", tt.token)
	}
}

func TestNormalizeUnitIdempotent(t *testing.T) {
	tokens := []string{
		"grams", "gram", "g", "kilograms", "kg", "ounces", "oz",
		"pounds", "lb", "lbs", "liters", "litres", "L", "l",
		"milliliters", "ml", "teaspoons", "tsp", "tablespoons", "tbsp",
		"cups", "cup", "unit", "handful", "sticks",
	}

	for _, token := range tokens {
		once := NormalizeUnit(token)
		assert.Equal(t, once, NormalizeUnit(once), "token %q", token)
	}
}

func TestIsKnownUnit(t *testing.T) {
	assert.True(t, IsKnownUnit("g"))
	assert.True(t, IsKnownUnit("grams"))
	assert.True(t, IsKnownUnit("cups"))
	assert.True(t, IsKnownUnit("unit"))
	assert.False(t, IsKnownUnit("flour"))
	assert.False(t, IsKnownUnit("pinch"))
	// 尺寸詞不在已知單位集合內，兩個集合互斥
	assert.False(t, IsKnownUnit("large"))
}

func TestIsSizeWord(t *testing.T) {
	for _, word := range []string{"large", "medium", "small", "extra-large", "xl"} {
		assert.True(t, IsSizeWord(word), "word %q", word)
	}
	assert.False(t, IsSizeWord("grams"))
	assert.False(t, IsSizeWord("huge"))
}
