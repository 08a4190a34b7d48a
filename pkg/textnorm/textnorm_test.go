package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant-bot/pkg/textnorm"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "creme brulee", textnorm.Fold("Crème Brûlée"))
	assert.Equal(t, "latte", textnorm.Fold("LATTE"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "take away please", textnorm.Normalize("  Take-away /  please "))
}

func TestNameKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Honey Butter Fried-Chicken!", "honey butter fried chicken"},
		{"  Crème   Brûlée ", "creme brulee"},
		{"7UP", "7up"},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, textnorm.NameKey(tt.in), tt.in)
	}
}

func TestFirstNumber(t *testing.T) {
	n, ok := textnorm.FirstNumber("RM 12.50 each")
	assert.True(t, ok)
	assert.Equal(t, "12.50", n)

	_, ok = textnorm.FirstNumber("no digits")
	assert.False(t, ok)

	i, ok := textnorm.FirstInteger("table for 4.5 people")
	assert.True(t, ok)
	assert.Equal(t, "4", i)
}

func TestTokensAndHelpers(t *testing.T) {
	assert.Equal(t, []string{"iced", "latte", "2"}, textnorm.Tokens("iced latte, 2!"))
	assert.True(t, textnorm.HasLetter("a1"))
	assert.False(t, textnorm.HasLetter("12.5"))
	assert.True(t, textnorm.ContainsAny("best seller", "popular", "best"))
	assert.Equal(t, "a b", textnorm.CollapseSpaces("  a \t b "))
}
