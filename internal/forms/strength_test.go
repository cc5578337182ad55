package forms_test

import (
	"testing"

	"github.com/oakmere/gatehouse/internal/forms"
	"github.com/stretchr/testify/assert"
)

func TestStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		level    int
		label    string
	}{
		{"empty has no label", "", 0, ""},
		{"short is weak", "Ab1", 0, "Weak"},
		{"long but no digit is weak", "abcdefghijklmnop", 0, "Weak"},
		{"long but no letter is weak", "12345678901234567890", 0, "Weak"},
		{"exactly minimum length is weak tier one", "Abcdefg1", 1, "Weak"},
		{"ten chars with uppercase is medium", "Abcdefgh12", 2, "Medium"},
		{"special instead of uppercase is medium", "abcdefgh1!", 2, "Medium"},
		{"thirteen chars with upper and special is strong", "Abcdefghijk1!", 3, "Strong"},
		{"long without upper or special falls back to medium", "abcdefghijklmnopqrs1", 2, "Medium"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := forms.Strength(tt.password)
			assert.Equal(t, tt.level, got.Level)
			assert.Equal(t, tt.label, got.Label)
		})
	}
}

func TestStrengthHints(t *testing.T) {
	t.Run("empty password renders an empty meter", func(t *testing.T) {
		got := forms.Strength("")
		assert.Equal(t, "0%", got.WidthHint)
		assert.Empty(t, got.ColorHint)
	})

	t.Run("width grows with the level", func(t *testing.T) {
		weak := forms.Strength("Ab1")
		strong := forms.Strength("Abcdefghijk1!")
		assert.Equal(t, "25%", weak.WidthHint)
		assert.Equal(t, "100%", strong.WidthHint)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		first := forms.Strength("Abcdefgh12")
		second := forms.Strength("Abcdefgh12")
		assert.Equal(t, first, second)
	})
}
