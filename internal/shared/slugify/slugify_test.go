package slugify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "Corte A", "corte-a"},
		{"accented name", "Prensa Hidráulica 40t", "prensa-hidraulica-40t"},
		{"cedilla and tilde", "Máquina de Tração Aço", "maquina-de-tracao-aco"},
		{"punctuation collapses", "Corte  A / B -- C", "corte-a-b-c"},
		{"leading and trailing junk", "  ***Corte*** ", "corte"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slug(tt.input))
		})
	}
}

func TestSlugStable(t *testing.T) {
	first := Slug("Bater Fumo Elétrica")
	second := Slug("Bater Fumo Elétrica")
	assert.Equal(t, first, second)
	assert.Equal(t, "bater-fumo-eletrica", first)
}
