package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"USA", "Estados Unidos"},
		{"u.s.a.", "Estados Unidos"},
		{"EE.UU.", "Estados Unidos"},
		{"United Kingdom", "Reino Unido"},
		{"england", "Reino Unido"},
		{"MEXICO", "México"},
		{"México", "México"},
		{"Perú", "Perú"},
		{"peru", "Perú"},
		{"Viet Nam", "Vietnam"},
		{"", "Chile"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Resolve(tt.in), "Resolve(%q)", tt.in)
	}
}

func TestResolveDesconhecido(t *testing.T) {
	// Sem correspondência nas tabelas, cai em PrettyCap do texto bruto.
	assert.Equal(t, "Wakanda", Resolve("wakanda"))
	assert.Equal(t, "Terra Media", Resolve("terra media"))
}
