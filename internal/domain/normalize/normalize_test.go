package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"123.456.789-00", "12345678900"},
		{"12345678900", "12345678900"},
		{" 123 456 ", "123456"},
		{"no digits", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TaxID(tt.input), "TaxID(%q)", tt.input)
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"João da Silva", "joao da silva"},
		{"  joão   DA   Silva  ", "joao da silva"},
		{"JOSÉ ANTÔNIO", "jose antonio"},
		{"Müller", "muller"},
		{"maria", "maria"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Name(tt.input), "Name(%q)", tt.input)
	}
}

func TestNameEquivalence(t *testing.T) {
	// The pairs that must collapse to the same key for exact matching.
	assert.Equal(t, Name("João da Silva"), Name("joao  DA  silva"))
	assert.Equal(t, Name("ANDRÉ"), Name("andre"))
}

func TestVehicleKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"abc-1234", "ABC1234"},
		{"ABC 1D23", "ABC1D23"},
		{"9BWZZZ377VT004251", "9BWZZZ377VT004251"},
		{" 9bw zzz ", "9BWZZZ"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VehicleKey(tt.input), "VehicleKey(%q)", tt.input)
	}
}
