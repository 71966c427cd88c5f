package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Month
	}{
		{name: "nome completo", input: "March", want: 3},
		{name: "minúsculas", input: "december", want: 12},
		{name: "abreviação", input: "Jan", want: 1},
		{name: "com espaços", input: "  April ", want: 4},
		{name: "numérico", input: "7", want: 7},
		{name: "numérico fora do intervalo", input: "13", want: UnknownMonth},
		{name: "nome inválido", input: "Marchh", want: UnknownMonth},
		{name: "vazio", input: "", want: UnknownMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMonth(tt.input))
		})
	}
}

func TestMonthValidAndString(t *testing.T) {
	assert.True(t, Month(3).Valid())
	assert.Equal(t, "March", Month(3).String())
	assert.False(t, UnknownMonth.Valid())
	assert.Equal(t, "unknown", UnknownMonth.String())
}
