package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Month
		ok    bool
	}{
		{name: "canonical", input: "Enero", want: Enero, ok: true},
		{name: "lower case", input: "diciembre", want: Diciembre, ok: true},
		{name: "padded", input: "  Mayo ", want: Mayo, ok: true},
		{name: "setiembre spelling", input: "Setiembre", want: Septiembre, ok: true},
		{name: "english", input: "January", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMonth(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthsCanonicalOrder(t *testing.T) {
	assert.Len(t, Months, 12)
	for i, m := range Months {
		assert.Equal(t, Month(i+1), m)
		assert.True(t, m.Valid())
	}
	assert.Equal(t, "Enero", Months[0].String())
	assert.Equal(t, "Septiembre", Septiembre.String())
	assert.Equal(t, "", Month(0).String())
	assert.False(t, Month(13).Valid())
}
