package model

import "strings"

// Month is the ordinal position of a month among the canonical Spanish names.
// The zero value is an unrecognised month.
type Month int

const (
	Enero Month = iota + 1
	Febrero
	Marzo
	Abril
	Mayo
	Junio
	Julio
	Agosto
	Septiembre
	Octubre
	Noviembre
	Diciembre
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Months lists every month in canonical order.
var Months = []Month{
	Enero, Febrero, Marzo, Abril, Mayo, Junio,
	Julio, Agosto, Septiembre, Octubre, Noviembre, Diciembre,
}

// alternate spellings seen in source sheets
var monthAliases = map[string]Month{
	"setiembre": Septiembre,
}

func (m Month) String() string {
	if !m.Valid() {
		return ""
	}
	return monthNames[m-1]
}

// Valid reports whether m is one of the twelve canonical months.
func (m Month) Valid() bool {
	return m >= Enero && m <= Diciembre
}

// ParseMonth maps a month name to its canonical Month. Matching ignores case and surrounding space.
func ParseMonth(s string) (Month, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for i, name := range monthNames {
		if strings.EqualFold(name, s) {
			return Month(i + 1), true
		}
	}
	if m, ok := monthAliases[strings.ToLower(s)]; ok {
		return m, true
	}
	return 0, false
}
