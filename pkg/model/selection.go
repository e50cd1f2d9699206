package model

import (
	"fmt"
	"strconv"
	"strings"
)

// AllLabel is the selector option that disables a filter.
const AllLabel = "Todos"

// Selection is the filter state for one render. The zero value of each field selects everything.
type Selection struct {
	Year     int
	TaskName string
	Person   string
	Month    Month
}

func (s Selection) AllYears() bool   { return s.Year == 0 }
func (s Selection) AllTasks() bool   { return s.TaskName == "" }
func (s Selection) AllPersons() bool { return s.Person == "" }
func (s Selection) AllMonths() bool  { return s.Month == 0 }

// IsAll reports whether a raw selector value means "no filter".
func IsAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, AllLabel) || strings.EqualFold(v, "All")
}

// ParseSelection builds a Selection from raw selector values.
func ParseSelection(year, task, person, month string) (Selection, error) {
	var sel Selection
	if !IsAll(year) {
		y, err := strconv.Atoi(strings.TrimSpace(year))
		if err != nil || y <= 0 {
			return Selection{}, fmt.Errorf("invalid year %q", year)
		}
		sel.Year = y
	}
	if !IsAll(task) {
		sel.TaskName = strings.TrimSpace(task)
	}
	if !IsAll(person) {
		sel.Person = strings.TrimSpace(person)
	}
	if !IsAll(month) {
		m, ok := ParseMonth(month)
		if !ok {
			return Selection{}, fmt.Errorf("invalid month %q", month)
		}
		sel.Month = m
	}
	return sel, nil
}
