package model

import "time"

// Task is one row of the project schedule.
// A zero Start or Finish means the cell could not be parsed; a zero year field follows from it.
type Task struct {
	Name          string    `json:"name"`
	Start         time.Time `json:"start"`
	Finish        time.Time `json:"finish"`
	DurationHours int       `json:"duration_hours"`
	OutlineLevel  int       `json:"outline_level"`
	// Derived at load time
	YearStart  int `json:"year_start"`
	YearFinish int `json:"year_finish"`
}

// NewTask builds a Task and derives its year fields.
func NewTask(name string, start, finish time.Time, durationHours, outlineLevel int) Task {
	t := Task{
		Name:          name,
		Start:         start,
		Finish:        finish,
		DurationHours: durationHours,
		OutlineLevel:  outlineLevel,
	}
	if !start.IsZero() {
		t.YearStart = start.Year()
	}
	if !finish.IsZero() {
		t.YearFinish = finish.Year()
	}
	return t
}

// HasSpan reports whether both endpoints are known.
func (t Task) HasSpan() bool {
	return !t.Start.IsZero() && !t.Finish.IsZero()
}

// InYear reports whether the task starts or finishes in year.
func (t Task) InYear(year int) bool {
	if year == 0 {
		return false
	}
	return t.YearStart == year || t.YearFinish == year
}

// Within reports whether the task lies fully inside the span of outer.
func (t Task) Within(outer Task) bool {
	if !t.HasSpan() || !outer.HasSpan() {
		return false
	}
	return !t.Start.Before(outer.Start) && !t.Finish.After(outer.Finish)
}
