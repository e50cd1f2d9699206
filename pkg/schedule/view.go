package schedule

import (
	"sort"
	"time"

	"github.com/harrisonrobin/cronograma/pkg/model"
	"github.com/harrisonrobin/cronograma/pkg/util"
)

// outline levels: the top-level timeline shows phases, drill-down adds subtasks
const (
	phaseLevel   = 1
	subtaskLevel = 2
)

// Options carries the values a view depends on besides the selection.
type Options struct {
	PlanningYear int
	Now          time.Time
}

// Axis is the visible time range of the timeline.
type Axis struct {
	Min time.Time `json:"min"`
	Max time.Time `json:"max"`
	// Today is set when the selected year is the current calendar year.
	Today time.Time `json:"today,omitempty"`
}

// HasToday reports whether a today marker should be drawn.
func (a Axis) HasToday() bool { return !a.Today.IsZero() }

// View is what a timeline renderer needs.
type View struct {
	Rows []model.RenderRow `json:"rows"`
	Axis Axis              `json:"axis"`
}

// Empty reports whether there is nothing to draw.
func (v View) Empty() bool { return len(v.Rows) == 0 }

// BuildView filters, sorts and positions tasks for sel.
func BuildView(tasks []model.Task, sel model.Selection, opts Options) View {
	ordered := filterTasks(tasks, sel)
	rows := positionRows(ordered)
	return View{Rows: rows, Axis: axisFor(rows, sel, opts)}
}

// filterTasks applies the level and year filters, then the drill-down.
func filterTasks(tasks []model.Task, sel model.Selection) []model.Task {
	var base []model.Task
	for _, t := range tasks {
		if t.OutlineLevel != phaseLevel {
			continue
		}
		if !sel.AllYears() && !t.InYear(sel.Year) {
			continue
		}
		base = append(base, t)
	}
	sortByStart(base)

	if sel.AllTasks() {
		return base
	}
	phase, ok := findPhase(base, sel.TaskName)
	if !ok || !phase.HasSpan() {
		return base
	}

	var nested []model.Task
	for _, t := range tasks {
		if t.OutlineLevel != phaseLevel && t.OutlineLevel != subtaskLevel {
			continue
		}
		if t.Within(phase) {
			nested = append(nested, t)
		}
	}
	sortByStart(nested)
	return nested
}

func findPhase(tasks []model.Task, name string) (model.Task, bool) {
	for _, t := range tasks {
		if t.Name == name {
			return t, true
		}
	}
	return model.Task{}, false
}

// sortByStart orders by start date, undated tasks last, keeping source order on ties.
func sortByStart(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i].Start, tasks[j].Start
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.Before(b)
	})
}

func positionRows(tasks []model.Task) []model.RenderRow {
	rows := make([]model.RenderRow, len(tasks))
	for i, t := range tasks {
		rows[i] = model.RenderRow{
			Task:        t,
			RowIndex:    len(tasks) - 1 - i,
			Label:       t.Name,
			StartLabel:  util.FormatDate(t.Start),
			FinishLabel: util.FormatDate(t.Finish),
		}
		if t.HasSpan() {
			rows[i].BarStart = t.Start
			rows[i].BarEnd = t.Finish
		}
	}
	return rows
}

func axisFor(rows []model.RenderRow, sel model.Selection, opts Options) Axis {
	var axis Axis
	minStart, maxFinish := span(rows)

	if sel.AllYears() {
		axis.Min = time.Date(opts.PlanningYear, time.January, 1, 0, 0, 0, 0, time.UTC)
		axis.Max = maxFinish
		if axis.Max.IsZero() || axis.Max.Before(axis.Min) {
			axis.Max = time.Date(opts.PlanningYear, time.December, 31, 0, 0, 0, 0, time.UTC)
		}
		return axis
	}

	axis.Min, axis.Max = minStart, maxFinish
	if axis.Min.IsZero() || axis.Max.IsZero() {
		axis.Min = time.Date(sel.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		axis.Max = time.Date(sel.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	if !opts.Now.IsZero() && opts.Now.Year() == sel.Year {
		axis.Today = opts.Now
		// widen so the marker stays on the chart
		if axis.Today.Before(axis.Min) {
			axis.Min = axis.Today
		}
		if axis.Today.After(axis.Max) {
			axis.Max = axis.Today
		}
	}
	return axis
}

func span(rows []model.RenderRow) (minStart, maxFinish time.Time) {
	for _, r := range rows {
		if !r.HasBar() {
			continue
		}
		if minStart.IsZero() || r.BarStart.Before(minStart) {
			minStart = r.BarStart
		}
		if maxFinish.IsZero() || r.BarEnd.After(maxFinish) {
			maxFinish = r.BarEnd
		}
	}
	return minStart, maxFinish
}
