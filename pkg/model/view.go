package model

import "time"

// RenderRow is a task positioned for a horizontal bar timeline.
// Row 0 is the bottom of the chart; the first task in order gets the highest index.
type RenderRow struct {
	Task        Task      `json:"task"`
	RowIndex    int       `json:"row_index"`
	BarStart    time.Time `json:"bar_start"`
	BarEnd      time.Time `json:"bar_end"`
	Label       string    `json:"label"`
	StartLabel  string    `json:"start_label"`
	FinishLabel string    `json:"finish_label"`
}

// HasBar reports whether the row has both endpoints to draw.
func (r RenderRow) HasBar() bool {
	return !r.BarStart.IsZero() && !r.BarEnd.IsZero()
}

// StackedBarSegment is one person's slice of a stacked bar.
// Offset is the running total of the segments already placed on the same category.
type StackedBarSegment struct {
	Category string  `json:"category"`
	Person   string  `json:"person"`
	Value    float64 `json:"value"`
	Offset   float64 `json:"offset"`
}

// Top is the height where the segment ends.
func (s StackedBarSegment) Top() float64 {
	return s.Offset + s.Value
}
