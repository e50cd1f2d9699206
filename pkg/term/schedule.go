package term

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/harrisonrobin/cronograma/pkg/model"
	"github.com/harrisonrobin/cronograma/pkg/schedule"
	"github.com/harrisonrobin/cronograma/pkg/util"
)

const (
	labelWidth   = 28
	defaultWidth = 60
)

// Schedule draws the timeline with one text bar per row, first row on top.
// width is the number of columns given to the axis.
func Schedule(title string, view schedule.View, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	var b strings.Builder
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")

	if view.Empty() {
		b.WriteString(StyleMuted.Render(noData))
		b.WriteString("\n")
		return b.String()
	}

	axis := view.Axis
	header := fmt.Sprintf("%s%s%s",
		strings.Repeat(" ", labelWidth+1),
		util.FormatDate(axis.Min),
		pad(util.FormatDate(axis.Max), width-len(util.FormatDate(axis.Min))))
	b.WriteString(StyleMuted.Render(header))
	b.WriteString("\n")

	for _, row := range view.Rows {
		b.WriteString(StyleLabel.Render(fit(row.Label, labelWidth)))
		b.WriteString(" ")
		b.WriteString(bar(row, axis, width))
		if row.HasBar() {
			b.WriteString(" ")
			b.WriteString(StyleMuted.Render(row.StartLabel + " → " + row.FinishLabel))
		}
		b.WriteString("\n")
	}

	if axis.HasToday() {
		col := column(axis.Today, axis, width)
		marker := strings.Repeat(" ", labelWidth+1+col) + "▲ Hoy " + util.FormatDate(axis.Today)
		b.WriteString(StyleToday.Render(marker))
		b.WriteString("\n")
	}
	return b.String()
}

func bar(row model.RenderRow, axis schedule.Axis, width int) string {
	if !row.HasBar() || row.BarEnd.Before(axis.Min) || row.BarStart.After(axis.Max) {
		return StyleMuted.Render(strings.Repeat(emptyRune, width))
	}
	from := column(row.BarStart, axis, width)
	to := max(column(row.BarEnd, axis, width), from)
	return StyleMuted.Render(strings.Repeat(emptyRune, from)) +
		StyleBar.Render(strings.Repeat(barRune, to-from+1)) +
		StyleMuted.Render(strings.Repeat(emptyRune, width-to-1))
}

// column maps t to [0, width), clamping dates outside the axis.
func column(t time.Time, axis schedule.Axis, width int) int {
	if !t.After(axis.Min) {
		return 0
	}
	if !t.Before(axis.Max) {
		return width - 1
	}
	span := axis.Max.Sub(axis.Min)
	return int(float64(width-1) * float64(t.Sub(axis.Min)) / float64(span))
}

// fit truncates or pads s to exactly n cells.
func fit(s string, n int) string {
	if lipgloss.Width(s) > n {
		r := []rune(s)
		for lipgloss.Width(string(r)) > n-1 {
			r = r[:len(r)-1]
		}
		return string(r) + "…"
	}
	return s + strings.Repeat(" ", n-lipgloss.Width(s))
}

func pad(s string, n int) string {
	if n <= len(s) {
		return " " + s
	}
	return strings.Repeat(" ", n-len(s)) + s
}
