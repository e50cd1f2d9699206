package chart

import (
	"image"
	"time"

	"github.com/harrisonrobin/cronograma/pkg/model"
	"github.com/harrisonrobin/cronograma/pkg/schedule"
)

// TitleGantt heads the timeline image.
const TitleGantt = "Línea del tiempo de tareas nivel 1"

const (
	ganttWidth  = 1200
	ganttTop    = 48
	ganttBottom = 36
	ganttLeft   = 90
	ganttRight  = 90
	rowHeight   = 36
	barHeight   = 14
)

// Gantt draws one horizontal bar per row on the view's time axis. Bars are clipped to the
// axis; rows without both dates keep their slot but draw nothing.
func Gantt(view schedule.View) image.Image {
	if view.Empty() || view.Axis.Min.IsZero() || view.Axis.Max.IsZero() {
		return emptyChart(TitleGantt, ganttWidth, ganttTop+rowHeight*3+ganttBottom)
	}

	n := len(view.Rows)
	h := ganttTop + n*rowHeight + ganttBottom
	img := blank(ganttWidth, h)
	drawText(img, (ganttWidth-textWidth(TitleGantt))/2, 24, TitleGantt, colorText)

	x := newTimeScale(view.Axis.Min, view.Axis.Max, ganttLeft, ganttWidth-ganttRight)
	plotBottom := h - ganttBottom

	for _, tick := range monthTicks(view.Axis.Min, view.Axis.Max) {
		px := x.at(tick)
		fillRect(img, image.Rect(px, ganttTop, px+1, plotBottom), colorGrid)
		label := tick.Format("2006-01")
		drawText(img, px-textWidth(label)/2, plotBottom+18, label, colorMuted)
	}
	fillRect(img, image.Rect(ganttLeft, plotBottom, ganttWidth-ganttRight, plotBottom+1), colorMuted)

	for _, row := range view.Rows {
		drawRow(img, x, row, rowTop(n, row.RowIndex))
	}

	if view.Axis.HasToday() && x.contains(view.Axis.Today) {
		px := x.at(view.Axis.Today)
		fillRect(img, image.Rect(px, ganttTop-6, px+2, plotBottom), colorToday)
		drawText(img, px+4, ganttTop-8, "Hoy", colorToday)
	}
	return img
}

// rowTop is the y of a row's slot; the highest index sits at the top.
func rowTop(n, index int) int {
	return ganttTop + (n-1-index)*rowHeight
}

func drawRow(img *image.RGBA, x timeScale, row model.RenderRow, top int) {
	if !row.HasBar() {
		return
	}
	start, end := row.BarStart, row.BarEnd
	if end.Before(x.min) || start.After(x.max) {
		return
	}
	if start.Before(x.min) {
		start = x.min
	}
	if end.After(x.max) {
		end = x.max
	}

	x0, x1 := x.at(start), x.at(end.AddDate(0, 0, 1))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	barTop := top + rowHeight - barHeight - 4
	fillRect(img, image.Rect(x0, barTop, x1, barTop+barHeight), colorBar)

	drawText(img, x0, barTop-3, row.Label, colorText)
	baseline := barTop + barHeight - 3
	drawText(img, x0-textWidth(row.StartLabel)-4, baseline, row.StartLabel, colorMuted)
	drawText(img, x1+4, baseline, row.FinishLabel, colorMuted)
}

// timeScale maps whole days between min and max (inclusive) onto [left, right).
type timeScale struct {
	min, max    time.Time
	left, right int
	days        float64
}

func newTimeScale(min, max time.Time, left, right int) timeScale {
	days := max.Sub(min).Hours()/24 + 1
	if days < 1 {
		days = 1
	}
	return timeScale{min: min, max: max, left: left, right: right, days: days}
}

func (s timeScale) at(t time.Time) int {
	d := t.Sub(s.min).Hours() / 24
	return s.left + int(d/s.days*float64(s.right-s.left))
}

func (s timeScale) contains(t time.Time) bool {
	return !t.Before(s.min) && !t.After(s.max)
}

// monthTicks returns month starts inside [min, max], thinned to at most 12 labels.
func monthTicks(min, max time.Time) []time.Time {
	first := time.Date(min.Year(), min.Month(), 1, 0, 0, 0, 0, min.Location())
	if first.Before(min) {
		first = first.AddDate(0, 1, 0)
	}
	months := 0
	for t := first; !t.After(max); t = t.AddDate(0, 1, 0) {
		months++
	}
	step := 1
	for months/step > 12 {
		step++
	}

	var ticks []time.Time
	for t := first; !t.After(max); t = t.AddDate(0, step, 0) {
		ticks = append(ticks, t)
	}
	return ticks
}
