package term

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/harrisonrobin/cronograma/pkg/chart"
	"github.com/harrisonrobin/cronograma/pkg/colors"
	"github.com/harrisonrobin/cronograma/pkg/model"
	"github.com/harrisonrobin/cronograma/pkg/resource"
)

const stackWidth = 40

// Resources renders the yearly chart, and the monthly and workload charts when present.
func Resources(view resource.View, palette map[string]string) string {
	sections := []string{StackedBars(chart.TitleYearly, view.Years, view.Yearly, palette, "h")}
	if view.Months != nil {
		sections = append(sections,
			StackedBars(chart.TitleMonthly, view.Months, view.Monthly, palette, "h"),
			StackedBars(chart.TitleWorkload, view.Months, view.Workload, palette, "%"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// StackedBars draws one line per category: a bar split into per-person runs followed by the
// per-person values and the category total.
func StackedBars(title string, categories []string, segments []model.StackedBarSegment, palette map[string]string, unit string) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")

	byCategory := make(map[string][]model.StackedBarSegment)
	var peak float64
	for _, s := range segments {
		byCategory[s.Category] = append(byCategory[s.Category], s)
		peak = math.Max(peak, s.Top())
	}
	if len(categories) == 0 || peak <= 0 {
		b.WriteString(StyleMuted.Render(noData))
		b.WriteString("\n")
		return b.String()
	}

	catWidth := 0
	for _, c := range categories {
		catWidth = max(catWidth, lipgloss.Width(c))
	}

	for _, cat := range categories {
		segs := byCategory[cat]
		var bar, values strings.Builder
		var total float64
		used := 0
		for _, s := range segs {
			style := personStyle(palette, s.Person)
			cells := int(math.Round(s.Top()/peak*stackWidth)) - used
			if cells > 0 {
				bar.WriteString(style.Render(strings.Repeat(barRune, cells)))
				used += cells
			}
			fmt.Fprintf(&values, " %s %d%s", style.Render(s.Person), int(s.Value), unit)
			total += s.Value
		}
		bar.WriteString(strings.Repeat(" ", stackWidth-used))

		fmt.Fprintf(&b, "%s %s%s %s\n",
			StyleLabel.Render(fit(cat, catWidth)),
			bar.String(),
			values.String(),
			StyleMuted.Render(fmt.Sprintf("= %d%s", int(total), unit)))
	}
	return b.String()
}

func personStyle(palette map[string]string, person string) lipgloss.Style {
	hex, ok := palette[person]
	if !ok {
		hex = colors.Fallback
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
