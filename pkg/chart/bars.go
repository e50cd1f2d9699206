package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"sort"

	"github.com/harrisonrobin/cronograma/pkg/colors"
	"github.com/harrisonrobin/cronograma/pkg/model"
	"github.com/harrisonrobin/cronograma/pkg/resource"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Chart titles of the resource page.
const (
	TitleYearly   = "Sumatoria de Horas por Año"
	TitleMonthly  = "Sumatoria de Horas por Mes"
	TitleWorkload = "Porcentaje de Carga Mensual"

	// LegendTitle heads the list of people next to each chart.
	LegendTitle = "Recurso"
)

const (
	barsHeight   = 480
	barWidth     = 48
	barSpacing   = 36
	legendWidth  = 220
	legendInset  = 70
	legendSwatch = 12
)

// StackedBars renders one bar per category with each person's segment stacked in order.
// palette maps people to "#rrggbb" colours; people missing from it get the fallback colour.
func StackedBars(title string, categories []string, segments []model.StackedBarSegment, palette map[string]string) (image.Image, error) {
	width := 160 + legendWidth + len(categories)*(barWidth+barSpacing)
	if width < 640 {
		width = 640
	}

	byCategory := make(map[string][]model.StackedBarSegment)
	var peak float64
	for _, s := range segments {
		byCategory[s.Category] = append(byCategory[s.Category], s)
		if s.Top() > peak {
			peak = s.Top()
		}
	}
	if len(categories) == 0 || peak <= 0 {
		return emptyChart(title, width, barsHeight), nil
	}

	bars := make([]chart.StackedBar, 0, len(categories))
	for _, cat := range categories {
		bar := chart.StackedBar{Name: cat, Width: barWidth}
		for _, s := range byCategory[cat] {
			col := hexColor(colorOf(palette, s.Person))
			bar.Values = append(bar.Values, chart.Value{
				Label: fmt.Sprintf("%d", int(s.Value)),
				Value: s.Value,
				Style: chart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1},
			})
		}
		if len(bar.Values) == 0 {
			bar.Values = []chart.Value{{Value: 0}}
		}
		bars = append(bars, bar)
	}

	sbc := chart.StackedBarChart{
		Title:      title,
		Width:      width,
		Height:     barsHeight,
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: legendWidth, Bottom: 16}},
		Bars:       bars,
	}

	var buf bytes.Buffer
	if err := sbc.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, err
	}
	return drawLegend(img, persons(segments), palette), nil
}

// ResourceCharts renders the charts present in view: yearly always, monthly and workload
// when a year is selected.
func ResourceCharts(view resource.View, palette map[string]string) ([]image.Image, error) {
	yearly, err := StackedBars(TitleYearly, view.Years, view.Yearly, palette)
	if err != nil {
		return nil, err
	}
	images := []image.Image{yearly}
	if view.Months == nil {
		return images, nil
	}

	monthly, err := StackedBars(TitleMonthly, view.Months, view.Monthly, palette)
	if err != nil {
		return nil, err
	}
	workload, err := StackedBars(TitleWorkload, view.Months, view.Workload, palette)
	if err != nil {
		return nil, err
	}
	return append(images, monthly, workload), nil
}

// StackVertically joins images top to bottom on a white canvas.
func StackVertically(images ...image.Image) image.Image {
	w, h := 0, 0
	for _, img := range images {
		b := img.Bounds()
		if b.Dx() > w {
			w = b.Dx()
		}
		h += b.Dy()
	}
	out := blank(w, h)
	y := 0
	for _, img := range images {
		b := img.Bounds()
		draw.Draw(out, image.Rect(0, y, b.Dx(), y+b.Dy()), img, b.Min, draw.Src)
		y += b.Dy()
	}
	return out
}

func colorOf(palette map[string]string, person string) string {
	if hex, ok := palette[person]; ok {
		return hex
	}
	return colors.Fallback
}

func persons(segments []model.StackedBarSegment) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range segments {
		if !seen[s.Person] {
			seen[s.Person] = true
			out = append(out, s.Person)
		}
	}
	sort.Strings(out)
	return out
}

// drawLegend lists people with their colour swatch in the right margin.
func drawLegend(img image.Image, people []string, palette map[string]string) image.Image {
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	x := b.Max.X - legendWidth + legendInset
	y := b.Min.Y + 64
	drawText(rgba, x, y, LegendTitle, colorText)
	for _, p := range people {
		y += 20
		fillRect(rgba, image.Rect(x, y-legendSwatch+2, x+legendSwatch, y+2), hexColor(colorOf(palette, p)))
		drawText(rgba, x+legendSwatch+6, y, p, colorText)
	}
	return rgba
}
