package chart

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harrisonrobin/cronograma/pkg/model"
	"github.com/harrisonrobin/cronograma/pkg/resource"
	"github.com/harrisonrobin/cronograma/pkg/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func yearView(rows ...model.RenderRow) schedule.View {
	return schedule.View{
		Rows: rows,
		Axis: schedule.Axis{Min: date(2025, 1, 1), Max: date(2025, 12, 31), Today: date(2025, 5, 14)},
	}
}

// ============================================================================
// Gantt
// ============================================================================

func TestGanttDrawsBar(t *testing.T) {
	img := Gantt(yearView(model.RenderRow{
		RowIndex:    0,
		BarStart:    date(2025, 1, 1),
		BarEnd:      date(2025, 6, 30),
		Label:       "Phase A",
		StartLabel:  "2025-01-01",
		FinishLabel: "2025-06-30",
	}))

	assert.Equal(t, image.Rect(0, 0, ganttWidth, ganttTop+rowHeight+ganttBottom), img.Bounds())
	assert.Equal(t, colorBar, rgbaAt(img, 100, 70))
	assert.Equal(t, colorBar, rgbaAt(img, 590, 70))
	assert.Equal(t, colorBackground, rgbaAt(img, 700, 70))
}

func TestGanttTodayMarker(t *testing.T) {
	img := Gantt(yearView(model.RenderRow{BarStart: date(2025, 1, 1), BarEnd: date(2025, 6, 30), Label: "Phase A"}))
	assert.Equal(t, colorToday, rgbaAt(img, 461, 55))

	view := yearView(model.RenderRow{BarStart: date(2025, 1, 1), BarEnd: date(2025, 6, 30), Label: "Phase A"})
	view.Axis.Today = time.Time{}
	img = Gantt(view)
	assert.NotEqual(t, colorToday, rgbaAt(img, 461, 55))
}

func TestGanttClipsToAxis(t *testing.T) {
	img := Gantt(yearView(model.RenderRow{
		BarStart:   date(2024, 11, 4),
		BarEnd:     date(2025, 1, 31),
		Label:      "Arranque",
		StartLabel: "2024-11-04",
	}))

	assert.Equal(t, colorBar, rgbaAt(img, ganttLeft+1, 70))
	assert.NotEqual(t, colorBar, rgbaAt(img, ganttLeft-5, 70))
}

func TestGanttRowOrder(t *testing.T) {
	view := yearView(
		model.RenderRow{RowIndex: 1, BarStart: date(2025, 1, 1), BarEnd: date(2025, 3, 31)},
		model.RenderRow{RowIndex: 0, BarStart: date(2025, 7, 1), BarEnd: date(2025, 12, 31)},
	)
	view.Axis.Today = time.Time{}
	img := Gantt(view)

	// first row in the top slot, second row below
	assert.Equal(t, colorBar, rgbaAt(img, 100, 70))
	assert.Equal(t, colorBar, rgbaAt(img, 1000, 70+rowHeight))
	assert.NotEqual(t, colorBar, rgbaAt(img, 1000, 70))
}

func TestGanttEmpty(t *testing.T) {
	img := Gantt(schedule.View{})
	require.NotNil(t, img)
	assert.Equal(t, ganttWidth, img.Bounds().Dx())
}

func TestMonthTicks(t *testing.T) {
	ticks := monthTicks(date(2025, 1, 1), date(2025, 12, 31))
	require.Len(t, ticks, 12)
	assert.Equal(t, date(2025, 1, 1), ticks[0])
	assert.Equal(t, date(2025, 12, 1), ticks[11])

	ticks = monthTicks(date(2024, 11, 4), date(2027, 3, 1))
	assert.LessOrEqual(t, len(ticks), 12)
	assert.Equal(t, date(2024, 12, 1), ticks[0])
}

// ============================================================================
// Stacked bars
// ============================================================================

var palette = map[string]string{"Juan": "#1f77b4", "Maria": "#ff7f0e"}

func TestStackedBars(t *testing.T) {
	view := resource.BuildView([]model.ResourceEntry{
		{Person: "Juan", Month: model.Enero, Year: 2025, Hours: 100},
		{Person: "Maria", Month: model.Enero, Year: 2025, Hours: 60},
	}, model.Selection{}, resource.Options{})

	img, err := StackedBars(TitleYearly, view.Years, view.Yearly, palette)
	require.NoError(t, err)
	b := img.Bounds()
	assert.Equal(t, barsHeight, b.Dy())

	// first legend swatch belongs to Juan
	x := b.Max.X - legendWidth + legendInset + legendSwatch/2
	assert.Equal(t, color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, rgbaAt(img, x, 64+20-4))
}

func TestStackedBarsEmpty(t *testing.T) {
	img, err := StackedBars(TitleMonthly, nil, nil, palette)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())

	img, err = StackedBars(TitleMonthly, []string{"Enero"}, []model.StackedBarSegment{{Category: "Enero", Person: "Juan"}}, palette)
	require.NoError(t, err)
	assert.NotNil(t, img)
}

func TestResourceCharts(t *testing.T) {
	entries := []model.ResourceEntry{
		{Person: "Juan", Month: model.Enero, Year: 2025, Hours: 100},
		{Person: "Maria", Month: model.Febrero, Year: 2025, Hours: 60},
	}

	images, err := ResourceCharts(resource.BuildView(entries, model.Selection{}, resource.Options{}), palette)
	require.NoError(t, err)
	assert.Len(t, images, 1)

	images, err = ResourceCharts(resource.BuildView(entries, model.Selection{Year: 2025}, resource.Options{}), palette)
	require.NoError(t, err)
	assert.Len(t, images, 3)

	joined := StackVertically(images...)
	assert.Equal(t, 3*barsHeight, joined.Bounds().Dy())
}

// ============================================================================
// Export
// ============================================================================

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	img := Gantt(yearView(model.RenderRow{BarStart: date(2025, 1, 1), BarEnd: date(2025, 6, 30)}))

	path, err := Export(dir, "linea_del_tiempo.png", img)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "linea_del_tiempo.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
