package term

import (
	"errors"
	"strings"
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

func TestSchedule(t *testing.T) {
	tasks := []model.Task{
		model.NewTask("Phase A", date(2025, 1, 1), date(2025, 6, 30), 1200, 1),
		model.NewTask("Phase B", date(2025, 7, 1), date(2025, 12, 19), 300, 1),
		model.NewTask("Sin fecha", time.Time{}, time.Time{}, 0, 1),
	}
	view := schedule.BuildView(tasks, model.Selection{Year: 2025}, schedule.Options{
		PlanningYear: 2025,
		Now:          date(2025, 5, 14),
	})

	out := Schedule("Línea del tiempo", view, 40)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, "Línea del tiempo", lines[0])
	assert.Contains(t, lines[1], "2025-01-01")
	assert.True(t, strings.HasPrefix(lines[2], "Phase A"))
	assert.Contains(t, lines[2], barRune)
	assert.Contains(t, lines[2], "2025-01-01 → 2025-06-30")
	assert.True(t, strings.HasPrefix(lines[3], "Phase B"))
	assert.Contains(t, lines[4], "Hoy 2025-05-14")
}

func TestScheduleBarPosition(t *testing.T) {
	axis := schedule.Axis{Min: date(2025, 1, 1), Max: date(2025, 12, 31)}
	row := model.RenderRow{BarStart: date(2024, 11, 1), BarEnd: date(2025, 1, 31)}

	got := bar(row, axis, 12)
	assert.True(t, strings.HasPrefix(got, barRune))
	assert.Equal(t, 12, strings.Count(got, barRune)+strings.Count(got, emptyRune))

	none := bar(model.RenderRow{}, axis, 12)
	assert.Equal(t, strings.Repeat(emptyRune, 12), none)
}

func TestScheduleEmpty(t *testing.T) {
	out := Schedule("Cronograma", schedule.View{}, 0)
	assert.Contains(t, out, noData)
}

func TestFit(t *testing.T) {
	assert.Equal(t, "abc  ", fit("abc", 5))
	assert.Equal(t, "abcd…", fit("abcdefgh", 5))
	assert.Equal(t, "Año  ", fit("Año", 5))
}

func TestResources(t *testing.T) {
	entries := []model.ResourceEntry{
		{Person: "Juan", Month: model.Enero, Year: 2025, Hours: 100},
		{Person: "Maria", Month: model.Enero, Year: 2025, Hours: 60},
	}

	out := Resources(resource.BuildView(entries, model.Selection{}, resource.Options{}), nil)
	assert.Contains(t, out, "Sumatoria de Horas por Año")
	assert.Contains(t, out, "Juan 100h")
	assert.Contains(t, out, "Maria 60h")
	assert.Contains(t, out, "= 160h")
	assert.NotContains(t, out, "Sumatoria de Horas por Mes")

	out = Resources(resource.BuildView(entries, model.Selection{Year: 2025}, resource.Options{}), nil)
	assert.Contains(t, out, "Sumatoria de Horas por Mes")
	assert.Contains(t, out, "Juan 62%")
	assert.Contains(t, out, "= 99%")
}

func TestStackedBarsWidth(t *testing.T) {
	segs := []model.StackedBarSegment{
		{Category: "2025", Person: "Juan", Value: 100},
		{Category: "2025", Person: "Maria", Value: 60, Offset: 100},
		{Category: "2026", Person: "Juan", Value: 40},
	}
	out := StackedBars("t", []string{"2025", "2026"}, segs, nil, "h")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, stackWidth, strings.Count(lines[1], barRune))
	assert.Equal(t, 10, strings.Count(lines[2], barRune))
}

func TestStackedBarsEmpty(t *testing.T) {
	assert.Contains(t, StackedBars("t", nil, nil, nil, "h"), noData)
}

func TestStatusAndError(t *testing.T) {
	out := Status("Proyecto", []Field{{Name: "Última actualización", Value: "2025-01-31"}, {Name: "Fuente"}})
	assert.Contains(t, out, "Última actualización: 2025-01-31")
	assert.Contains(t, out, "Fuente:")

	assert.Equal(t, "Error al cargar el cronograma: boom\n", Error("el cronograma", errors.New("boom")))
	assert.Contains(t, Options("Años", []string{"Todos", "2025"}), "  2025")
}
