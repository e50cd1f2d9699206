package schedule

import (
	"testing"
	"time"

	"github.com/harrisonrobin/cronograma/pkg/config"
	"github.com/harrisonrobin/cronograma/pkg/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	table, err := sheet.NewTable([][]string{
		{"ID", "Name", "Duration", "Start", "Finish", "Outline Level"},
		{"1", "Phase A", "1,200 hrs", "45658", "2025-06-30", "1"},
		{"2", "Sub A1", "40 hrs", "2/1/2025", "3/1/2025", "2"},
		{"3", "Por definir", "n/a", "TBD", "", "x"},
	})
	require.NoError(t, err)

	tasks, err := Parse(table, config.DefaultColumns())
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	phase := tasks[0]
	assert.Equal(t, "Phase A", phase.Name)
	assert.Equal(t, 1200, phase.DurationHours)
	assert.Equal(t, 1, phase.OutlineLevel)
	assert.True(t, phase.Start.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, phase.Finish.Equal(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2025, phase.YearStart)
	assert.Equal(t, 2025, phase.YearFinish)

	sub := tasks[1]
	assert.Equal(t, 2, sub.OutlineLevel)
	assert.Equal(t, time.February, sub.Start.Month())

	// defects stay in the dataset as zero values
	broken := tasks[2]
	assert.Equal(t, "Por definir", broken.Name)
	assert.True(t, broken.Start.IsZero())
	assert.True(t, broken.Finish.IsZero())
	assert.Equal(t, 0, broken.YearStart)
	assert.Equal(t, 0, broken.DurationHours)
	assert.Equal(t, 0, broken.OutlineLevel)
}

func TestParseCustomColumns(t *testing.T) {
	table, err := sheet.NewTable([][]string{
		{"Nombre", "Comienzo", "Fin", "Duración", "Nivel"},
		{"Fase 1", "2025-03-01", "2025-04-01", "16 hrs", "1"},
	})
	require.NoError(t, err)

	cols := config.Columns{Name: "Nombre", Start: "Comienzo", Finish: "Fin", Duration: "Duración", OutlineLevel: "Nivel"}
	tasks, err := Parse(table, cols)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Fase 1", tasks[0].Name)
	assert.Equal(t, 16, tasks[0].DurationHours)
}

func TestParseMissingColumn(t *testing.T) {
	table, err := sheet.NewTable([][]string{
		{"Name", "Start", "Duration", "Outline Level"},
		{"Phase A", "2025-01-01", "8 hrs", "1"},
	})
	require.NoError(t, err)

	_, err = Parse(table, config.DefaultColumns())
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "Finish")
}
