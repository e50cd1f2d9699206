package dashboard

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harrisonrobin/cronograma/pkg/config"
	"github.com/harrisonrobin/cronograma/pkg/model"
	"github.com/harrisonrobin/cronograma/pkg/resource"
	"github.com/harrisonrobin/cronograma/pkg/schedule"
	"github.com/harrisonrobin/cronograma/pkg/sheet"
	"github.com/harrisonrobin/cronograma/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const scheduleCSV = `Name,Start,Finish,Duration,Outline Level
Phase A,2025-01-01,2025-06-30,"1,200 hrs",1
Sub A1,2025-02-01,2025-03-01,40 hrs,2
Phase B,2025-07-01,2025-12-19,300 hrs,1
`

const resourcesCSV = `Funcionario,Mes,Anno,Horas
Juan,Enero,2025,100
Maria,Enero,2025,60
Maria,Febrero,2025,80
Juan,Marzo,2026,40
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func newTestDashboard(t *testing.T, st store.Store) *Dashboard {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Schedule.Path = writeFile(t, dir, "cronograma.csv", scheduleCSV)
	cfg.Resources.Path = writeFile(t, dir, "recursos.csv", resourcesCSV)

	d := New(cfg, zap.NewNop(), st, nil)
	d.now = func() time.Time { return time.Date(2025, 5, 14, 0, 0, 0, 0, time.UTC) }
	return d
}

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	st, err := store.NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

// ============================================================================
// Schedule
// ============================================================================

func TestScheduleDrillDown(t *testing.T) {
	d := newTestDashboard(t, nil)

	view, err := d.Schedule(context.Background(), model.Selection{Year: 2025, TaskName: "Phase A"})
	require.NoError(t, err)
	require.Len(t, view.Rows, 2)
	assert.Equal(t, "Phase A", view.Rows[0].Label)
	assert.Equal(t, "Sub A1", view.Rows[1].Label)
	assert.True(t, view.Axis.HasToday())
}

func TestScheduleTopLevel(t *testing.T) {
	d := newTestDashboard(t, nil)

	view, err := d.Schedule(context.Background(), model.Selection{})
	require.NoError(t, err)
	require.Len(t, view.Rows, 2)
	assert.Equal(t, 1, view.Rows[0].RowIndex)
	assert.Equal(t, 0, view.Rows[1].RowIndex)
}

func TestScheduleMissingFile(t *testing.T) {
	d := newTestDashboard(t, nil)
	d.cfg.Schedule.Path = filepath.Join(t.TempDir(), "nope.xlsx")

	view, err := d.Schedule(context.Background(), model.Selection{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.True(t, view.Empty())
}

func TestScheduleMissingColumn(t *testing.T) {
	d := newTestDashboard(t, nil)
	d.cfg.Schedule.Path = writeFile(t, t.TempDir(), "bad.csv", "Name,Start\nA,2025-01-01\n")

	view, err := d.Schedule(context.Background(), model.Selection{})
	assert.ErrorIs(t, err, schedule.ErrMissingColumn)
	assert.Empty(t, view.Rows)
}

func TestScheduleOpenerFailure(t *testing.T) {
	d := newTestDashboard(t, nil)
	boom := errors.New("boom")
	d.open = func(context.Context, config.Source) (sheet.Reader, error) { return nil, boom }

	_, err := d.Schedule(context.Background(), model.Selection{})
	assert.ErrorIs(t, err, boom)
}

func TestGoogleSourceWithoutCredentials(t *testing.T) {
	d := newTestDashboard(t, nil)
	d.cfg.Schedule.Engine = sheet.EngineGSheet
	d.cfg.Schedule.SpreadsheetID = "abc"

	_, err := d.Schedule(context.Background(), model.Selection{})
	assert.ErrorContains(t, err, "credentials")
}

// ============================================================================
// Resources
// ============================================================================

func TestResources(t *testing.T) {
	d := newTestDashboard(t, nil)

	view, err := d.Resources(context.Background(), model.Selection{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025", "2026"}, view.Years)
	assert.Nil(t, view.Monthly)

	view, err = d.Resources(context.Background(), model.Selection{Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, []string{"Enero", "Febrero"}, view.Months)
	require.NotEmpty(t, view.Workload)
}

func TestResourcesBaselineFromConfig(t *testing.T) {
	d := newTestDashboard(t, nil)
	d.cfg.MonthlyBaselineHours = 100

	view, err := d.Resources(context.Background(), model.Selection{Year: 2025, Month: model.Enero})
	require.NoError(t, err)
	require.Len(t, view.Workload, 2)
	assert.Equal(t, 100.0, view.Workload[0].Value)
	assert.Equal(t, 60.0, view.Workload[1].Value)
}

func TestResourcesTooFewColumns(t *testing.T) {
	d := newTestDashboard(t, nil)
	d.cfg.Resources.Path = writeFile(t, t.TempDir(), "bad.csv", "a,b\n1,2\n")

	view, err := d.Resources(context.Background(), model.Selection{})
	assert.ErrorIs(t, err, resource.ErrTooFewColumns)
	assert.True(t, view.Empty())
}

// ============================================================================
// Options and status
// ============================================================================

func TestOptions(t *testing.T) {
	d := newTestDashboard(t, nil)
	ctx := context.Background()

	so, err := d.ScheduleOptions(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, []string{"Todos", "2025"}, so.Years)
	assert.Equal(t, []string{"Todos", "Phase A", "Phase B"}, so.Tasks)

	ro, err := d.ResourceOptions(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, []string{"Todos", "2025", "2026"}, ro.Years)
	assert.Equal(t, []string{"Todos", "Enero", "Febrero"}, ro.Months)
	assert.Equal(t, []string{"Todos", "Juan", "Maria"}, ro.Persons)
}

func TestOptionsOnFailure(t *testing.T) {
	d := newTestDashboard(t, nil)
	d.cfg.Resources.Path = ""

	ro, err := d.ResourceOptions(context.Background(), 0)
	assert.Error(t, err)
	assert.Equal(t, []string{"Todos"}, ro.Persons)
}

func TestLastUpdated(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	d := newTestDashboard(t, st)

	stamp, err := d.LastUpdated(ctx)
	require.NoError(t, err)
	assert.Empty(t, stamp)

	_, err = d.Schedule(ctx, model.Selection{})
	require.NoError(t, err)

	last, err := st.LastLoad(ctx, store.KindSchedule)
	require.NoError(t, err)
	assert.Equal(t, 3, last.Rows)

	stamp, err = d.LastUpdated(ctx)
	require.NoError(t, err)
	assert.Equal(t, last.LoadedAt.Format("2006-01-02"), stamp)

	d.cfg.UpdatedAt = "2025-01-31"
	stamp, err = d.LastUpdated(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31", stamp)
}

func TestFailedLoadIsNotRecorded(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	d := newTestDashboard(t, st)
	d.cfg.Resources.Path = filepath.Join(t.TempDir(), "missing.csv")

	_, err := d.Resources(ctx, model.Selection{})
	require.Error(t, err)

	_, err = st.LastLoad(ctx, store.KindResources)
	assert.ErrorIs(t, err, store.ErrNoLoads)
}
