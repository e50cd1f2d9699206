// Package dashboard runs one render: it loads a source, reports load failures and builds the view.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harrisonrobin/cronograma/pkg/auth"
	"github.com/harrisonrobin/cronograma/pkg/config"
	"github.com/harrisonrobin/cronograma/pkg/google"
	"github.com/harrisonrobin/cronograma/pkg/model"
	"github.com/harrisonrobin/cronograma/pkg/resource"
	"github.com/harrisonrobin/cronograma/pkg/schedule"
	"github.com/harrisonrobin/cronograma/pkg/sheet"
	"github.com/harrisonrobin/cronograma/pkg/store"
	"github.com/harrisonrobin/cronograma/pkg/util"
	"go.uber.org/zap"
)

// Opener turns a configured source into a table reader.
type Opener func(ctx context.Context, src config.Source) (sheet.Reader, error)

type Dashboard struct {
	cfg    *config.Config
	logger *zap.Logger
	store  store.Store
	open   Opener
	now    func() time.Time
}

// New creates a Dashboard. st may be nil to skip load history; flow is only needed for
// Google Sheets sources.
func New(cfg *config.Config, logger *zap.Logger, st store.Store, flow *auth.Flow) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{
		cfg:    cfg,
		logger: logger,
		store:  st,
		open:   SourceOpener(flow),
		now:    time.Now,
	}
}

// SourceOpener reads files through pkg/sheet and gsheet sources through the Sheets API.
func SourceOpener(flow *auth.Flow) Opener {
	return func(ctx context.Context, src config.Source) (sheet.Reader, error) {
		if src.Engine == sheet.EngineGSheet {
			if flow == nil {
				return nil, errors.New("google sheets source needs credentials")
			}
			if src.SpreadsheetID == "" {
				return nil, errors.New("no spreadsheet_id configured")
			}
			return google.NewClient(ctx, flow, src.SpreadsheetID, src.Range)
		}
		return sheet.NewFileSource(src.Path, src.Engine, src.Sheet), nil
	}
}

func sourceName(src config.Source) string {
	if src.Engine == sheet.EngineGSheet {
		return src.SpreadsheetID
	}
	return src.Path
}

func (d *Dashboard) readTable(ctx context.Context, src config.Source) (*sheet.Table, error) {
	r, err := d.open(ctx, src)
	if err != nil {
		return nil, err
	}
	return r.ReadTable(ctx)
}

func (d *Dashboard) record(ctx context.Context, kind string, src config.Source, rows int) {
	if d.store == nil {
		return
	}
	if err := d.store.RecordLoad(ctx, kind, sourceName(src), rows); err != nil {
		d.logger.Warn("could not record load", zap.String("kind", kind), zap.Error(err))
	}
}

// LoadTasks reads and parses the schedule source.
func (d *Dashboard) LoadTasks(ctx context.Context) ([]model.Task, error) {
	src := d.cfg.Schedule.Source
	table, err := d.readTable(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("schedule %s: %w", sourceName(src), err)
	}
	tasks, err := schedule.Parse(table, d.cfg.Schedule.Columns)
	if err != nil {
		return nil, fmt.Errorf("schedule %s: %w", sourceName(src), err)
	}

	undated := 0
	for _, t := range tasks {
		if !t.HasSpan() {
			undated++
		}
	}
	d.logger.Debug("loaded schedule",
		zap.String("source", sourceName(src)),
		zap.Int("tasks", len(tasks)),
		zap.Int("undated", undated))
	d.record(ctx, store.KindSchedule, src, len(tasks))
	return tasks, nil
}

// LoadEntries reads and parses the resource source.
func (d *Dashboard) LoadEntries(ctx context.Context) ([]model.ResourceEntry, error) {
	src := d.cfg.Resources
	table, err := d.readTable(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("resources %s: %w", sourceName(src), err)
	}
	entries, err := resource.Parse(table)
	if err != nil {
		return nil, fmt.Errorf("resources %s: %w", sourceName(src), err)
	}

	unknown := 0
	for _, e := range entries {
		if !e.Month.Valid() {
			unknown++
		}
	}
	d.logger.Debug("loaded resources",
		zap.String("source", sourceName(src)),
		zap.Int("entries", len(entries)),
		zap.Int("unknown_month", unknown))
	d.record(ctx, store.KindResources, src, len(entries))
	return entries, nil
}

// Schedule loads the schedule and builds its view. On a load failure the view is empty
// and the error is returned for the caller to show.
func (d *Dashboard) Schedule(ctx context.Context, sel model.Selection) (schedule.View, error) {
	tasks, err := d.LoadTasks(ctx)
	if err != nil {
		d.logger.Error("schedule load failed", zap.Error(err))
		return schedule.View{}, err
	}
	return schedule.BuildView(tasks, sel, schedule.Options{
		PlanningYear: d.cfg.PlanningYear,
		Now:          d.now(),
	}), nil
}

// Resources loads the resource estimates and builds their view. Failures behave as in Schedule.
func (d *Dashboard) Resources(ctx context.Context, sel model.Selection) (resource.View, error) {
	entries, err := d.LoadEntries(ctx)
	if err != nil {
		d.logger.Error("resources load failed", zap.Error(err))
		return resource.View{}, err
	}
	return resource.BuildView(entries, sel, resource.Options{
		BaselineHours: d.cfg.MonthlyBaselineHours,
	}), nil
}

// ScheduleOptions are the selector values of the schedule page.
type ScheduleOptions struct {
	Years []string `json:"years"`
	Tasks []string `json:"tasks"`
}

// ResourceOptions are the selector values of the resource page.
type ResourceOptions struct {
	Years   []string `json:"years"`
	Months  []string `json:"months"`
	Persons []string `json:"persons"`
}

// ScheduleOptions lists the years and the drill-down tasks available for year (0 for all).
func (d *Dashboard) ScheduleOptions(ctx context.Context, year int) (ScheduleOptions, error) {
	tasks, err := d.LoadTasks(ctx)
	if err != nil {
		return ScheduleOptions{Years: []string{model.AllLabel}, Tasks: []string{model.AllLabel}}, err
	}
	return ScheduleOptions{
		Years: schedule.YearOptions(tasks, d.cfg.PlanningYear),
		Tasks: schedule.TaskOptions(tasks, year),
	}, nil
}

// ResourceOptions lists years, the months of year and the people in the estimates.
func (d *Dashboard) ResourceOptions(ctx context.Context, year int) (ResourceOptions, error) {
	entries, err := d.LoadEntries(ctx)
	if err != nil {
		all := []string{model.AllLabel}
		return ResourceOptions{Years: all, Months: all, Persons: all}, err
	}
	return ResourceOptions{
		Years:   resource.YearOptions(entries, d.cfg.PlanningYear),
		Months:  resource.MonthOptions(entries, year),
		Persons: resource.PersonOptions(entries),
	}, nil
}

// LastUpdated is the configured update stamp, or the date of the most recent recorded load.
// It returns "" when neither is known.
func (d *Dashboard) LastUpdated(ctx context.Context) (string, error) {
	if d.cfg.UpdatedAt != "" {
		return d.cfg.UpdatedAt, nil
	}
	if d.store == nil {
		return "", nil
	}
	last, err := d.store.LastLoad(ctx, "")
	if errors.Is(err, store.ErrNoLoads) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return last.LoadedAt.Format(util.DateLayout), nil
}
