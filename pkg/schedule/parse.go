// Package schedule turns a schedule table into positioned timeline rows.
package schedule

import (
	"errors"
	"fmt"

	"github.com/harrisonrobin/cronograma/pkg/config"
	"github.com/harrisonrobin/cronograma/pkg/model"
	"github.com/harrisonrobin/cronograma/pkg/sheet"
	"github.com/harrisonrobin/cronograma/pkg/util"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing required column")

// Parse converts table rows into tasks. Cells that cannot be parsed become zero values;
// only a missing required column fails the whole load.
func Parse(t *sheet.Table, cols config.Columns) ([]model.Task, error) {
	idx, err := columnIndexes(t, cols)
	if err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(t.Rows))
	for _, row := range t.Rows {
		start, _ := util.ParseDate(sheet.Cell(row, idx.start))
		finish, _ := util.ParseDate(sheet.Cell(row, idx.finish))
		hours, _ := util.ParseHours(sheet.Cell(row, idx.duration))
		level, _ := util.ParseInt(sheet.Cell(row, idx.level))

		tasks = append(tasks, model.NewTask(sheet.Cell(row, idx.name), start, finish, hours, level))
	}
	return tasks, nil
}

type indexes struct {
	name, start, finish, duration, level int
}

func columnIndexes(t *sheet.Table, cols config.Columns) (indexes, error) {
	var idx indexes
	for _, c := range []struct {
		header string
		dst    *int
	}{
		{cols.Name, &idx.name},
		{cols.Start, &idx.start},
		{cols.Finish, &idx.finish},
		{cols.Duration, &idx.duration},
		{cols.OutlineLevel, &idx.level},
	} {
		i := t.Index(c.header)
		if i < 0 {
			return indexes{}, fmt.Errorf("%w %q", ErrMissingColumn, c.header)
		}
		*c.dst = i
	}
	return idx, nil
}
