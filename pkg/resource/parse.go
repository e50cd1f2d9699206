// Package resource aggregates estimated hours per person into stacked bar segments.
package resource

import (
	"errors"
	"fmt"

	"github.com/harrisonrobin/cronograma/pkg/model"
	"github.com/harrisonrobin/cronograma/pkg/sheet"
	"github.com/harrisonrobin/cronograma/pkg/util"
)

// ErrTooFewColumns is returned when the table cannot hold Person, Month, Year and Hours.
var ErrTooFewColumns = errors.New("resource table needs four columns")

// positional layout; header names are ignored
const (
	colPerson = iota
	colMonth
	colYear
	colHours
	numColumns
)

// Parse reads the first four columns as Person, Month, Year and Hours.
// Missing or negative hours count as zero; an unknown month or year stays zero.
func Parse(t *sheet.Table) ([]model.ResourceEntry, error) {
	if t.Width() < numColumns {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewColumns, t.Width())
	}

	entries := make([]model.ResourceEntry, 0, len(t.Rows))
	for _, row := range t.Rows {
		month, _ := model.ParseMonth(sheet.Cell(row, colMonth))
		year, _ := util.ParseInt(sheet.Cell(row, colYear))
		hours, _ := util.ParseFloat(sheet.Cell(row, colHours))
		if hours < 0 {
			hours = 0
		}
		if year < 0 {
			year = 0
		}

		entries = append(entries, model.ResourceEntry{
			Person: sheet.Cell(row, colPerson),
			Month:  month,
			Year:   year,
			Hours:  hours,
		})
	}
	return entries, nil
}
