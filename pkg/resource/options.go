package resource

import (
	"github.com/harrisonrobin/cronograma/pkg/model"
	"github.com/harrisonrobin/cronograma/pkg/util"
)

// YearOptions lists the year selector values found in the Year column.
func YearOptions(entries []model.ResourceEntry, planningYear int) []string {
	years := make([]int, len(entries))
	for i, e := range entries {
		years[i] = e.Year
	}
	return util.YearOptions(years, planningYear)
}

// MonthOptions lists the months with entries in year, in calendar order.
func MonthOptions(entries []model.ResourceEntry, year int) []string {
	present := make(map[model.Month]bool)
	for _, e := range entries {
		if e.Year == year && e.Month.Valid() {
			present[e.Month] = true
		}
	}
	options := []string{model.AllLabel}
	for _, m := range model.Months {
		if present[m] {
			options = append(options, m.String())
		}
	}
	return options
}

// PersonOptions lists people in order of first appearance.
func PersonOptions(entries []model.ResourceEntry) []string {
	options := []string{model.AllLabel}
	seen := make(map[string]bool)
	for _, e := range entries {
		if e.Person == "" || seen[e.Person] {
			continue
		}
		seen[e.Person] = true
		options = append(options, e.Person)
	}
	return options
}
