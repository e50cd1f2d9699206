package schedule

import (
	"github.com/harrisonrobin/cronograma/pkg/model"
	"github.com/harrisonrobin/cronograma/pkg/util"
)

// YearOptions lists the year selector values found in task start and finish dates.
func YearOptions(tasks []model.Task, planningYear int) []string {
	years := make([]int, 0, len(tasks)*2)
	for _, t := range tasks {
		years = append(years, t.YearStart, t.YearFinish)
	}
	return util.YearOptions(years, planningYear)
}

// TaskOptions lists the phases that can be drilled into for the selected year,
// in timeline order, after the "Todos" option.
func TaskOptions(tasks []model.Task, year int) []string {
	phases := filterTasks(tasks, model.Selection{Year: year})
	options := []string{model.AllLabel}
	seen := make(map[string]bool)
	for _, t := range phases {
		if t.Name == "" || seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		options = append(options, t.Name)
	}
	return options
}
