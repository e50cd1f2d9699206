package resource

import (
	"math"
	"sort"
	"strconv"

	"github.com/harrisonrobin/cronograma/pkg/model"
)

// DefaultBaselineHours is a full-time month.
const DefaultBaselineHours = 160

// Options carries the values a view depends on besides the selection.
type Options struct {
	// BaselineHours is what counts as 100% workload in a month.
	BaselineHours float64
}

// View holds the three stacked bar charts of the resource page.
// Monthly and Workload are only built when a specific year is selected.
type View struct {
	Yearly   []model.StackedBarSegment `json:"yearly"`
	Monthly  []model.StackedBarSegment `json:"monthly,omitempty"`
	Workload []model.StackedBarSegment `json:"workload,omitempty"`
	// Category order of each chart
	Years  []string `json:"years"`
	Months []string `json:"months,omitempty"`
}

// Empty reports whether there is nothing to draw.
func (v View) Empty() bool { return len(v.Yearly) == 0 && len(v.Monthly) == 0 }

// BuildView filters entries by sel and stacks hours per person.
// The person filter narrows the yearly chart only; monthly and workload show everyone.
func BuildView(entries []model.ResourceEntry, sel model.Selection, opts Options) View {
	baseline := opts.BaselineHours
	if baseline <= 0 {
		baseline = DefaultBaselineHours
	}

	filtered := filterEntries(entries, sel)

	var view View
	yearly := groupBy(filtered, func(e model.ResourceEntry) (int, bool) { return e.Year, e.Year > 0 })
	if !sel.AllPersons() {
		yearly = yearly.only(sel.Person)
	}
	view.Yearly, view.Years = stack(yearly, strconv.Itoa, identity)

	if sel.AllYears() {
		return view
	}

	monthly := groupBy(filtered, func(e model.ResourceEntry) (int, bool) { return int(e.Month), e.Month.Valid() })
	monthName := func(k int) string { return model.Month(k).String() }
	view.Monthly, view.Months = stack(monthly, monthName, identity)
	view.Workload, _ = stack(monthly, monthName, func(h float64) float64 {
		return WorkloadPercent(h, baseline)
	})
	return view
}

// WorkloadPercent is hours as a whole percentage of baseline, rounded down.
func WorkloadPercent(hours, baseline float64) float64 {
	if baseline <= 0 {
		return 0
	}
	return math.Floor(hours / baseline * 100)
}

func identity(v float64) float64 { return v }

func filterEntries(entries []model.ResourceEntry, sel model.Selection) []model.ResourceEntry {
	var out []model.ResourceEntry
	for _, e := range entries {
		if !sel.AllYears() && e.Year != sel.Year {
			continue
		}
		if !sel.AllMonths() && e.Month != sel.Month {
			continue
		}
		out = append(out, e)
	}
	return out
}

// groups maps person -> category key -> summed hours.
type groups map[string]map[int]float64

// only keeps the groups of person.
func (g groups) only(person string) groups {
	out := make(groups)
	if byKey, ok := g[person]; ok {
		out[person] = byKey
	}
	return out
}

func groupBy(entries []model.ResourceEntry, key func(model.ResourceEntry) (int, bool)) groups {
	g := make(groups)
	for _, e := range entries {
		k, ok := key(e)
		if !ok {
			continue
		}
		if g[e.Person] == nil {
			g[e.Person] = make(map[int]float64)
		}
		g[e.Person][k] += e.Hours
	}
	return g
}

// stack lays out one segment per (person, category). Persons are placed in name order and
// each segment starts at the running total of its category.
func stack(g groups, label func(int) string, value func(float64) float64) ([]model.StackedBarSegment, []string) {
	persons := make([]string, 0, len(g))
	keySet := make(map[int]bool)
	for p, byKey := range g {
		persons = append(persons, p)
		for k := range byKey {
			keySet[k] = true
		}
	}
	sort.Strings(persons)

	keys := make([]int, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	bottom := make(map[int]float64, len(keys))
	var segments []model.StackedBarSegment
	for _, p := range persons {
		for _, k := range keys {
			hours, ok := g[p][k]
			if !ok {
				continue
			}
			v := value(hours)
			segments = append(segments, model.StackedBarSegment{
				Category: label(k),
				Person:   p,
				Value:    v,
				Offset:   bottom[k],
			})
			bottom[k] += v
		}
	}

	categories := make([]string, len(keys))
	for i, k := range keys {
		categories[i] = label(k)
	}
	return segments, categories
}
