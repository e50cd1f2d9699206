package util

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/harrisonrobin/cronograma/pkg/model"
	"github.com/xuri/excelize/v2"
)

// DateLayout is how dates are labelled on charts and in output.
const DateLayout = "2006-01-02"

// largest serial Excel can represent (9999-12-31)
const maxExcelSerial = 2958465

var hoursSuffix = regexp.MustCompile(`(?i)\s*(hrs|hr|h|horas|hora)\.?$`)

// text layouts tried after spreadsheet serials, month-first like the schedule exports
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	DateLayout,
	"2006/01/02",
	"1/2/2006 15:04",
	"1/2/2006 3:04 PM",
	"1/2/2006",
	"1/2/06 15:04",
	"1/2/06 3:04 PM",
	"1/2/06",
	"01-02-06",
	"January 2, 2006 3:04 PM",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// ParseHours parses a duration cell such as "120 hrs" or "1,200 hrs" into whole hours.
// Unparseable values return false.
func ParseHours(s string) (int, bool) {
	s = strings.TrimSpace(s)
	s = hoursSuffix.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !fitsInt(f) {
		return 0, false
	}
	return int(f), true
}

// ParseInt parses an integer cell, accepting spreadsheet floats like "1.0".
func ParseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || !fitsInt(f) {
		return 0, false
	}
	return int(f), true
}

// fitsInt reports whether f converts to int without overflow. NaN and infinities never fit.
func fitsInt(f float64) bool {
	const limit = float64(math.MaxInt)
	return f >= -limit && f < limit
}

// ParseFloat parses a numeric cell, tolerating thousands separators.
func ParseFloat(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseDate parses a date cell. Spreadsheet serial numbers are converted with the
// 1900 date system; text cells are tried against the known layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f < 1 || f > maxExcelSerial {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(f, false)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// YearOptions returns the selector values for a year filter: "Todos" followed by the
// distinct non-zero years in ascending order. planningYear is always offered.
func YearOptions(years []int, planningYear int) []string {
	seen := make(map[int]bool)
	var distinct []int
	add := func(y int) {
		if y <= 0 || seen[y] {
			return
		}
		seen[y] = true
		distinct = append(distinct, y)
	}
	for _, y := range years {
		add(y)
	}
	add(planningYear)
	sort.Ints(distinct)

	options := make([]string, 0, len(distinct)+1)
	options = append(options, model.AllLabel)
	for _, y := range distinct {
		options = append(options, strconv.Itoa(y))
	}
	return options
}

// FormatDate labels a date for output; zero dates render empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
