package model

// ResourceEntry is the hours one person is estimated to work in a month.
type ResourceEntry struct {
	Person string
	Month  Month
	Year   int
	Hours  float64
}
