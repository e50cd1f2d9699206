// Package sheet reads tabular sources (spreadsheets and CSV files) into a Table.
package sheet

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNoSheet       = errors.New("no worksheet found")
	ErrEmptySheet    = errors.New("worksheet is empty")
	ErrUnknownEngine = errors.New("unknown source engine")
)

// Reader produces a Table from some source.
type Reader interface {
	ReadTable(ctx context.Context) (*Table, error)
}

// Table is a header row followed by data rows. Rows may be ragged.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable splits raw rows into header and data, dropping fully blank rows.
func NewTable(raw [][]string) (*Table, error) {
	var rows [][]string
	for _, r := range raw {
		if !blank(r) {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	return &Table{Header: header, Rows: rows[1:]}, nil
}

// Index returns the position of the named column, or -1. Names match ignoring case.
func (t *Table) Index(name string) int {
	for i, h := range t.Header {
		if strings.EqualFold(h, strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

// Width is the number of columns in the widest row, header included.
func (t *Table) Width() int {
	w := len(t.Header)
	for _, r := range t.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// Cell returns the trimmed value at column i of row, or "" when the row is short.
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
