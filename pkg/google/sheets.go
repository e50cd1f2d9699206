// Package google reads schedule and resource tables from Google Sheets.
package google

import (
	"context"
	"fmt"
	"strconv"

	"github.com/harrisonrobin/cronograma/pkg/sheet"
	"google.golang.org/api/sheets/v4"
)

// SheetSource is a sheet.Reader backed by the Sheets v4 API.
type SheetSource struct {
	srv           *sheets.Service
	spreadsheetID string
	readRange     string
}

// NewSheetSource wraps an existing service. An empty readRange reads the first worksheet.
func NewSheetSource(srv *sheets.Service, spreadsheetID, readRange string) *SheetSource {
	return &SheetSource{srv: srv, spreadsheetID: spreadsheetID, readRange: readRange}
}

// ReadTable fetches the range as unformatted values so dates arrive as serial numbers.
func (s *SheetSource) ReadTable(ctx context.Context) (*sheet.Table, error) {
	if s.spreadsheetID == "" {
		return nil, fmt.Errorf("no spreadsheet id configured")
	}

	readRange := s.readRange
	if readRange == "" {
		title, err := s.firstSheet(ctx)
		if err != nil {
			return nil, err
		}
		readRange = title
	}

	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, readRange).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("SERIAL_NUMBER").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to read range %q: %w", readRange, err)
	}
	return sheet.NewTable(toRows(resp.Values))
}

func (s *SheetSource) firstSheet(ctx context.Context) (string, error) {
	ss, err := s.srv.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("unable to read spreadsheet %s: %w", s.spreadsheetID, err)
	}
	if len(ss.Sheets) == 0 || ss.Sheets[0].Properties == nil {
		return "", sheet.ErrNoSheet
	}
	return ss.Sheets[0].Properties.Title, nil
}

func toRows(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		row := make([]string, len(v))
		for i, cell := range v {
			row[i] = formatCell(cell)
		}
		rows = append(rows, row)
	}
	return rows
}

func formatCell(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(c)
	default:
		return fmt.Sprint(c)
	}
}
