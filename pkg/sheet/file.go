package sheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

const (
	EngineXLSX   = "xlsx"
	EngineXLS    = "xls"
	EngineCSV    = "csv"
	EngineGSheet = "gsheet"
)

// upper bound on rows pulled from one legacy .xls worksheet
const maxXLSRows = 100000

// FileSource reads a local spreadsheet or CSV file.
type FileSource struct {
	Path string
	// Engine forces a format; empty picks one from the file extension.
	Engine string
	// Sheet names the worksheet; empty reads the first one.
	Sheet string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path, engine, sheetName string) *FileSource {
	return &FileSource{Path: path, Engine: engine, Sheet: sheetName}
}

// ReadTable opens the file and parses it with the engine for its format.
func (s *FileSource) ReadTable(_ context.Context) (*Table, error) {
	if s.Path == "" {
		return nil, fmt.Errorf("no source file configured")
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := ReadRows(f, s.engine(), s.Sheet)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(s.Path), err)
	}
	return NewTable(raw)
}

func (s *FileSource) engine() string {
	if s.Engine != "" {
		return strings.ToLower(s.Engine)
	}
	return EngineForPath(s.Path)
}

// EngineForPath picks an engine from a file extension. Unknown extensions fall back to xlsx.
func EngineForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		return EngineXLS
	case ".csv", ".txt":
		return EngineCSV
	default:
		return EngineXLSX
	}
}

// ReadRows reads every row of one worksheet with the given engine.
func ReadRows(reader io.Reader, engine, sheetName string) ([][]string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	switch engine {
	case EngineXLS:
		return readXLS(data, sheetName)
	case EngineXLSX, "openpyxl", "":
		return readXLSX(data, sheetName)
	case EngineCSV:
		return readCSV(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}

func readXLSX(data []byte, sheetName string) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if sheetName == "" {
		sheetName = file.GetSheetName(0)
	}
	if sheetName == "" {
		return nil, ErrNoSheet
	}
	if idx, err := file.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSheet, sheetName)
	}

	// Raw values keep dates as serial numbers instead of locale formatted text.
	rows, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	return rows, nil
}

func readXLS(data []byte, sheetName string) (rows [][]string, err error) {
	// extrame/xls panics on some malformed workbooks
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("unreadable xls workbook: %v", r)
		}
	}()

	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if workbook.NumSheets() == 0 {
		return nil, ErrNoSheet
	}

	var sheet *xls.WorkSheet
	if sheetName != "" {
		sheet = findXLSSheet(workbook, sheetName)
	} else {
		sheet = workbook.GetSheet(0)
	}
	if sheet == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoSheet, sheetName)
	}
	return xlsSheetRows(sheet)
}

func findXLSSheet(workbook *xls.WorkBook, name string) *xls.WorkSheet {
	for i := 0; i < workbook.NumSheets(); i++ {
		if s := workbook.GetSheet(i); s != nil && strings.EqualFold(s.Name, name) {
			return s
		}
	}
	return nil
}

func xlsSheetRows(sheet *xls.WorkSheet) ([][]string, error) {
	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow) && i < maxXLSRows; i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		rows = append(rows, positionalCells(row.LastCol(), row.Col))
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	return rows, nil
}

// positionalCells reads columns 0..last-1 so leading blanks keep their slot.
func positionalCells(last int, col func(int) string) []string {
	if last < 0 {
		last = 0
	}
	cells := make([]string, last)
	for c := range cells {
		cells[c] = col(c)
	}
	return cells
}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	return rows, nil
}
