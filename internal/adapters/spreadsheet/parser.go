// Package spreadsheet reads roster uploads (.xlsx, .csv) into header-keyed records.
package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"eventattendance/internal/domain"

	"github.com/xuri/excelize/v2"
)

type parser struct{}

// NewParser returns a SheetParser that picks the format from the file extension.
// The first row is the header; header names are matched exactly.
func NewParser() domain.SheetParser {
	return parser{}
}

func (parser) Parse(filename string, r io.Reader) ([]domain.SheetRecord, error) {
	var (
		rows []sheetRow
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(r)
	case ".csv":
		rows, err = readCSV(r)
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q", domain.ErrInvalidInput, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return toRecords(rows), nil
}

// sheetRow is a raw row with its 1-based position in the source file.
type sheetRow struct {
	num   int
	cells []string
}

func readXLSX(r io.Reader) ([]sheetRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	rows := make([]sheetRow, len(cells))
	for i, c := range cells {
		rows[i] = sheetRow{num: i + 1, cells: c}
	}
	return rows, nil
}

// readCSV numbers rows by source line, so lines the csv reader skips as empty
// still count.
func readCSV(r io.Reader) ([]sheetRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var rows []sheetRow
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, sheetRow{num: line, cells: cells})
	}
	if len(rows) > 0 && len(rows[0].cells) > 0 {
		rows[0].cells[0] = strings.TrimPrefix(rows[0].cells[0], "\ufeff")
	}
	return rows, nil
}

// toRecords keys every data row by the header row. Blank rows are left out and
// short rows leave the missing columns empty.
func toRecords(rows []sheetRow) []domain.SheetRecord {
	if len(rows) == 0 {
		return nil
	}
	header := rows[0].cells
	records := make([]domain.SheetRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blank(row.cells) {
			continue
		}
		cells := make(map[string]string, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(row.cells) {
				cells[name] = row.cells[i]
			} else {
				cells[name] = ""
			}
		}
		records = append(records, domain.SheetRecord{Row: row.num, Cells: cells})
	}
	return records
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
