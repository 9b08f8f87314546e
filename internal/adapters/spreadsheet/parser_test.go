package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"eventattendance/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows ...[]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParse_XLSX(t *testing.T) {
	buf := workbook(t,
		[]any{"Student ID", "First Name", "Last Name", "Email"},
		[]any{"2023-001", "Ana", "Cruz", "ana@example.com"},
		[]any{},
		[]any{"2023-002", "Ben"},
	)

	records, err := NewParser().Parse("roster.XLSX", buf)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.SheetRecord{Row: 2, Cells: map[string]string{
		"Student ID": "2023-001", "First Name": "Ana", "Last Name": "Cruz", "Email": "ana@example.com",
	}}, records[0])
	assert.Equal(t, 4, records[1].Row, "the blank row still counts")
	assert.Equal(t, "Ben", records[1].Cells["First Name"])
	assert.Equal(t, "", records[1].Cells["Last Name"])
}

func TestParse_CSV(t *testing.T) {
	in := "\ufeffStudent Number,First Name,Last Name\n 2023-009 ,Cy,Diaz\n,,\n"
	records, err := NewParser().Parse("profiles.csv", strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, " 2023-009 ", records[0].Cells["Student Number"])
	assert.Equal(t, 2, records[0].Row)
}

func TestParse_CSVRowNumbersCountBlankLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty line", "Student ID,First Name,Last Name\n2023-001,Ana,Cruz\n\n2023-002,Ben\n"},
		{"empty cells", "Student ID,First Name,Last Name\n2023-001,Ana,Cruz\n,,\n2023-002,Ben\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := NewParser().Parse("r.csv", strings.NewReader(tt.in))
			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Equal(t, 2, records[0].Row)
			assert.Equal(t, 4, records[1].Row)
		})
	}
}

func TestParse_HeaderIsCaseSensitive(t *testing.T) {
	records, err := NewParser().Parse("r.csv", strings.NewReader("student id,First Name\nx,y\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	_, ok := records[0].Cells[domain.HeaderStudentID]
	assert.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	_, err := NewParser().Parse("roster.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewParser().Parse("roster.xlsx", strings.NewReader("not a zip"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
