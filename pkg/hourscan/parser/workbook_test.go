package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// saveWorkbook writes a single-sheet workbook and returns its path.
func saveWorkbook(t *testing.T, name string, rows [][]interface{}, comments ...excelize.Comment) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	for _, c := range comments {
		require.NoError(t, f.AddComment(sheet, c))
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		data     []byte
		expected Format
	}{
		{[]byte("PK\x03\x04rest"), FormatXLSX},
		{[]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00}, FormatXLS},
		{[]byte("<html>"), FormatUnknown},
		{nil, FormatUnknown},
	}

	for _, tt := range tests {
		if got := DetectFormat(tt.data); got != tt.expected {
			t.Errorf("DetectFormat(%q) = %v, expected %v", tt.data, got, tt.expected)
		}
	}
}

func TestFormatFromName(t *testing.T) {
	assert.Equal(t, FormatXLSX, FormatFromName("a/B.XLSX"))
	assert.Equal(t, FormatXLS, FormatFromName("legacy.xls"))
	assert.Equal(t, FormatUnknown, FormatFromName("notes.csv"))
}

func TestOpenXLSX(t *testing.T) {
	path := saveWorkbook(t, "report.xlsx", [][]interface{}{
		{"COD", "Horas"},
		{"12345", 3},
	})

	result := Open(path)
	require.True(t, result.OK(), "open failed: %v", result.Err)
	defer result.Workbook.Close()

	assert.False(t, result.Fallback)
	assert.Equal(t, FormatXLSX, result.Format)
	assert.Equal(t, []string{"Sheet1"}, result.Workbook.SheetNames())

	rows, err := result.Workbook.Rows("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"COD", "Horas"}, {"12345", "3"}}, rows)
}

func TestOpenFallsBackToSniffedFormat(t *testing.T) {
	// An OOXML workbook saved under a legacy extension.
	src := saveWorkbook(t, "source.xlsx", [][]interface{}{{"COD"}, {"1"}})
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "exported.xls")
	require.NoError(t, os.WriteFile(path, data, 0644))

	result := Open(path)
	require.True(t, result.OK(), "open failed: %v", result.Err)
	defer result.Workbook.Close()

	assert.True(t, result.Fallback)
	assert.Equal(t, FormatXLSX, result.Format)
}

func TestOpenGarbageFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a workbook"), 0644))

	result := Open(path)
	assert.False(t, result.OK())
	assert.Nil(t, result.Workbook)
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, ErrUnknownFormat)
	assert.Contains(t, result.Err.Error(), "cannot parse workbook")
}

func TestOpenBytesUnknown(t *testing.T) {
	result := OpenBytes([]byte("plain text"))
	assert.False(t, result.OK())
	assert.ErrorIs(t, result.Err, ErrUnknownFormat)
}

func TestXLSXAnnotations(t *testing.T) {
	path := saveWorkbook(t, "notes.xlsx",
		[][]interface{}{
			{"COD", "Revisiones pendientes liderazgo"},
			{"1", 2},
		},
		excelize.Comment{Cell: "B2", Author: "coord", Text: "Taller de oratoria"},
	)

	result := Open(path)
	require.True(t, result.OK(), "open failed: %v", result.Err)
	defer result.Workbook.Close()

	notes, err := result.Workbook.Annotations("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, "Taller de oratoria", notes.Annotation(1, 2))
	assert.Equal(t, "", notes.Annotation(1, 3))
	assert.Equal(t, "", notes.Annotation(0, 2))
}

func TestAnnotationIndex(t *testing.T) {
	idx := NewAnnotationIndex([]excelize.Comment{
		{Cell: "C5", Text: "  first "},
		{Cell: "$C$5", Paragraph: []excelize.RichTextRun{{Text: "sec"}, {Text: "ond  "}}},
		{Cell: "not-a-cell", Text: "dropped"},
	})

	assert.Equal(t, "first  second", idx.Annotation(2, 5))
	assert.Len(t, idx, 1)
}

func TestParseCellRef(t *testing.T) {
	tests := []struct {
		ref      string
		expected cellRef
		ok       bool
	}{
		{"A1", cellRef{col: 0, row: 1}, true},
		{"$AB$12", cellRef{col: 27, row: 12}, true},
		{"", cellRef{}, false},
		{"12", cellRef{}, false},
	}

	for _, tt := range tests {
		got, ok := parseCellRef(tt.ref)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("parseCellRef(%q) = (%v, %v), expected (%v, %v)", tt.ref, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestOpenXLS(t *testing.T) {
	result := Open(filepath.Join("testdata", "horas.xls"))
	require.True(t, result.OK(), "open failed: %v", result.Err)
	defer result.Workbook.Close()

	assert.False(t, result.Fallback)
	assert.Equal(t, FormatXLS, result.Format)
	assert.Equal(t, []string{"Marzo", "Resumen"}, result.Workbook.SheetNames())

	rows, err := result.Workbook.Rows("Marzo")
	require.NoError(t, err)
	expected := [][]string{
		{"COD", "Nombre", "Revisiones pendientes cocurriculares", "Arte", "Revisiones pendientes liderazgo", "Tutorías"},
		{"12345", "Ana", "Falta firma", "4", "-", "2.5"},
		nil,
		{"67890", "Luis", "", "3", "", "0"},
	}
	assert.Equal(t, expected, rows)

	rows, err = result.Workbook.Rows("Resumen")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Total", "7"}}, rows)

	_, err = result.Workbook.Rows("Abril")
	assert.Error(t, err)

	notes, err := result.Workbook.Annotations("Marzo")
	require.NoError(t, err)
	assert.Equal(t, "", notes.Annotation(2, 2))
}

func TestOpenXLSBytes(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "horas.xls"))
	require.NoError(t, err)

	result := OpenBytes(data)
	require.True(t, result.OK(), "open failed: %v", result.Err)
	defer result.Workbook.Close()
	assert.Equal(t, FormatXLS, result.Format)
	assert.Len(t, result.Workbook.SheetNames(), 2)
}

func TestOpenXLSTruncatedFails(t *testing.T) {
	data := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00, 0x00}
	path := filepath.Join(t.TempDir(), "cut.xls")
	require.NoError(t, os.WriteFile(path, data, 0644))

	result := Open(path)
	assert.False(t, result.OK())
	assert.Nil(t, result.Workbook)
	assert.Contains(t, result.Err.Error(), "cannot parse workbook")
}
