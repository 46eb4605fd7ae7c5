package parser

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/extrame/xls"
)

// xlsCharset is used for BIFF5 and older files; BIFF8 strings are UTF-16.
const xlsCharset = "utf-8"

// xlsWorkbook holds a legacy workbook fully read into memory.
// BIFF comments are not exposed by the reader, so sheets carry no annotations.
type xlsWorkbook struct {
	names []string
	rows  map[string][][]string
}

func openXLSFile(path string) (Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return openXLSReader(f)
}

func openXLSReader(r io.ReadSeeker) (wb Workbook, err error) {
	// The BIFF reader panics on some malformed streams.
	defer func() {
		if rec := recover(); rec != nil {
			wb, err = nil, fmt.Errorf("xls: malformed workbook: %v", rec)
		}
	}()

	book, err := xls.OpenReader(r, xlsCharset)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, errors.New("xls: no workbook stream")
	}

	out := &xlsWorkbook{rows: make(map[string][][]string)}
	for i := 0; i < book.NumSheets(); i++ {
		sheet := book.GetSheet(i)
		if sheet == nil {
			continue
		}
		if _, dup := out.rows[sheet.Name]; !dup {
			out.names = append(out.names, sheet.Name)
		}
		out.rows[sheet.Name] = readXLSRows(sheet)
	}
	return out, nil
}

func readXLSRows(sheet *xls.WorkSheet) [][]string {
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := xlsRow(sheet, i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		last := row.LastCol()
		if last < 0 {
			last = 0
		}
		cells := make([]string, last)
		for c := row.FirstCol(); c < last; c++ {
			if c >= 0 {
				cells[c] = row.Col(c)
			}
		}
		rows = append(rows, cells)
	}
	return rows
}

// xlsRow returns row i, or nil when the sheet stores no record for it.
// WorkSheet.Row dereferences missing rows, so gaps are recovered here.
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

func (w *xlsWorkbook) SheetNames() []string {
	return w.names
}

func (w *xlsWorkbook) Rows(sheet string) ([][]string, error) {
	rows, ok := w.rows[sheet]
	if !ok {
		return nil, fmt.Errorf("sheet %s does not exist", sheet)
	}
	return rows, nil
}

func (w *xlsWorkbook) Annotations(string) (Annotator, error) {
	return AnnotationIndex(nil), nil
}

func (w *xlsWorkbook) Close() error {
	return nil
}
