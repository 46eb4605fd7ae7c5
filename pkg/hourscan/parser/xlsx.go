package parser

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// xlsxWorkbook adapts an excelize file to Workbook.
type xlsxWorkbook struct {
	f *excelize.File
}

func openXLSXFile(path string) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &xlsxWorkbook{f: f}, nil
}

func openXLSXReader(r io.Reader) (Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	return &xlsxWorkbook{f: f}, nil
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

func (w *xlsxWorkbook) Rows(sheet string) ([][]string, error) {
	return w.f.GetRows(sheet)
}

func (w *xlsxWorkbook) Annotations(sheet string) (Annotator, error) {
	comments, err := w.f.GetComments(sheet)
	if err != nil {
		return nil, err
	}
	return NewAnnotationIndex(comments), nil
}

func (w *xlsxWorkbook) Close() error {
	return w.f.Close()
}
