// Package parser provides workbook parsing and record extraction utilities.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat indicates the bytes are neither an OOXML nor a BIFF workbook.
var ErrUnknownFormat = errors.New("unknown workbook format")

// Format identifies a workbook container format.
type Format int

const (
	// FormatUnknown is an unrecognized container.
	FormatUnknown Format = iota
	// FormatXLSX is an OOXML (zip) workbook.
	FormatXLSX
	// FormatXLS is a legacy BIFF workbook inside an OLE2 compound file.
	FormatXLS
)

func (f Format) String() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	case FormatXLS:
		return "xls"
	default:
		return "unknown"
	}
}

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectFormat sniffs the container format from leading magic bytes.
func DetectFormat(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return FormatXLSX
	case bytes.HasPrefix(data, oleMagic):
		return FormatXLS
	default:
		return FormatUnknown
	}
}

// FormatFromName guesses the format from a file extension.
func FormatFromName(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return FormatXLSX
	case ".xls":
		return FormatXLS
	default:
		return FormatUnknown
	}
}

// Annotator looks up the note attached to a cell.
// col is the 0-based column index, row the 1-based sheet row.
type Annotator interface {
	Annotation(col, row int) string
}

// Workbook is a parsed workbook, independent of its container format.
type Workbook interface {
	// SheetNames returns sheet names in workbook order.
	SheetNames() []string
	// Rows returns the text grid of a sheet, starting at row 1 column A.
	Rows(sheet string) ([][]string, error)
	// Annotations returns the cell notes of a sheet.
	Annotations(sheet string) (Annotator, error)
	// Close releases the workbook.
	Close() error
}

// OpenResult is the outcome of opening a workbook.
type OpenResult struct {
	// Workbook is set on success.
	Workbook Workbook
	// Format is the format that parsed successfully.
	Format Format
	// Fallback reports whether the in-memory fallback produced the workbook.
	Fallback bool
	// Err is set when every strategy failed.
	Err error
}

// OK reports whether a workbook was opened.
func (r OpenResult) OK() bool {
	return r.Err == nil && r.Workbook != nil
}

// Open parses the workbook at path. The parser is first chosen by extension
// and reads the file directly; if that fails the file is read into memory and
// parsed according to its sniffed format.
func Open(path string) OpenResult {
	format := FormatFromName(path)
	wb, primaryErr := openPath(path, format)
	if primaryErr == nil {
		return OpenResult{Workbook: wb, Format: format}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return OpenResult{Err: fmt.Errorf("cannot parse workbook: %w", errors.Join(primaryErr, err))}
	}

	result := OpenBytes(data)
	if !result.OK() {
		result.Err = fmt.Errorf("cannot parse workbook: %w", errors.Join(primaryErr, result.Err))
		return result
	}
	result.Fallback = true
	return result
}

// OpenBytes parses a workbook from memory by sniffing its format.
func OpenBytes(data []byte) OpenResult {
	format := DetectFormat(data)
	var (
		wb  Workbook
		err error
	)
	switch format {
	case FormatXLSX:
		wb, err = openXLSXReader(bytes.NewReader(data))
	case FormatXLS:
		wb, err = openXLSReader(bytes.NewReader(data))
	default:
		err = ErrUnknownFormat
	}
	if err != nil {
		return OpenResult{Format: format, Err: err}
	}
	return OpenResult{Workbook: wb, Format: format}
}

func openPath(path string, format Format) (Workbook, error) {
	if format == FormatXLS {
		return openXLSFile(path)
	}
	return openXLSXFile(path)
}
