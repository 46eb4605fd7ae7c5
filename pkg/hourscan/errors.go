package hourscan

import (
	"errors"
	"fmt"

	"github.com/ukaji3/hourscan-go/pkg/hourscan/parser"
)

// Input errors abort a search.
var (
	// ErrInvalidInput indicates a missing root path or identifier.
	ErrInvalidInput = errors.New("root path and identifier are required")
	// ErrRootNotFound indicates the root path does not exist or is not a directory.
	ErrRootNotFound = errors.New("root folder does not exist")
	// ErrNoFiles indicates no eligible workbook was found under the root.
	ErrNoFiles = errors.New("no workbook files found in the selected folder or its subfolders")
)

// File errors make a single workbook contribute no results.
var (
	// ErrNotRegular indicates the path is not a regular file.
	ErrNotRegular = errors.New("path is not a file")
	// ErrFileEmpty indicates a zero-byte file.
	ErrFileEmpty = errors.New("file is empty")
	// ErrFileTooLarge indicates the file exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")
	// ErrNoSheets indicates a workbook without worksheets.
	ErrNoSheets = errors.New("no worksheets found")
)

// Sheet errors make a single sheet contribute no results.
var (
	// ErrNoRows indicates the sheet holds no non-blank row.
	ErrNoRows = parser.ErrNoRows
	// ErrNoHeaders indicates the header row has no label.
	ErrNoHeaders = parser.ErrNoHeaders
	// ErrNoData indicates the sheet has a header row but no data rows.
	ErrNoData = parser.ErrNoData
	// ErrNoIdentifierColumn indicates no header matched an identifier alias.
	ErrNoIdentifierColumn = errors.New("no identifier column found")
	// ErrInvertedBoundaries indicates the category B sentinel precedes category A.
	ErrInvertedBoundaries = errors.New("category B sentinel precedes category A sentinel")
)

// IsInputError reports whether err aborts a whole search.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrRootNotFound) ||
		errors.Is(err, ErrNoFiles)
}

// ScanError represents a failure while scanning a workbook or one of its sheets.
type ScanError struct {
	File  string
	Sheet string // empty for file-level failures
	Stage string // "stat", "open", "rows", "frame", "headers", "extract"
	Err   error
}

func (e *ScanError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("scan error in %s (%s): %v", e.File, e.Stage, e.Err)
	}
	return fmt.Sprintf("scan error in %s sheet %q (%s): %v", e.File, e.Sheet, e.Stage, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// NewScanError creates a new ScanError.
func NewScanError(file, sheet, stage string, err error) *ScanError {
	return &ScanError{
		File:  file,
		Sheet: sheet,
		Stage: stage,
		Err:   err,
	}
}
