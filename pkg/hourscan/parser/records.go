package parser

import (
	"strings"

	"github.com/ukaji3/hourscan-go/pkg/hourscan/models"
)

// MatchRows returns the indexes of data rows whose identifier cell, trimmed,
// equals identifier. Rows too short to hold the column never match.
func MatchRows(frame *models.SheetFrame, idCol int, identifier string) []int {
	if idCol < 0 {
		return nil
	}
	var matches []int
	for i, row := range frame.Rows {
		if idCol >= len(row) {
			continue
		}
		if strings.TrimSpace(row[idCol]) == identifier {
			matches = append(matches, i)
		}
	}
	return matches
}

// Extractor splits matched rows of one sheet into category mappings.
type Extractor struct {
	Frame       *models.SheetFrame
	Layout      models.ColumnLayout
	Rules       HeaderRules
	Annotations Annotator
}

// Extract returns the category A and B mappings of the data row at dataIdx.
// Blank cells and unlabeled columns are omitted. When two columns yield the
// same key, the later column wins.
func (e *Extractor) Extract(dataIdx int) (categoryA, categoryB map[string]string) {
	row := e.Frame.Rows[dataIdx]
	aStart, aEnd := e.Layout.RegionA(e.Frame.Width)
	bStart, bEnd := e.Layout.RegionB(e.Frame.Width)
	return e.region(row, dataIdx, aStart, aEnd), e.region(row, dataIdx, bStart, bEnd)
}

func (e *Extractor) region(row []string, dataIdx, start, end int) map[string]string {
	out := make(map[string]string)
	for col := start; col < end; col++ {
		if col >= len(e.Frame.Headers) || col >= len(row) {
			break
		}
		header := e.Frame.Headers[col]
		if header == "" || IsBlankValue(row[col]) {
			continue
		}
		out[e.key(header, col, dataIdx)] = row[col]
	}
	return out
}

// key appends the cell annotation to pending-review headers.
func (e *Extractor) key(header string, col, dataIdx int) string {
	if !e.Rules.IsPending(header) || e.Annotations == nil {
		return header
	}
	note := e.Annotations.Annotation(col, e.Frame.SheetRow(dataIdx))
	if note == "" {
		return header
	}
	return header + " - " + note
}
