package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

type cellRef struct {
	col int // 0-based
	row int // 1-based
}

// AnnotationIndex maps cells to the text fragments of their comments.
type AnnotationIndex map[cellRef][]string

// NewAnnotationIndex indexes excelize comments by cell.
// Comments with an unparseable reference are dropped.
func NewAnnotationIndex(comments []excelize.Comment) AnnotationIndex {
	idx := make(AnnotationIndex)
	for _, c := range comments {
		ref, ok := parseCellRef(c.Cell)
		if !ok {
			continue
		}
		idx[ref] = append(idx[ref], commentText(c))
	}
	return idx
}

// Annotation joins every fragment attached to the cell with a single space.
func (a AnnotationIndex) Annotation(col, row int) string {
	fragments := a[cellRef{col: col, row: row}]
	if len(fragments) == 0 {
		return ""
	}
	return strings.TrimSpace(strings.Join(fragments, " "))
}

// commentText flattens plain text and rich text runs of one comment.
func commentText(c excelize.Comment) string {
	var b strings.Builder
	b.WriteString(c.Text)
	for _, run := range c.Paragraph {
		b.WriteString(run.Text)
	}
	return b.String()
}

// parseCellRef parses a reference like B3 or $B$3.
func parseCellRef(ref string) (cellRef, bool) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	col, row, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return cellRef{}, false
	}
	return cellRef{col: col - 1, row: row}, true
}
