package parser

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/hourscan-go/pkg/hourscan/models"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrNoRows indicates the sheet holds no non-blank row.
	ErrNoRows = errors.New("sheet has no rows")
	// ErrNoHeaders indicates the header row has no label.
	ErrNoHeaders = errors.New("sheet has no headers")
	// ErrNoData indicates the sheet has a header row but no data rows.
	ErrNoData = errors.New("sheet has no data rows")
)

// NewSheetFrame converts a sheet grid into a rectangular frame.
// Leading blank rows are dropped; the first remaining row is the header row.
// Missing cells default to the empty string.
func NewSheetFrame(rows [][]string) (*models.SheetFrame, error) {
	first := firstNonBlankRow(rows)
	if first < 0 {
		return nil, ErrNoRows
	}

	width := frameWidth(rows[first:])
	headers := pad(rows[first], width)
	hasLabel := false
	for i, h := range headers {
		headers[i] = normalizeLabel(h)
		if headers[i] != "" {
			hasLabel = true
		}
	}
	if !hasLabel {
		return nil, ErrNoHeaders
	}

	data := make([][]string, 0, len(rows)-first-1)
	for _, row := range rows[first+1:] {
		data = append(data, pad(row, width))
	}
	if len(data) == 0 {
		return nil, ErrNoData
	}

	return &models.SheetFrame{
		Headers:   headers,
		Rows:      data,
		HeaderRow: first + 1,
		Width:     width,
	}, nil
}

// firstNonBlankRow returns the index of the first row with a non-blank cell, or -1.
func firstNonBlankRow(rows [][]string) int {
	for rowIdx, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return rowIdx
			}
		}
	}
	return -1
}

// frameWidth is the length of the longest row.
func frameWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

func pad(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

func normalizeLabel(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// IsBlankValue reports whether a cell carries no hours: empty text, a
// placeholder dash or slash, or a numeric zero.
func IsBlankValue(s string) bool {
	s = strings.TrimSpace(s)
	switch s {
	case "", "-", "/":
		return true
	}
	if n, ok := ParseNumber(s); ok && n == 0 {
		return true
	}
	return false
}

// groupedRe matches comma thousands grouping as rendered by "#,##0" formats.
var groupedRe = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d+)?$`)

// ParseNumber parses cell text as a number. Integers are tried first, then
// decimals. Commas grouping digits in threes are thousands separators
// ("1,000" is 1000); any other lone comma is a decimal comma ("2,5").
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), true
	}
	if groupedRe.MatchString(s) {
		s = strings.ReplaceAll(s, ",", "")
	} else if !strings.Contains(s, ".") && strings.Count(s, ",") == 1 {
		s = strings.Replace(s, ",", ".", 1)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	return 0, false
}
