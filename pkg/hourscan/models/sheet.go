package models

// SheetFrame is the rectangular text grid of one worksheet.
type SheetFrame struct {
	// Headers are the trimmed labels of the header row.
	Headers []string
	// Rows are the data rows, each padded to Width cells.
	Rows [][]string
	// HeaderRow is the 1-based sheet row holding the headers.
	HeaderRow int
	// Width is the number of columns of every row.
	Width int
}

// SheetRow returns the 1-based sheet row of the data row at dataIdx.
func (f *SheetFrame) SheetRow(dataIdx int) int {
	return f.HeaderRow + dataIdx + 1
}

// ColumnLayout locates the identifier column and the category boundaries of a sheet.
// A negative index means the column was not found.
type ColumnLayout struct {
	// IdentifierCol is the index of the identifier column.
	IdentifierCol int `json:"identifier_col"`
	// CategoryA is the index of the category A sentinel column.
	CategoryA int `json:"category_a"`
	// CategoryB is the index of the category B sentinel column.
	CategoryB int `json:"category_b"`
}

// HasIdentifier reports whether an identifier column was found.
func (l ColumnLayout) HasIdentifier() bool {
	return l.IdentifierCol >= 0
}

// Inverted reports whether both sentinels exist with B placed before A.
func (l ColumnLayout) Inverted() bool {
	return l.CategoryA >= 0 && l.CategoryB >= 0 && l.CategoryB < l.CategoryA
}

// RegionA returns the half-open column range [start, end) of category A.
// width is the number of columns in the sheet.
func (l ColumnLayout) RegionA(width int) (start, end int) {
	switch {
	case l.CategoryA < 0:
		return 0, 0
	case l.CategoryB >= 0:
		return l.CategoryA, l.CategoryB
	default:
		return l.CategoryA, width
	}
}

// RegionB returns the half-open column range [start, end) of category B.
func (l ColumnLayout) RegionB(width int) (start, end int) {
	if l.CategoryB < 0 {
		return 0, 0
	}
	return l.CategoryB, width
}
