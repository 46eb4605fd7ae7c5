package models

// SearchResult is one data row whose identifier column matched the search.
type SearchResult struct {
	// File is the workbook file name (no path).
	File string `json:"file"`
	// FilePath is the absolute path of the workbook.
	FilePath string `json:"file_path"`
	// Sheet is the sheet name owning the row.
	Sheet string `json:"sheet"`
	// Period is the inferred (year, month) of the workbook.
	Period Period `json:"period"`
	// RowIndex is the 1-based index of the row among data rows (header excluded).
	RowIndex int `json:"row_index"`
	// CategoryA maps column labels to cell text in region A.
	CategoryA map[string]string `json:"category_a"`
	// CategoryB maps column labels to cell text in region B.
	CategoryB map[string]string `json:"category_b"`
}

// Failure records a file or sheet that contributed no results.
type Failure struct {
	// File is the absolute path of the workbook.
	File string `json:"file"`
	// Sheet is empty for file-level failures.
	Sheet string `json:"sheet,omitempty"`
	// Reason is the error text.
	Reason string `json:"reason"`
}
