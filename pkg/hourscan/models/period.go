package models

// Period is the (year, month) a workbook is deemed to represent.
// Either field may be empty when inference fails.
type Period struct {
	// Year is a 4-digit year.
	Year string `json:"year"`
	// Month is a zero-padded 2-digit month.
	Month string `json:"month"`
}

// Key returns the period as "YYYY-MM", using "????" or "??" for unknown parts.
func (p Period) Key() string {
	year, month := p.Year, p.Month
	if year == "" {
		year = "????"
	}
	if month == "" {
		month = "??"
	}
	return year + "-" + month
}
