package period

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// monthNames is matched in order as case-insensitive substrings; the first hit wins.
var monthNames = []struct {
	name  string
	month int
}{
	{"enero", 1}, {"jan", 1}, {"january", 1},
	{"febrero", 2}, {"feb", 2}, {"february", 2},
	{"marzo", 3}, {"mar", 3}, {"march", 3},
	{"abril", 4}, {"abr", 4}, {"apr", 4}, {"april", 4},
	{"mayo", 5}, {"may", 5},
	{"junio", 6}, {"jun", 6}, {"june", 6},
	{"julio", 7}, {"jul", 7}, {"july", 7},
	{"agosto", 8}, {"ago", 8}, {"aug", 8}, {"august", 8},
	{"septiembre", 9}, {"setiembre", 9}, {"sep", 9}, {"september", 9},
	{"octubre", 10}, {"oct", 10}, {"october", 10},
	{"noviembre", 11}, {"nov", 11}, {"november", 11},
	{"diciembre", 12}, {"dic", 12}, {"dec", 12}, {"december", 12},
}

var (
	monthPrefixRe = regexp.MustCompile(`^(\d{1,2})\.?\s`)
	bareMonthRe   = regexp.MustCompile(`^(0?[1-9]|1[0-2])$`)
	yearRe        = regexp.MustCompile(`^\d{4}$`)
)

// MonthFromName recognizes a month in a folder or file name.
// It returns the zero-padded month, or "" if the name carries none.
//
// Recognized forms, in order: a "N." or "N " numeric prefix (1-12),
// a Spanish or English month name anywhere in the name, a bare number 1-12.
func MonthFromName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))

	if m := monthPrefixRe.FindStringSubmatch(s); m != nil {
		if n, _ := strconv.Atoi(m[1]); n >= 1 && n <= 12 {
			return pad(n)
		}
	}

	for _, entry := range monthNames {
		if strings.Contains(s, entry.name) {
			return pad(entry.month)
		}
	}

	if bareMonthRe.MatchString(s) {
		n, _ := strconv.Atoi(s)
		return pad(n)
	}

	return ""
}

// IsYear reports whether s is exactly four digits in [2000, 2099].
func IsYear(s string) bool {
	if !yearRe.MatchString(s) {
		return false
	}
	n, _ := strconv.Atoi(s)
	return n >= 2000 && n <= 2099
}

func pad(month int) string {
	return fmt.Sprintf("%02d", month)
}
