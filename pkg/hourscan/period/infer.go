// Package period infers the (year, month) a workbook belongs to from its
// directory path and file name.
package period

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/ukaji3/hourscan-go/pkg/hourscan/models"
	"golang.org/x/text/unicode/norm"
)

// filenamePatterns are tried in order; yearFirst tells which group is the year.
var filenamePatterns = []struct {
	re        *regexp.Regexp
	yearFirst bool
}{
	{regexp.MustCompile(`(\d{4})[-_](\d{2})`), true},  // 2024-01, 2024_01
	{regexp.MustCompile(`(\d{4})(\d{2})`), true},      // 202401
	{regexp.MustCompile(`(\d{2})[-_](\d{4})`), false}, // 01-2024, 01_2024
}

// Infer returns the period of the workbook at path, falling back to the
// current date when neither the path nor the name carries one.
func Infer(path, name string) models.Period {
	return InferAt(path, name, time.Now())
}

// InferAt is Infer with an explicit fallback date.
func InferAt(path, name string, now time.Time) models.Period {
	p := FromPath(path)
	if p.Year == "" || p.Month == "" {
		fromName := FromFilename(name, now)
		if p.Year == "" {
			p.Year = fromName.Year
		}
		if p.Month == "" {
			p.Month = fromName.Month
		}
	}
	return p
}

// FromPath scans path segments from deepest to shallowest. A year segment
// ends the scan after checking its neighbours for a month; before any year is
// seen, a month segment checks its neighbours for a year.
func FromPath(path string) models.Period {
	parts := splitPath(path)
	var p models.Period

	for i := len(parts) - 1; i >= 0; i-- {
		part := parts[i]

		if IsYear(part) {
			p.Year = part
			if i+1 < len(parts) {
				if m := MonthFromName(parts[i+1]); m != "" {
					p.Month = m
				}
			}
			if i-1 >= 0 && p.Month == "" {
				if m := MonthFromName(parts[i-1]); m != "" {
					p.Month = m
				}
			}
			break
		}

		if p.Year != "" {
			continue
		}
		m := MonthFromName(part)
		if m == "" {
			continue
		}
		p.Month = m
		if i+1 < len(parts) && IsYear(parts[i+1]) {
			p.Year = parts[i+1]
		}
		if i-1 >= 0 && p.Year == "" && IsYear(parts[i-1]) {
			p.Year = parts[i-1]
		}
	}

	return p
}

// FromFilename matches year/month patterns in a file name. When none match
// the period of now is returned.
func FromFilename(name string, now time.Time) models.Period {
	for _, pat := range filenamePatterns {
		m := pat.re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		if pat.yearFirst {
			return models.Period{Year: m[1], Month: m[2]}
		}
		return models.Period{Year: m[2], Month: m[1]}
	}
	return models.Period{
		Year:  now.Format("2006"),
		Month: now.Format("01"),
	}
}

func splitPath(path string) []string {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
	for i, part := range parts {
		parts[i] = norm.NFC.String(part)
	}
	return parts
}
