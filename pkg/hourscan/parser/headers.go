package parser

import (
	"strings"

	"github.com/ukaji3/hourscan-go/pkg/hourscan/models"
	"golang.org/x/text/unicode/norm"
)

// HeaderRules holds the labels that drive header classification.
type HeaderRules struct {
	// IdentifierAliases match the identifier column by equality or substring.
	IdentifierAliases []string
	// CategoryA is the sentinel label opening region A.
	CategoryA string
	// CategoryB is the sentinel label opening region B.
	CategoryB string
	// PendingMarker marks columns whose key carries the cell annotation.
	PendingMarker string
}

// DefaultHeaderRules returns the labels used by the hours workbooks.
func DefaultHeaderRules() HeaderRules {
	return HeaderRules{
		IdentifierAliases: []string{"cod", "código", "codigo", "fv", "fff"},
		CategoryA:         "Revisiones pendientes cocurriculares",
		CategoryB:         "Revisiones pendientes liderazgo",
		PendingMarker:     "revisiones pendientes",
	}
}

// ClassifyHeaders locates the identifier column and both sentinel columns.
func ClassifyHeaders(headers []string, rules HeaderRules) models.ColumnLayout {
	return models.ColumnLayout{
		IdentifierCol: findIdentifierColumn(headers, rules.IdentifierAliases),
		CategoryA:     findExact(headers, rules.CategoryA),
		CategoryB:     findExact(headers, rules.CategoryB),
	}
}

// IsPending reports whether a header marks a pending-review column.
func (r HeaderRules) IsPending(header string) bool {
	marker := fold(r.PendingMarker)
	return marker != "" && strings.Contains(fold(header), marker)
}

func findIdentifierColumn(headers []string, aliases []string) int {
	folded := make([]string, 0, len(aliases))
	for _, a := range aliases {
		if a = fold(a); a != "" {
			folded = append(folded, a)
		}
	}

	for i, h := range headers {
		h = fold(h)
		if h == "" {
			continue
		}
		for _, alias := range folded {
			if h == alias || strings.Contains(h, alias) {
				return i
			}
		}
	}
	return -1
}

func findExact(headers []string, label string) int {
	label = fold(label)
	if label == "" {
		return -1
	}
	for i, h := range headers {
		if fold(h) == label {
			return i
		}
	}
	return -1
}

// fold lower-cases, trims and NFC-normalizes a label for comparison.
func fold(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}
