package output

import (
	"sort"

	"github.com/ukaji3/hourscan-go/pkg/hourscan/models"
	"github.com/ukaji3/hourscan-go/pkg/hourscan/parser"
)

// CategoryTotals aggregates the columns of one category within a period.
type CategoryTotals struct {
	// Hours sums numeric cell values per column label.
	Hours map[string]float64 `json:"hours,omitempty"`
	// Notes counts non-numeric cell values per column label.
	Notes map[string]int `json:"notes,omitempty"`
	// Total is the sum of all numeric values.
	Total float64 `json:"total"`
}

// PeriodSummary aggregates the results of one period.
type PeriodSummary struct {
	Period    models.Period  `json:"period"`
	Records   int            `json:"records"`
	Files     []string       `json:"files"`
	CategoryA CategoryTotals `json:"category_a"`
	CategoryB CategoryTotals `json:"category_b"`
}

// Summarize groups results by period, oldest first. Results whose category
// mappings are both empty carry nothing to display and are dropped.
func Summarize(results []models.SearchResult) []PeriodSummary {
	byKey := make(map[string]*PeriodSummary)
	for _, r := range results {
		if len(r.CategoryA) == 0 && len(r.CategoryB) == 0 {
			continue
		}
		key := r.Period.Key()
		s, ok := byKey[key]
		if !ok {
			s = &PeriodSummary{Period: r.Period}
			byKey[key] = s
		}
		s.Records++
		if !contains(s.Files, r.File) {
			s.Files = append(s.Files, r.File)
		}
		s.CategoryA.add(r.CategoryA)
		s.CategoryB.add(r.CategoryB)
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]PeriodSummary, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byKey[k])
	}
	return out
}

func (c *CategoryTotals) add(values map[string]string) {
	for label, value := range values {
		if n, ok := parser.ParseNumber(value); ok {
			if c.Hours == nil {
				c.Hours = make(map[string]float64)
			}
			c.Hours[label] += n
			c.Total += n
			continue
		}
		if c.Notes == nil {
			c.Notes = make(map[string]int)
		}
		c.Notes[label]++
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
