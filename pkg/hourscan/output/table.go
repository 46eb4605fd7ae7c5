package output

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ukaji3/hourscan-go/pkg/hourscan/models"
)

// CategoryNames label the two categories in rendered tables.
var CategoryNames = [2]string{"Cocurriculares", "Liderazgo"}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// RenderTable renders one line per result column, ordered by period, file,
// sheet, row, category and label.
func RenderTable(results []models.SearchResult) string {
	sorted := make([]models.SearchResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Period.Key() != b.Period.Key() {
			return a.Period.Key() < b.Period.Key()
		}
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		if a.Sheet != b.Sheet {
			return a.Sheet < b.Sheet
		}
		return a.RowIndex < b.RowIndex
	})

	var rows [][]string
	for _, r := range sorted {
		for i, values := range []map[string]string{r.CategoryA, r.CategoryB} {
			for _, label := range sortedKeys(values) {
				rows = append(rows, []string{
					r.Period.Key(), r.File, r.Sheet, strconv.Itoa(r.RowIndex),
					CategoryNames[i], label, values[label],
				})
			}
		}
	}

	return newTable("Period", "File", "Sheet", "Row", "Category", "Column", "Value").
		Rows(rows...).
		String()
}

// RenderSummary renders per-period totals.
func RenderSummary(summaries []PeriodSummary) string {
	var rows [][]string
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Period.Key(),
			strconv.Itoa(s.Records),
			formatHours(s.CategoryA.Total),
			formatHours(s.CategoryB.Total),
			strings.Join(s.Files, ", "),
		})
	}
	return newTable("Period", "Records", CategoryNames[0], CategoryNames[1], "Files").
		Rows(rows...).
		String()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
