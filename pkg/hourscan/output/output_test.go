package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/hourscan-go/pkg/hourscan/models"
)

func sampleResults() []models.SearchResult {
	return []models.SearchResult{
		{
			File: "b.xlsx", Sheet: "Hoja1", RowIndex: 2,
			Period:    models.Period{Year: "2024", Month: "03"},
			CategoryA: map[string]string{"Taller X": "2"},
			CategoryB: map[string]string{"Taller Y": "1,5", "Revisiones pendientes liderazgo - Mentoría": "pendiente"},
		},
		{
			File: "a.xlsx", Sheet: "Hoja1", RowIndex: 1,
			Period:    models.Period{Year: "2023", Month: "11"},
			CategoryA: map[string]string{"Deporte": "4"},
			CategoryB: map[string]string{},
		},
		{
			File: "c.xlsx", Sheet: "Hoja1", RowIndex: 1,
			Period:    models.Period{Year: "2024", Month: "03"},
			CategoryA: map[string]string{"Taller X": "3"},
		},
		{
			File: "d.xlsx", Sheet: "Hoja1", RowIndex: 1,
			Period: models.Period{Year: "2022", Month: "01"},
		},
	}
}

func TestSummarize(t *testing.T) {
	summaries := Summarize(sampleResults())
	require.Len(t, summaries, 2)

	first := summaries[0]
	assert.Equal(t, "2023-11", first.Period.Key())
	assert.Equal(t, 1, first.Records)
	assert.Equal(t, 4.0, first.CategoryA.Total)
	assert.Equal(t, 0.0, first.CategoryB.Total)

	second := summaries[1]
	assert.Equal(t, "2024-03", second.Period.Key())
	assert.Equal(t, 2, second.Records)
	assert.Equal(t, []string{"b.xlsx", "c.xlsx"}, second.Files)
	assert.Equal(t, map[string]float64{"Taller X": 5}, second.CategoryA.Hours)
	assert.Equal(t, 1.5, second.CategoryB.Total)
	assert.Equal(t, map[string]int{"Revisiones pendientes liderazgo - Mentoría": 1}, second.CategoryB.Notes)
}

func TestSummarizeGroupedThousands(t *testing.T) {
	summaries := Summarize([]models.SearchResult{{
		File:      "a.xlsx",
		Period:    models.Period{Year: "2024", Month: "05"},
		CategoryA: map[string]string{"Voluntariado": "1,000", "Arte": "2,5"},
	}})
	require.Len(t, summaries, 1)
	assert.Equal(t, map[string]float64{"Voluntariado": 1000, "Arte": 2.5}, summaries[0].CategoryA.Hours)
	assert.Equal(t, 1002.5, summaries[0].CategoryA.Total)
}

func TestPeriodKeyUnknown(t *testing.T) {
	assert.Equal(t, "????-??", models.Period{}.Key())
	assert.Equal(t, "2024-??", models.Period{Year: "2024"}.Key())
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleResults()[:1], false)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "b.xlsx", decoded[0]["file"])
	assert.Equal(t, map[string]interface{}{"year": "2024", "month": "03"}, decoded[0]["period"])
	assert.Equal(t, float64(2), decoded[0]["row_index"])

	pretty, err := ToJSON(sampleResults()[:1], true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  ")
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(sampleResults())

	assert.Contains(t, out, "Period")
	assert.Contains(t, out, "Taller Y")
	assert.Contains(t, out, "Liderazgo")
	assert.Less(t, strings.Index(out, "2023-11"), strings.Index(out, "2024-03"))
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(Summarize(sampleResults()))

	assert.Contains(t, out, "2024-03")
	assert.Contains(t, out, "b.xlsx, c.xlsx")
	assert.Contains(t, out, "1.5")
}
