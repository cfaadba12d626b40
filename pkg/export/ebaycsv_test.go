package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/filamvp/card-tracker/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func parseCSV(t *testing.T, s string) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(s)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestGenerateEbayCSV(t *testing.T) {
	t.Parallel()

	cards := []domain.Card{
		{
			ID:            "id-1",
			Title:         "Gengar Holo",
			Set:           "Fossil",
			Condition:     "LP",
			Numbering:     "005/062",
			Notes:         "light edgewear",
			Price:         ptr(40.0),
			ImageURLFront: "https://cdn.example/gengar_front.jpg",
			ImageURLBack:  "https://cdn.example/gengar_back.jpg",
		},
		{
			ID:    "id-2",
			Title: "Pikachu",
		},
	}

	out, err := GenerateEbayCSV(cards, EbayCSVOptions{USDRate: 1.10})
	require.NoError(t, err)

	records := parseCSV(t, out)
	require.Len(t, records, 3)

	header := records[0]
	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("missing column %q", name)
		return -1
	}

	// Set and Card Number columns appear because the first card has them;
	// Team is absent because no card carries one.
	assert.Contains(t, header, "Item specifics[Graded]")
	assert.Contains(t, header, "Item specifics[Set]")
	assert.Contains(t, header, "Item specifics[Card Number]")
	assert.NotContains(t, header, "Item specifics[Team]")

	gengar := records[1]
	assert.Equal(t, "Add", gengar[col("Action")])
	assert.Equal(t, "id-1", gengar[col("Custom label (SKU)")])
	assert.Equal(t, "261328", gengar[col("Category")])
	assert.Equal(t, "Gengar Holo", gengar[col("Title")])
	assert.Equal(t, "4000", gengar[col("Condition")])
	assert.Equal(t, "LP", gengar[col("Condition description")])
	assert.Equal(t, "light edgewear", gengar[col("Item description")])
	assert.Equal(t, "FixedPrice", gengar[col("Format")])
	assert.Equal(t, "GTC", gengar[col("Duration")])
	assert.Equal(t, "44.00", gengar[col("Price")])
	assert.Equal(t, "1", gengar[col("Quantity")])
	assert.Equal(t,
		"https://cdn.example/gengar_front.jpg|https://cdn.example/gengar_back.jpg",
		gengar[col("Item Photo URL")])
	assert.Equal(t, "No", gengar[col("Item specifics[Graded]")])
	assert.Equal(t, "Fossil", gengar[col("Item specifics[Set]")])
	assert.Equal(t, "005/062", gengar[col("Item specifics[Card Number]")])

	pikachu := records[2]
	// Unknown condition defaults to Near Mint; missing notes get the
	// standard description; no price without a value.
	assert.Equal(t, "2500", pikachu[col("Condition")])
	assert.Equal(t, defaultItemDescription, pikachu[col("Item description")])
	assert.Empty(t, pikachu[col("Price")])
}

func TestGenerateEbayCSV_ConditionMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		condition string
		want      string
	}{
		{"M", "1000"},
		{"NM", "2500"},
		{"EX", "4000"},
		{"VG", "5000"},
		{"GD", "5000"},
		{"LP", "4000"},
		{"SP", "4000"},
		{"MP", "5000"},
		{"HP", "7000"},
		{"Poor", "7000"},
		{"", "2500"},
		{"graded 9.5", "2500"},
	}

	for _, tt := range tests {
		t.Run("condition "+tt.condition, func(t *testing.T) {
			t.Parallel()

			out, err := GenerateEbayCSV([]domain.Card{
				{ID: "x", Title: "Card", Condition: tt.condition},
			}, EbayCSVOptions{})
			require.NoError(t, err)

			records := parseCSV(t, out)
			require.Len(t, records, 2)
			assert.Equal(t, tt.want, records[1][4])
		})
	}
}

func TestGenerateEbayCSV_NoRateLeavesPricesEmpty(t *testing.T) {
	t.Parallel()

	out, err := GenerateEbayCSV([]domain.Card{
		{ID: "x", Title: "Card", Price: ptr(12.5)},
	}, EbayCSVOptions{})
	require.NoError(t, err)

	records := parseCSV(t, out)
	assert.Empty(t, records[1][9])
}

func TestGenerateEbayCSV_Empty(t *testing.T) {
	t.Parallel()

	out, err := GenerateEbayCSV(nil, EbayCSVOptions{USDRate: 1.08})
	require.NoError(t, err)

	records := parseCSV(t, out)
	require.Len(t, records, 1)
}

func TestJSONEnvelope(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	env := JSONEnvelope(nil, now)
	assert.Equal(t, domain.ExportVersion, env.Version)
	assert.Equal(t, now, env.ExportedAt)
	assert.NotNil(t, env.Items)
	assert.Empty(t, env.Items)

	env = JSONEnvelope([]domain.Card{{ID: "a", Title: "Gengar"}}, now)
	require.Len(t, env.Items, 1)
	assert.Equal(t, "Gengar", env.Items[0].Title)
}
