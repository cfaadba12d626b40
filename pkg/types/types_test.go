package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/filamvp/card-tracker/pkg/types"
)

func TestNextStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from domain.Status
		want domain.Status
	}{
		{domain.StatusNew, domain.StatusAvailable},
		{domain.StatusAvailable, domain.StatusListed},
		{domain.StatusListed, domain.StatusSold},
		{domain.StatusSold, domain.StatusInactive},
		{domain.StatusInactive, domain.StatusAvailable},
		{domain.Status("bogus"), domain.StatusAvailable},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, domain.NextStatus(tt.from))
		})
	}
}

func TestNextStatus_Cycle(t *testing.T) {
	t.Parallel()

	// After entering the cycle, Available must recur every four steps.
	s := domain.StatusAvailable
	for i := 0; i < 4; i++ {
		s = domain.NextStatus(s)
	}
	assert.Equal(t, domain.StatusAvailable, s)
}

func TestNormalizeTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Charizard", want: "charizard"},
		{name: "trailing space", in: "charizard ", want: "charizard"},
		{name: "mixed case and padding", in: "  ChArIzArD\t", want: "charizard"},
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "   ", want: ""},
		{name: "interior spaces kept", in: "Base Set Charizard", want: "base set charizard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, domain.NormalizeTitle(tt.in))
		})
	}
}

func TestPlatformFlags(t *testing.T) {
	t.Parallel()

	var p domain.PlatformFlags
	assert.False(t, p.Any())

	p.Set(domain.PlatformEbay)
	assert.True(t, p.Any())
	assert.True(t, p.Ebay)
	assert.False(t, p.Vinted)
	assert.False(t, p.Vendora)

	p.Set(domain.PlatformVinted)
	assert.True(t, p.Vinted)
}

func TestExport_JSONShape(t *testing.T) {
	t.Parallel()

	exportedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e := domain.Export{
		Version:    domain.ExportVersion,
		ExportedAt: exportedAt,
		Items: []domain.Card{
			{ID: "c1", Title: "Pikachu", Status: domain.StatusAvailable},
		},
	}

	data, err := json.Marshal(e)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"version":1`)
	assert.Contains(t, string(data), `"exportedAt":"2025-06-01T12:00:00Z"`)
	assert.Contains(t, string(data), `"items":[`)
}

func TestImportSummary_SkippedTotal(t *testing.T) {
	t.Parallel()

	s := domain.ImportSummary{
		SkippedExisting: 2,
		SkippedBatch:    1,
		SkippedServer:   3,
	}
	assert.Equal(t, 6, s.SkippedTotal())
}
