package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCardQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         CardQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in dataSQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:  "empty query uses defaults",
			query: CardQuery{},
			wantDataHas: []string{
				"FROM cards",
				"ORDER BY created_at DESC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM cards",
			wantArgs:      nil,
		},
		{
			name: "status filter",
			query: CardQuery{
				Status: ptr("Available"),
			},
			wantDataHas: []string{
				"WHERE status = $1",
				"LIMIT 50",
			},
			wantCountSQL: "SELECT COUNT(*) FROM cards WHERE status = $1",
			wantArgs:     []any{"Available"},
		},
		{
			name: "kind filter",
			query: CardQuery{
				Kind: ptr("Lot"),
			},
			wantDataHas:  []string{"WHERE kind = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM cards WHERE kind = $1",
			wantArgs:     []any{"Lot"},
		},
		{
			name: "team filter",
			query: CardQuery{
				Team: ptr("FC Bayern Munich"),
			},
			wantDataHas:  []string{"WHERE team = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM cards WHERE team = $1",
			wantArgs:     []any{"FC Bayern Munich"},
		},
		{
			name: "set filter",
			query: CardQuery{
				Set: ptr("Fossil"),
			},
			wantDataHas:  []string{"WHERE set_name = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM cards WHERE set_name = $1",
			wantArgs:     []any{"Fossil"},
		},
		{
			name: "title search wraps pattern",
			query: CardQuery{
				TitleSearch: ptr("char"),
			},
			wantDataHas:  []string{"WHERE title ILIKE $1"},
			wantCountSQL: "SELECT COUNT(*) FROM cards WHERE title ILIKE $1",
			wantArgs:     []any{"%char%"},
		},
		{
			name: "combined filters number params in order",
			query: CardQuery{
				Status: ptr("Listed"),
				Set:    ptr("Base"),
			},
			wantDataHas:  []string{"WHERE status = $1 AND set_name = $2"},
			wantCountSQL: "SELECT COUNT(*) FROM cards WHERE status = $1 AND set_name = $2",
			wantArgs:     []any{"Listed", "Base"},
		},
		{
			name: "price ordering",
			query: CardQuery{
				OrderBy: "price",
			},
			wantDataHas: []string{"ORDER BY price ASC NULLS LAST"},
			wantArgs:    nil,
		},
		{
			name: "title ordering",
			query: CardQuery{
				OrderBy: "title",
			},
			wantDataHas: []string{"ORDER BY title ASC"},
			wantArgs:    nil,
		},
		{
			name: "invalid ordering falls back to default",
			query: CardQuery{
				OrderBy: "price; DROP TABLE cards",
			},
			wantDataHas: []string{"ORDER BY created_at DESC"},
			wantArgs:    nil,
		},
		{
			name: "limit capped at max",
			query: CardQuery{
				Limit: 10000,
			},
			wantDataHas: []string{"LIMIT 500"},
			wantArgs:    nil,
		},
		{
			name: "negative offset clamped to zero",
			query: CardQuery{
				Offset: -5,
			},
			wantDataHas: []string{"OFFSET 0"},
			wantArgs:    nil,
		},
		{
			name: "limit and offset applied",
			query: CardQuery{
				Limit:  25,
				Offset: 75,
			},
			wantDataHas: []string{"LIMIT 25", "OFFSET 75"},
			wantArgs:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL()

			for _, want := range tt.wantDataHas {
				assert.Contains(t, dataSQL, want)
			}
			for _, notWant := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, notWant)
			}
			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}
			require.Equal(t, tt.wantArgs, args)
		})
	}
}
