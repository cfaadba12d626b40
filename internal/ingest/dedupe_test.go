package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filamvp/card-tracker/internal/ingest"
	domain "github.com/filamvp/card-tracker/pkg/types"
)

func cardTitled(title string) domain.Card {
	return domain.Card{ID: "id-" + title, Title: title}
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	t.Run("existing inventory skips case and space variants", func(t *testing.T) {
		t.Parallel()

		res := ingest.Dedupe(
			[]string{"Charizard", " Pikachu "},
			[]domain.Card{cardTitled("charizard "), cardTitled("PIKACHU"), cardTitled("Mew")},
		)

		require.Len(t, res.Accepted, 1)
		assert.Equal(t, "Mew", res.Accepted[0].Title)
		assert.Equal(t, 2, res.SkippedExisting)
		assert.Zero(t, res.SkippedBatch)
	})

	t.Run("first occurrence in batch wins", func(t *testing.T) {
		t.Parallel()

		first := cardTitled("Charizard")
		second := cardTitled("charizard ")
		second.Notes = "more complete duplicate"

		res := ingest.Dedupe(nil, []domain.Card{first, second})

		require.Len(t, res.Accepted, 1)
		assert.Equal(t, "Charizard", res.Accepted[0].Title)
		assert.Equal(t, 1, res.SkippedBatch)
		assert.Zero(t, res.SkippedExisting)
	})

	t.Run("empty titles dropped without counting", func(t *testing.T) {
		t.Parallel()

		res := ingest.Dedupe(nil, []domain.Card{cardTitled("   "), cardTitled("Mew")})

		require.Len(t, res.Accepted, 1)
		assert.Zero(t, res.SkippedExisting)
		assert.Zero(t, res.SkippedBatch)
	})

	t.Run("input order preserved", func(t *testing.T) {
		t.Parallel()

		res := ingest.Dedupe(nil, []domain.Card{
			cardTitled("c"), cardTitled("a"), cardTitled("b"),
		})

		require.Len(t, res.Accepted, 3)
		assert.Equal(t, "c", res.Accepted[0].Title)
		assert.Equal(t, "a", res.Accepted[1].Title)
		assert.Equal(t, "b", res.Accepted[2].Title)
	})
}
