// Package ingest implements the bulk import pipeline: building complete
// card records from parsed rows, client-side deduplication, and the
// upsert coordination against the store, including the one-shot
// reduced-field retry for legacy backend schemas.
package ingest

import (
	"time"

	"github.com/google/uuid"

	"github.com/filamvp/card-tracker/pkg/parse"
	domain "github.com/filamvp/card-tracker/pkg/types"
)

// BuildCards turns parsed rows into complete card records: fresh UUIDs,
// Available status and Single kind when absent, team names canonicalized,
// and one shared creation timestamp so a batch stays visually grouped.
// It performs no deduplication.
func BuildCards(rows []parse.Row, now time.Time) []domain.Card {
	cards := make([]domain.Card, 0, len(rows))
	for _, r := range rows {
		c := domain.Card{
			ID:            newCardID(),
			Kind:          r.Kind,
			Title:         r.Title,
			Team:          parse.NormalizeTeamName(r.Team),
			Set:           r.Set,
			Condition:     r.Condition,
			Notes:         r.Notes,
			Price:         r.Price,
			Platforms:     r.Platforms,
			Status:        r.Status,
			ImageURLFront: r.ImageURL,
			CreatedAt:     now,
		}
		if c.Kind == "" {
			c.Kind = domain.KindSingle
		}
		if c.Status == "" {
			c.Status = domain.StatusAvailable
		}
		cards = append(cards, c)
	}
	return cards
}

func newCardID() string {
	return uuid.NewString()
}
