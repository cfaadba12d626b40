// Package store defines the datastore abstraction for card-tracker.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables fake-based testing without a running database.
package store

import (
	"context"

	domain "github.com/filamvp/card-tracker/pkg/types"
)

// CardQuery defines optional filters for card queries.
type CardQuery struct {
	Status      *string
	Kind        *string
	Team        *string
	Set         *string
	TitleSearch *string // case-insensitive substring match
	Limit       int     // default 50
	Offset      int
	OrderBy     string // "created_at", "price", "title"
}

// Store defines all data access operations for card-tracker.
type Store interface {
	// Cards
	//
	// UpsertCards inserts a batch keyed on the normalized-title uniqueness
	// constraint, ignoring conflicting rows, and returns only the rows the
	// database actually accepted. It is idempotent under retried calls with
	// identical titles. UpsertCardsReduced does the same but omits the
	// newer optional columns (kind, team, numbering) for backends whose
	// schema has not been migrated yet.
	UpsertCards(ctx context.Context, cards []domain.Card) ([]domain.Card, error)
	UpsertCardsReduced(ctx context.Context, cards []domain.Card) ([]domain.Card, error)
	GetCard(ctx context.Context, id string) (*domain.Card, error)
	ListCards(ctx context.Context, opts *CardQuery) ([]domain.Card, int, error)
	ListCardTitles(ctx context.Context) ([]string, error)
	UpdateCard(ctx context.Context, c *domain.Card) error
	DeleteCard(ctx context.Context, id string) error

	// ImageQueue
	EnqueueImage(ctx context.Context, path string) (*domain.QueuedImage, error)
	ListPendingImages(ctx context.Context, limit int) ([]domain.QueuedImage, error)
	MarkImagesDone(ctx context.Context, ids []string) error
	MarkImagesError(ctx context.Context, ids []string, errText string) error
	CountPendingImages(ctx context.Context) (int, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
