// Package storetest provides an in-memory store.Store fake for tests.
// It honors the normalized-title uniqueness rule so dedup and upsert
// behavior can be exercised without a database.
package storetest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/filamvp/card-tracker/internal/store"
	domain "github.com/filamvp/card-tracker/pkg/types"
)

// Fake is an in-memory Store. The error and rejection fields let tests
// force specific failure paths; zero value means everything succeeds.
type Fake struct {
	mu    sync.Mutex
	cards map[string]domain.Card
	queue []domain.QueuedImage

	TitlesErr  error
	UpsertErr  error
	ReducedErr error
	PingErr    error

	// RejectTitles holds normalized titles the fake refuses server-side,
	// simulating a row lost to a concurrent batch.
	RejectTitles map[string]bool

	UpsertCalls  int
	ReducedCalls int
}

var _ store.Store = (*Fake)(nil)

// New returns an empty Fake.
func New() *Fake {
	return &Fake{cards: make(map[string]domain.Card)}
}

// Seed inserts cards directly, bypassing conflict checks.
func (f *Fake) Seed(cards ...domain.Card) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range cards {
		f.cards[c.ID] = c
	}
}

// CardCount returns the number of stored cards.
func (f *Fake) CardCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cards)
}

func (f *Fake) UpsertCards(_ context.Context, cards []domain.Card) ([]domain.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpsertCalls++
	if f.UpsertErr != nil {
		return nil, f.UpsertErr
	}
	return f.insert(cards, false), nil
}

func (f *Fake) UpsertCardsReduced(_ context.Context, cards []domain.Card) ([]domain.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ReducedCalls++
	if f.ReducedErr != nil {
		return nil, f.ReducedErr
	}
	return f.insert(cards, true), nil
}

func (f *Fake) insert(cards []domain.Card, reduced bool) []domain.Card {
	taken := make(map[string]bool, len(f.cards))
	for _, c := range f.cards {
		taken[domain.NormalizeTitle(c.Title)] = true
	}

	var accepted []domain.Card
	for _, c := range cards {
		norm := domain.NormalizeTitle(c.Title)
		if taken[norm] || f.RejectTitles[norm] {
			continue
		}
		if reduced {
			c.Kind = ""
			c.Team = ""
			c.Numbering = ""
		}
		taken[norm] = true
		f.cards[c.ID] = c
		accepted = append(accepted, c)
	}
	return accepted
}

func (f *Fake) GetCard(_ context.Context, id string) (*domain.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cards[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

func (f *Fake) ListCards(_ context.Context, opts *store.CardQuery) ([]domain.Card, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.Card
	for _, c := range f.cards {
		if opts != nil {
			if opts.Status != nil && string(c.Status) != *opts.Status {
				continue
			}
			if opts.Kind != nil && string(c.Kind) != *opts.Kind {
				continue
			}
			if opts.Team != nil && c.Team != *opts.Team {
				continue
			}
			if opts.Set != nil && c.Set != *opts.Set {
				continue
			}
			if opts.TitleSearch != nil &&
				!strings.Contains(strings.ToLower(c.Title), strings.ToLower(*opts.TitleSearch)) {
				continue
			}
		}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Title < out[j].Title
	})

	return out, len(out), nil
}

func (f *Fake) ListCardTitles(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.TitlesErr != nil {
		return nil, f.TitlesErr
	}
	var titles []string
	for _, c := range f.cards {
		titles = append(titles, c.Title)
	}
	return titles, nil
}

func (f *Fake) UpdateCard(_ context.Context, c *domain.Card) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.cards[c.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.cards[c.ID] = *c
	return nil
}

func (f *Fake) DeleteCard(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.cards, id)
	return nil
}

func (f *Fake) EnqueueImage(_ context.Context, path string) (*domain.QueuedImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, img := range f.queue {
		if img.Path == path {
			return nil, nil
		}
	}
	img := domain.QueuedImage{
		ID:     uuid.NewString(),
		Path:   path,
		Status: domain.QueueStatusPending,
	}
	f.queue = append(f.queue, img)
	return &img, nil
}

func (f *Fake) ListPendingImages(_ context.Context, limit int) ([]domain.QueuedImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.QueuedImage
	for _, img := range f.queue {
		if img.Status != domain.QueueStatusPending {
			continue
		}
		out = append(out, img)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *Fake) MarkImagesDone(_ context.Context, ids []string) error {
	return f.markImages(ids, domain.QueueStatusDone, "")
}

func (f *Fake) MarkImagesError(_ context.Context, ids []string, errText string) error {
	return f.markImages(ids, domain.QueueStatusError, errText)
}

func (f *Fake) markImages(ids []string, status domain.ImageQueueStatus, errText string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for i := range f.queue {
		if want[f.queue[i].ID] {
			f.queue[i].Status = status
			f.queue[i].ErrorText = errText
		}
	}
	return nil
}

func (f *Fake) CountPendingImages(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, img := range f.queue {
		if img.Status == domain.QueueStatusPending {
			n++
		}
	}
	return n, nil
}

// QueueEntries returns a copy of the queue for assertions.
func (f *Fake) QueueEntries() []domain.QueuedImage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.QueuedImage, len(f.queue))
	copy(out, f.queue)
	return out
}

func (f *Fake) Migrate(context.Context) error { return nil }

func (f *Fake) Ping(context.Context) error { return f.PingErr }
