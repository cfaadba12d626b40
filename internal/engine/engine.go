// Package engine orchestrates the image queue: grouping uploaded photos
// into per-card sets, extracting fields through the vision backend, and
// creating the resulting cards.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/filamvp/card-tracker/internal/extract"
	"github.com/filamvp/card-tracker/internal/metrics"
	"github.com/filamvp/card-tracker/internal/store"
	"github.com/filamvp/card-tracker/pkg/parse"
	domain "github.com/filamvp/card-tracker/pkg/types"
)

const defaultBatchSize = 10

// Engine processes the image queue with injected dependencies.
type Engine struct {
	store     store.Store
	extractor extract.Extractor
	limiter   *extract.RateLimiter
	log       *slog.Logger

	batchSize int
	now       func() time.Time
	imageURL  func(path string) string
}

// NewEngine creates a new Engine.
func NewEngine(
	s store.Store,
	ex extract.Extractor,
	limiter *extract.RateLimiter,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:     s,
		extractor: ex,
		limiter:   limiter,
		log:       slog.Default(),
		batchSize: defaultBatchSize,
		now:       time.Now,
		imageURL:  func(p string) string { return p },
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithBatchSize sets the maximum queue entries fetched per cycle.
func WithBatchSize(n int) EngineOption {
	return func(e *Engine) {
		e.batchSize = n
	}
}

// WithImageURLResolver sets how queued object paths are turned into the
// public URLs handed to the vision backend and stored on cards. The
// default uses the path as-is.
func WithImageURLResolver(f func(path string) string) EngineOption {
	return func(e *Engine) {
		e.imageURL = f
	}
}

// WithClock overrides the card timestamp source, for tests.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// RunQueueCycle processes one batch of pending images. Groups that hit
// the daily vision budget are left pending for a later cycle; everything
// else ends the cycle as done or errored.
func (eng *Engine) RunQueueCycle(ctx context.Context) error {
	pending, err := eng.store.ListPendingImages(ctx, eng.batchSize)
	if err != nil {
		return fmt.Errorf("listing pending images: %w", err)
	}
	defer eng.updateQueueDepth(ctx)

	if len(pending) == 0 {
		return nil
	}

	groups := GroupImages(pending)
	eng.log.Info("queue cycle starting",
		"pending", len(pending), "groups", len(groups))

	for _, g := range groups {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err := eng.limiter.Wait(ctx); err != nil {
			if errors.Is(err, extract.ErrDailyLimitReached) {
				// Budget exhausted: remaining rows stay pending.
				eng.log.Warn("daily vision budget exhausted, leaving remaining images pending")
				return nil
			}
			return fmt.Errorf("waiting for rate limiter: %w", err)
		}

		if err := eng.processGroup(ctx, g); err != nil {
			eng.log.Error("processing image group failed", "key", g.Key, "error", err)
			if markErr := eng.store.MarkImagesError(ctx, g.ids(), err.Error()); markErr != nil {
				return fmt.Errorf("marking group errored: %w", markErr)
			}
		}
	}

	return nil
}

func (eng *Engine) processGroup(ctx context.Context, g ImageGroup) error {
	fields := eng.extractFields(ctx, g)
	if fields.Title == "" {
		return fmt.Errorf("no card title recognized for %q", g.Key)
	}

	card := domain.Card{
		ID:        uuid.NewString(),
		Kind:      domain.KindSingle,
		Title:     fields.Title,
		Set:       fields.Set,
		Condition: fields.Condition,
		Numbering: fields.Numbering,
		Notes:     fields.Notes,
		Status:    domain.StatusNew,
		CreatedAt: eng.now().UTC(),
	}
	urls := eng.imageURLs(g)
	card.ImageURLFront = urls[0]
	if len(urls) > 1 {
		card.ImageURLBack = urls[1]
	}
	if len(urls) > 2 {
		card.ExtraImageURLs = urls[2:]
	}

	// A conflict on the normalized title means the card already exists;
	// the images are still consumed.
	if _, err := eng.store.UpsertCards(ctx, []domain.Card{card}); err != nil {
		return fmt.Errorf("creating card from images: %w", err)
	}

	if err := eng.store.MarkImagesDone(ctx, g.ids()); err != nil {
		return fmt.Errorf("marking group done: %w", err)
	}

	eng.log.Info("card created from images", "title", card.Title, "images", len(urls))
	return nil
}

func (eng *Engine) imageURLs(g ImageGroup) []string {
	urls := make([]string, len(g.Items))
	for i, img := range g.Items {
		urls[i] = eng.imageURL(img.Path)
	}
	return urls
}

// extractFields asks the vision backend first and falls back to parsing
// the filename when the backend fails or reads nothing usable.
func (eng *Engine) extractFields(ctx context.Context, g ImageGroup) extract.CardFields {
	start := time.Now()
	fields, err := eng.extractor.ExtractCard(ctx, eng.imageURLs(g))
	metrics.ExtractionDuration.Observe(time.Since(start).Seconds())

	if err == nil && fields.Title != "" {
		return *fields
	}
	if err != nil {
		metrics.ExtractionFailuresTotal.Inc()
		eng.log.Warn("vision extraction failed, falling back to filename parsing",
			"key", g.Key, "error", err)
	}

	row := parse.ParseFilename(path.Base(g.Items[0].Path))
	return extract.CardFields{
		Title:     row.Title,
		Set:       row.Set,
		Condition: row.Condition,
	}
}

func (eng *Engine) updateQueueDepth(ctx context.Context) {
	count, err := eng.store.CountPendingImages(ctx)
	if err != nil {
		eng.log.Warn("counting pending images failed", "error", err)
		return
	}
	metrics.QueueDepth.Set(float64(count))
}

// ImageGroup is a set of queue entries that show the same physical card.
type ImageGroup struct {
	Key   string
	Items []domain.QueuedImage
}

func (g ImageGroup) ids() []string {
	ids := make([]string, len(g.Items))
	for i, img := range g.Items {
		ids[i] = img.ID
	}
	return ids
}

func (g ImageGroup) paths() []string {
	paths := make([]string, len(g.Items))
	for i, img := range g.Items {
		paths[i] = img.Path
	}
	return paths
}

// sideSuffixRe strips trailing side markers like "_front", "-back", "_1"
// from a filename base so front/back shots of one card share a group key.
var sideSuffixRe = regexp.MustCompile(`(?i)[_\- ]?(front|back|f|b|1|2)$`)

// GroupImages buckets queue entries by card, preserving queue order both
// across groups and within each group (so the front shot, enqueued first,
// stays first).
func GroupImages(images []domain.QueuedImage) []ImageGroup {
	index := make(map[string]int)
	var groups []ImageGroup

	for _, img := range images {
		key := GroupKey(img.Path)
		if i, ok := index[key]; ok {
			groups[i].Items = append(groups[i].Items, img)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, ImageGroup{Key: key, Items: []domain.QueuedImage{img}})
	}
	return groups
}

// GroupKey derives the grouping key for one image path.
func GroupKey(p string) string {
	base := path.Base(p)
	if ext := path.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	base = strings.ToLower(strings.TrimSpace(base))
	return sideSuffixRe.ReplaceAllString(base, "")
}
