package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/filamvp/card-tracker/internal/metrics"
	"github.com/filamvp/card-tracker/internal/store"
	"github.com/filamvp/card-tracker/pkg/parse"
	domain "github.com/filamvp/card-tracker/pkg/types"
)

const defaultSubmitTimeout = 30 * time.Second

// pgUndefinedColumn is the Postgres error code raised when an insert
// names a column the backend schema does not have yet.
const pgUndefinedColumn = "42703"

// Importer coordinates one bulk import: snapshot fetch, client-side
// dedup, and submission with the one-shot reduced-field fallback. It is
// stateless across calls and safe for concurrent use.
type Importer struct {
	store   store.Store
	log     *slog.Logger
	timeout time.Duration
	now     func() time.Time
}

// Option configures an Importer.
type Option func(*Importer)

// WithSubmitTimeout bounds each store submission attempt.
func WithSubmitTimeout(d time.Duration) Option {
	return func(i *Importer) { i.timeout = d }
}

// WithClock overrides the batch timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(i *Importer) { i.now = now }
}

// NewImporter creates an Importer backed by the given store.
func NewImporter(s store.Store, log *slog.Logger, opts ...Option) *Importer {
	imp := &Importer{
		store:   s,
		log:     log,
		timeout: defaultSubmitTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// ImportText parses a pasted text blob and imports the resulting rows.
func (i *Importer) ImportText(ctx context.Context, text string) (*domain.ImportSummary, error) {
	rows := parse.ParseBulk(text)
	return i.ImportRows(ctx, rows)
}

// ImportRows builds complete records from parsed rows and imports them.
// All records in the batch share one creation timestamp.
func (i *Importer) ImportRows(ctx context.Context, rows []parse.Row) (*domain.ImportSummary, error) {
	return i.run(ctx, BuildCards(rows, i.now().UTC()))
}

// ImportJSON imports a previously exported JSON interchange document.
// Items keep their IDs and creation timestamps where present; the same
// dedup and upsert path applies, so re-importing a backup is idempotent.
func (i *Importer) ImportJSON(ctx context.Context, data []byte) (*domain.ImportSummary, error) {
	var export domain.Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parsing export JSON: %w", err)
	}
	if export.Version != domain.ExportVersion {
		return nil, fmt.Errorf("unsupported export version %d", export.Version)
	}

	now := i.now().UTC()
	cards := make([]domain.Card, 0, len(export.Items))
	for _, c := range export.Items {
		if c.ID == "" {
			c.ID = newCardID()
		}
		if c.Status == "" {
			c.Status = domain.StatusAvailable
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		cards = append(cards, c)
	}

	return i.run(ctx, cards)
}

func (i *Importer) run(ctx context.Context, cards []domain.Card) (*domain.ImportSummary, error) {
	start := time.Now()
	defer func() { metrics.ImportDuration.Observe(time.Since(start).Seconds()) }()

	// The snapshot is read once and not refreshed mid-operation. A
	// concurrent import can race; the unique index catches what this
	// pass misses and the difference shows up as server-side skips.
	titles, err := i.store.ListCardTitles(ctx)
	if err != nil {
		metrics.ImportFailuresTotal.Inc()
		return &domain.ImportSummary{State: domain.ImportFailed},
			fmt.Errorf("fetching inventory snapshot: %w", err)
	}

	dedup := Dedupe(titles, cards)
	summary := &domain.ImportSummary{
		SkippedExisting: dedup.SkippedExisting,
		SkippedBatch:    dedup.SkippedBatch,
	}

	if len(dedup.Accepted) > 0 {
		accepted, err := i.submit(ctx, dedup.Accepted)
		if err != nil {
			metrics.ImportFailuresTotal.Inc()
			summary.State = domain.ImportFailed
			return summary, err
		}
		summary.Accepted = len(accepted)
		summary.SkippedServer = len(dedup.Accepted) - len(accepted)
		summary.Cards = accepted
	}

	if summary.SkippedTotal() > 0 {
		summary.State = domain.ImportPartiallySucceeded
	} else {
		summary.State = domain.ImportSucceeded
	}

	metrics.ImportAcceptedTotal.Add(float64(summary.Accepted))
	metrics.ImportSkippedTotal.WithLabelValues("existing").Add(float64(summary.SkippedExisting))
	metrics.ImportSkippedTotal.WithLabelValues("batch").Add(float64(summary.SkippedBatch))
	metrics.ImportSkippedTotal.WithLabelValues("server").Add(float64(summary.SkippedServer))

	i.log.Info("bulk import finished",
		slog.String("state", string(summary.State)),
		slog.Int("accepted", summary.Accepted),
		slog.Int("skipped_existing", summary.SkippedExisting),
		slog.Int("skipped_batch", summary.SkippedBatch),
		slog.Int("skipped_server", summary.SkippedServer),
	)

	return summary, nil
}

// submit sends the batch and, on total failure, retries exactly once with
// the reduced field set to tolerate a backend schema missing the newer
// optional columns. No retry fires after the caller's context is done.
func (i *Importer) submit(ctx context.Context, cards []domain.Card) ([]domain.Card, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	accepted, err := i.store.UpsertCards(attemptCtx, cards)
	if err == nil {
		return accepted, nil
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("submitting batch: %w", err)
	}

	if isUndefinedColumn(err) {
		i.log.Warn("backend schema missing optional columns, retrying with reduced field set",
			slog.String("error", err.Error()))
	} else {
		i.log.Warn("batch submission failed, retrying with reduced field set",
			slog.String("error", err.Error()))
	}
	metrics.ImportSchemaFallbacksTotal.Inc()

	retryCtx, cancelRetry := context.WithTimeout(ctx, i.timeout)
	defer cancelRetry()

	accepted, retryErr := i.store.UpsertCardsReduced(retryCtx, cards)
	if retryErr != nil {
		return nil, fmt.Errorf("submitting batch after reduced-field retry: %w", retryErr)
	}
	return accepted, nil
}

func isUndefinedColumn(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUndefinedColumn
}
