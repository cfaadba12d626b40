package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/filamvp/card-tracker/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertCards inserts a batch of cards in one transaction, ignoring rows
// that conflict on title_norm. Only rows the database accepted are
// returned; a conflict is not an error. Any other failure rolls back the
// whole batch.
func (s *PostgresStore) UpsertCards(ctx context.Context, cards []domain.Card) ([]domain.Card, error) {
	return s.upsertCards(ctx, cards, false)
}

// UpsertCardsReduced is UpsertCards without the newer optional columns
// (kind, team, numbering), for a backend schema that predates them.
func (s *PostgresStore) UpsertCardsReduced(ctx context.Context, cards []domain.Card) ([]domain.Card, error) {
	return s.upsertCards(ctx, cards, true)
}

func (s *PostgresStore) upsertCards(
	ctx context.Context,
	cards []domain.Card,
	reduced bool,
) ([]domain.Card, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	var accepted []domain.Card
	for _, c := range cards {
		args := pgx.NamedArgs{
			"id":               c.ID,
			"title":            c.Title,
			"set_name":         c.Set,
			"condition":        c.Condition,
			"notes":            c.Notes,
			"price":            c.Price,
			"vinted":           c.Platforms.Vinted,
			"vendora":          c.Platforms.Vendora,
			"ebay":             c.Platforms.Ebay,
			"status":           string(c.Status),
			"image_url_front":  c.ImageURLFront,
			"image_url_back":   c.ImageURLBack,
			"extra_image_urls": c.ExtraImageURLs,
			"created_at":       c.CreatedAt,
		}
		query := queryInsertCardReduced
		if !reduced {
			query = queryInsertCard
			args["kind"] = string(c.Kind)
			args["team"] = c.Team
			args["numbering"] = c.Numbering
		}

		err := tx.QueryRow(ctx, query, args).Scan(&c.ID, &c.CreatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			// ON CONFLICT DO NOTHING returned no row, so the server skipped it.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("inserting card %q: %w", c.Title, err)
		}
		accepted = append(accepted, c)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing card batch: %w", err)
	}
	return accepted, nil
}

// GetCard retrieves a card by its ID.
func (s *PostgresStore) GetCard(ctx context.Context, id string) (*domain.Card, error) {
	c := &domain.Card{}
	if err := scanCard(s.pool.QueryRow(ctx, queryGetCard, id), c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCards queries cards with optional filters, returning results and total count.
func (s *PostgresStore) ListCards(
	ctx context.Context,
	opts *CardQuery,
) ([]domain.Card, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	// Get total count.
	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting cards: %w", err)
	}

	// Get data rows.
	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		var c domain.Card
		if err := scanCard(rows, &c); err != nil {
			return nil, 0, fmt.Errorf("scanning card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating cards: %w", err)
	}

	return cards, total, nil
}

// ListCardTitles returns every card title, for building the dedup snapshot
// without fetching full rows.
func (s *PostgresStore) ListCardTitles(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryListCardTitles)
	if err != nil {
		return nil, fmt.Errorf("querying card titles: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scanning card title: %w", err)
		}
		titles = append(titles, t)
	}

	return titles, rows.Err()
}

// UpdateCard updates all mutable fields of an existing card.
func (s *PostgresStore) UpdateCard(ctx context.Context, c *domain.Card) error {
	args := pgx.NamedArgs{
		"id":               c.ID,
		"kind":             string(c.Kind),
		"title":            c.Title,
		"team":             c.Team,
		"set_name":         c.Set,
		"condition":        c.Condition,
		"numbering":        c.Numbering,
		"notes":            c.Notes,
		"price":            c.Price,
		"vinted":           c.Platforms.Vinted,
		"vendora":          c.Platforms.Vendora,
		"ebay":             c.Platforms.Ebay,
		"status":           string(c.Status),
		"image_url_front":  c.ImageURLFront,
		"image_url_back":   c.ImageURLBack,
		"extra_image_urls": c.ExtraImageURLs,
	}

	tag, err := s.pool.Exec(ctx, queryUpdateCard, args)
	if err != nil {
		return fmt.Errorf("updating card: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteCard removes a card by its ID.
func (s *PostgresStore) DeleteCard(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, queryDeleteCard, id)
	if err != nil {
		return fmt.Errorf("deleting card: %w", err)
	}
	return nil
}

// EnqueueImage adds one image path to the processing queue. A path already
// queued is silently ignored and nil is returned for it.
func (s *PostgresStore) EnqueueImage(ctx context.Context, path string) (*domain.QueuedImage, error) {
	img := &domain.QueuedImage{}
	err := s.pool.QueryRow(ctx, queryEnqueueImage, path).Scan(
		&img.ID, &img.Path, &img.Status, &img.ErrorText, &img.EnqueuedAt, &img.ProcessedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("enqueueing image: %w", err)
	}
	return img, nil
}

// ListPendingImages returns queued images awaiting processing, oldest first.
func (s *PostgresStore) ListPendingImages(ctx context.Context, limit int) ([]domain.QueuedImage, error) {
	rows, err := s.pool.Query(ctx, queryListPendingImages, limit)
	if err != nil {
		return nil, fmt.Errorf("querying pending images: %w", err)
	}
	defer rows.Close()

	var images []domain.QueuedImage
	for rows.Next() {
		var img domain.QueuedImage
		if err := rows.Scan(
			&img.ID, &img.Path, &img.Status, &img.ErrorText, &img.EnqueuedAt, &img.ProcessedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning queued image: %w", err)
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

// MarkImagesDone marks the given queue entries as processed.
func (s *PostgresStore) MarkImagesDone(ctx context.Context, ids []string) error {
	_, err := s.pool.Exec(ctx, queryMarkImagesDone, ids)
	if err != nil {
		return fmt.Errorf("marking images done: %w", err)
	}
	return nil
}

// MarkImagesError marks the given queue entries as failed with an error text.
func (s *PostgresStore) MarkImagesError(ctx context.Context, ids []string, errText string) error {
	_, err := s.pool.Exec(ctx, queryMarkImagesError, ids, errText)
	if err != nil {
		return fmt.Errorf("marking images errored: %w", err)
	}
	return nil
}

// CountPendingImages returns the number of images still awaiting processing.
func (s *PostgresStore) CountPendingImages(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, queryCountPendingImages).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting pending images: %w", err)
	}
	return count, nil
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanCard scans a full card row.
func scanCard(row scannable, c *domain.Card) error {
	return row.Scan(
		&c.ID, &c.Kind, &c.Title, &c.Team, &c.Set,
		&c.Condition, &c.Numbering, &c.Notes,
		&c.Price, &c.Platforms.Vinted, &c.Platforms.Vendora, &c.Platforms.Ebay, &c.Status,
		&c.ImageURLFront, &c.ImageURLBack,
		&c.ExtraImageURLs, &c.CreatedAt,
	)
}
