// internal/adapter/storage/trend_store.go

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"trendsite/internal/domain/trend"
)

// defaultLimit is the page size applied when a filter sets no limit.
const defaultLimit = 100

const schema = `
	CREATE TABLE IF NOT EXISTS trends (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		search_volume BIGINT NOT NULL,
		source TEXT NOT NULL,
		region TEXT NOT NULL,
		url TEXT NOT NULL DEFAULT '',
		observed_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_trends_source ON trends (source);
	CREATE INDEX IF NOT EXISTS idx_trends_search_volume ON trends (search_volume DESC);
`

const upsertQuery = `
	INSERT INTO trends (
		id, title, slug, search_volume, source, region, url, observed_at, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, now(), now()
	)
	ON CONFLICT (slug) DO UPDATE
	SET
		title = EXCLUDED.title,
		search_volume = EXCLUDED.search_volume,
		source = EXCLUDED.source,
		region = EXCLUDED.region,
		url = EXCLUDED.url,
		observed_at = EXCLUDED.observed_at,
		updated_at = now()
`

const selectColumns = `
	SELECT
		id, title, slug, search_volume, source, region, url,
		observed_at, created_at, updated_at
	FROM trends
`

// TrendStore implements storage for trend snapshots
type TrendStore struct {
	db *pgxpool.Pool
}

// NewTrendStore creates a new trend store
func NewTrendStore(db *pgxpool.Pool) *TrendStore {
	return &TrendStore{
		db: db,
	}
}

// EnsureSchema creates the trends table and indexes if they do not exist
func (s *TrendStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("error ensuring schema: %w", err)
	}
	return nil
}

// ReplaceSnapshot replaces a source's persisted snapshot with records.
// The delete and the upserts run in one transaction, so readers never
// observe the transient empty window between them. On conflict the new
// row's columns overwrite the existing row's, except created_at which
// backs first_seen.
func (s *TrendStore) ReplaceSnapshot(ctx context.Context, source string, records []trend.Record) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM trends WHERE source = $1`, source); err != nil {
		return fmt.Errorf("error deleting snapshot for source %s: %w", source, err)
	}

	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(
			upsertQuery,
			uuid.New().String(),
			r.Title,
			r.Slug,
			r.SearchVolume,
			source,
			r.Region,
			r.URL,
			r.ObservedAt,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range records {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("error upserting trend: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("error closing batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing snapshot for source %s: %w", source, err)
	}

	return nil
}

// listQuery builds the filtered, sorted, paginated SELECT for List.
func listQuery(filter trend.Filter) (string, []interface{}) {
	query := selectColumns + " WHERE search_volume >= $1"
	args := []interface{}{filter.MinScore}
	argIndex := 2

	if filter.Region != "" {
		query += fmt.Sprintf(" AND region = $%d", argIndex)
		args = append(args, filter.Region)
		argIndex++
	}

	if filter.SinceHours > 0 {
		query += fmt.Sprintf(" AND observed_at >= now() - ($%d * interval '1 hour')", argIndex)
		args = append(args, filter.SinceHours)
		argIndex++
	}

	if filter.Query != "" {
		query += fmt.Sprintf(" AND title ILIKE '%%' || $%d || '%%'", argIndex)
		args = append(args, filter.Query)
		argIndex++
	}

	switch filter.Sort {
	case trend.SortFirstSeen:
		query += " ORDER BY created_at DESC"
	case trend.SortLastSeen:
		query += " ORDER BY observed_at DESC"
	case trend.SortAlpha:
		query += " ORDER BY title ASC"
	default:
		query += " ORDER BY search_volume DESC"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, filter.Offset)

	return query, args
}

// List finds trends matching the filter and projects them to views
func (s *TrendStore) List(ctx context.Context, filter trend.Filter) ([]trend.View, error) {
	query, args := listQuery(filter)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var records []trend.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trends: %w", err)
	}

	return trend.BuildViews(records), nil
}

// GetBySlug retrieves the view for one slug. A missing slug returns
// (nil, nil), never an error.
func (s *TrendStore) GetBySlug(ctx context.Context, slug string) (*trend.View, error) {
	row := s.db.QueryRow(ctx, selectColumns+" WHERE slug = $1", slug)

	r, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	views := trend.BuildViews([]trend.Record{r})
	return &views[0], nil
}

// SourceStats returns the persisted row count per source and the
// grand total. Read-only.
func (s *TrendStore) SourceStats(ctx context.Context) (map[string]int, int, error) {
	rows, err := s.db.Query(ctx, `SELECT source, COUNT(*) FROM trends GROUP BY source`)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	total := 0
	for rows.Next() {
		var source string
		var count int
		if err := rows.Scan(&source, &count); err != nil {
			return nil, 0, fmt.Errorf("error scanning source stats: %w", err)
		}
		counts[source] = count
		total += count
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating source stats: %w", err)
	}

	return counts, total, nil
}

func scanRecord(row pgx.Row) (trend.Record, error) {
	var r trend.Record
	err := row.Scan(
		&r.ID,
		&r.Title,
		&r.Slug,
		&r.SearchVolume,
		&r.Source,
		&r.Region,
		&r.URL,
		&r.ObservedAt,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r, err
		}
		return r, fmt.Errorf("error scanning trend: %w", err)
	}
	return r, nil
}
