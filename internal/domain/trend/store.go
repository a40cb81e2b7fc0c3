package trend

import (
	"context"
)

// Store is the write side of trend persistence.
type Store interface {
	// ReplaceSnapshot atomically replaces a source's persisted snapshot:
	// every existing record with the given source tag is deleted, then
	// all records of the new batch are upserted keyed on slug.
	ReplaceSnapshot(ctx context.Context, source string, records []Record) error
}

// Querier is the read side of trend persistence.
type Querier interface {
	// List returns views matching the filter, sorted and paginated.
	List(ctx context.Context, filter Filter) ([]View, error)

	// GetBySlug returns the view for a slug, or nil when no record
	// matches. Absence is not an error.
	GetBySlug(ctx context.Context, slug string) (*View, error)

	// SourceStats returns the row count per source and the grand total.
	SourceStats(ctx context.Context) (map[string]int, int, error)
}
