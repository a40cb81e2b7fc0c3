package ingest

import (
	"sort"

	"trendsite/internal/domain/trend"
)

// Dedupe removes same-slug duplicates within one source's batch. The
// first occurrence wins, then the surviving set is re-sorted by title
// ascending so the synthesizer can derive scores from rank. The seen
// index keeps this O(n log n) on large batches.
func Dedupe(records []trend.Record) []trend.Record {
	seen := make(map[string]struct{}, len(records))
	deduped := make([]trend.Record, 0, len(records))

	for _, r := range records {
		if _, ok := seen[r.Slug]; ok {
			continue
		}
		seen[r.Slug] = struct{}{}
		deduped = append(deduped, r)
	}

	sort.Slice(deduped, func(i, j int) bool {
		return deduped[i].Title < deduped[j].Title
	})

	return deduped
}
