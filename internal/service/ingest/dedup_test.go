package ingest

import (
	"fmt"
	"sort"
	"testing"

	"trendsite/internal/domain/trend"
)

func TestDedupeFirstWins(t *testing.T) {
	records := []trend.Record{
		{Title: "Cats", Slug: "cats", Region: "US"},
		{Title: "Zebra", Slug: "zebra"},
		{Title: "cats", Slug: "cats", Region: "GB"},
		{Title: "Apples", Slug: "apples"},
		{Title: "CATS", Slug: "cats", Region: "DE"},
	}

	out := Dedupe(records)

	seen := make(map[string]bool)
	for _, r := range out {
		if seen[r.Slug] {
			t.Fatalf("duplicate slug %s survived dedup", r.Slug)
		}
		seen[r.Slug] = true
	}

	if len(out) != 3 {
		t.Fatalf("expected 3 records, got %d", len(out))
	}

	for _, r := range out {
		if r.Slug == "cats" && r.Region != "US" {
			t.Errorf("expected first occurrence to win, got region %s", r.Region)
		}
	}
}

func TestDedupeSortsByTitle(t *testing.T) {
	records := []trend.Record{
		{Title: "Zebra", Slug: "zebra"},
		{Title: "Apples", Slug: "apples"},
		{Title: "Mangoes", Slug: "mangoes"},
	}

	out := Dedupe(records)

	if !sort.SliceIsSorted(out, func(i, j int) bool { return out[i].Title < out[j].Title }) {
		t.Errorf("output not sorted by title: %v", titles(out))
	}
}

func TestDedupeLargeBatch(t *testing.T) {
	var records []trend.Record
	for i := 0; i < 5000; i++ {
		title := fmt.Sprintf("Topic %04d", i%1000)
		records = append(records, trend.Record{Title: title, Slug: trend.Slugify(title)})
	}

	out := Dedupe(records)
	if len(out) != 1000 {
		t.Fatalf("expected 1000 distinct slugs, got %d", len(out))
	}
}

func titles(records []trend.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}
