package ingest

import (
	"testing"
	"time"

	"trendsite/internal/domain/trend"
)

func TestNormalizeDropsEmptyTitles(t *testing.T) {
	observed := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	rows := []trend.Row{
		{Source: "youtube", Title: "   ", Region: "US", ObservedAt: observed},
		{Source: "youtube", Title: "Cats", Region: "US", ObservedAt: observed},
	}

	out := Normalize(rows)
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	if out[0].Slug != "cats" {
		t.Errorf("unexpected slug %s", out[0].Slug)
	}
}

func TestNormalizeNoiseFilterOnlyAppliesToWikipedia(t *testing.T) {
	observed := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	rows := []trend.Row{
		{Source: "wikipedia", Title: "Category:Sports", Region: "GLOBAL", ObservedAt: observed},
		{Source: "youtube", Title: "Finale: The Last Dance", Region: "US", ObservedAt: observed},
	}

	out := Normalize(rows)
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	if out[0].Source != "youtube" {
		t.Errorf("expected the youtube title kept, got %+v", out[0])
	}
}
