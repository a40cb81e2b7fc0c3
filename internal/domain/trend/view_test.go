package trend

import (
	"testing"
	"time"
)

func TestBuildViewsSingleton(t *testing.T) {
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	observed := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	views := BuildViews([]Record{{
		Title:        "Super Bowl",
		Slug:         "super-bowl",
		SearchVolume: 42000,
		Source:       "youtube",
		Region:       "US",
		CreatedAt:    created,
		ObservedAt:   observed,
	}})

	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}

	v := views[0]
	if v.Name != "Super Bowl" || v.Score != 42000 {
		t.Errorf("unexpected view: %+v", v)
	}
	if len(v.Regions) != 1 || v.Regions[0] != "US" {
		t.Errorf("expected regions [US], got %v", v.Regions)
	}
	if len(v.Sources) != 1 || v.Sources[0] != "youtube" {
		t.Errorf("expected sources [youtube], got %v", v.Sources)
	}
	if !v.FirstSeen.Equal(created) || !v.LastSeen.Equal(observed) {
		t.Errorf("unexpected seen range: %v - %v", v.FirstSeen, v.LastSeen)
	}
}

func TestBuildViewsMergesSlugGroups(t *testing.T) {
	early := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	records := []Record{
		{Title: "Super Bowl", Slug: "super-bowl", SearchVolume: 9000, Source: "youtube", Region: "US", CreatedAt: late, ObservedAt: early},
		{Title: "Cats", Slug: "cats", SearchVolume: 5000, Source: "wikipedia", Region: "GLOBAL", CreatedAt: early, ObservedAt: early},
		{Title: "Super bowl", Slug: "super-bowl", SearchVolume: 12000, Source: "reddit", Region: "GB", CreatedAt: early, ObservedAt: late},
	}

	views := BuildViews(records)
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}

	// Group order follows first occurrence of each slug.
	v := views[0]
	if v.Slug != "super-bowl" {
		t.Fatalf("expected super-bowl first, got %s", v.Slug)
	}
	if v.Score != 12000 {
		t.Errorf("expected max score 12000, got %d", v.Score)
	}
	if len(v.Regions) != 2 || v.Regions[0] != "US" || v.Regions[1] != "GB" {
		t.Errorf("expected regions [US GB], got %v", v.Regions)
	}
	if len(v.Sources) != 2 || v.Sources[1] != "reddit" {
		t.Errorf("expected sources [youtube reddit], got %v", v.Sources)
	}
	if len(v.Aliases) != 2 {
		t.Errorf("expected 2 aliases, got %v", v.Aliases)
	}
	if !v.FirstSeen.Equal(early) {
		t.Errorf("expected earliest created_at, got %v", v.FirstSeen)
	}
	if !v.LastSeen.Equal(late) {
		t.Errorf("expected latest observed_at, got %v", v.LastSeen)
	}
}

func TestBuildViewsDeduplicatesSetValues(t *testing.T) {
	records := []Record{
		{Title: "Cats", Slug: "cats", Source: "youtube", Region: "US"},
		{Title: "Cats", Slug: "cats", Source: "youtube", Region: "US"},
	}

	views := BuildViews(records)
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	v := views[0]
	if len(v.Regions) != 1 || len(v.Sources) != 1 || len(v.Aliases) != 1 {
		t.Errorf("expected singleton sets, got %+v", v)
	}
}
