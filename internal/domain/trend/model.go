package trend

import (
	"time"
)

// Row is one raw line from a source export, before normalization.
type Row struct {
	Source     string
	Title      string
	URL        string
	Region     string
	ObservedAt time.Time
	RawMetric  int64
}

// Record is the canonical persisted form of one trending topic.
// Slug is the store-wide identity: at most one row per slug exists
// across all sources combined, last write wins.
type Record struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	SearchVolume int       `json:"search_volume"`
	Source       string    `json:"source"`
	Region       string    `json:"region"`
	URL          string    `json:"url,omitempty"`
	ObservedAt   time.Time `json:"observed_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// View is the read-time projection summarizing every record that
// shares a slug. It is never persisted.
type View struct {
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	Regions   []string  `json:"regions"`
	Sources   []string  `json:"sources"`
	Aliases   []string  `json:"aliases"`
	FirstSeen time.Time `json:"first_seen"`
	LastSeen  time.Time `json:"last_seen"`
}

// Sort keys recognized by List.
const (
	SortScore     = "score"
	SortFirstSeen = "first_seen"
	SortLastSeen  = "last_seen"
	SortAlpha     = "alpha"
)

// Filter defines criteria for listing trends. Zero values mean
// "no filter"; a zero Limit falls back to the default page size.
type Filter struct {
	Region     string
	SinceHours int
	MinScore   int
	Query      string
	Sort       string
	Limit      int
	Offset     int
}
