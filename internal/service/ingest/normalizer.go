package ingest

import (
	"regexp"
	"strings"

	"trendsite/internal/domain/trend"
)

// Wikipedia exports carry raw page titles, so pseudo-article noise has
// to be filtered before it reaches the store. Other exporters emit
// clean titles already.
var (
	yearTitle   = regexp.MustCompile(`^\d{4}$`)
	listOfTitle = regexp.MustCompile(`(?i)^List[ _]of[ _]`)
)

// Normalize turns raw rows into canonical records with derived slugs.
// Rows whose title is empty after trimming are dropped, as are noise
// titles from the wikipedia feed. There is no error path.
func Normalize(rows []trend.Row) []trend.Record {
	records := make([]trend.Record, 0, len(rows))

	for _, row := range rows {
		title := strings.TrimSpace(row.Title)
		if title == "" {
			continue
		}
		if row.Source == "wikipedia" && noiseTitle(title) {
			continue
		}

		records = append(records, trend.Record{
			Title:      title,
			Slug:       trend.Slugify(title),
			Source:     row.Source,
			Region:     row.Region,
			URL:        row.URL,
			ObservedAt: row.ObservedAt,
		})
	}

	return records
}

func noiseTitle(title string) bool {
	if title == "Main_Page" || title == "Main Page" {
		return true
	}
	if strings.Contains(title, ":") {
		return true
	}
	if yearTitle.MatchString(title) {
		return true
	}
	return listOfTitle.MatchString(title)
}
