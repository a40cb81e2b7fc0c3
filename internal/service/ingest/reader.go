package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"trendsite/internal/domain/trend"
)

// SourceFile pairs a batch export on disk with the source tag its
// rows are imported under.
type SourceFile struct {
	Path string
	Tag  string
}

// readFile decodes one source export: CSV, one row per line, columns
// source,title,url,region,observed_at,raw_metric. An optional header
// row is skipped. The tag overrides the row's source column. Any
// malformed record aborts the whole file.
func readFile(path, tag string) ([]trend.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 6

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}

	rows := make([]trend.Row, 0, len(records))
	for i, rec := range records {
		if i == 0 && rec[0] == "source" {
			continue
		}

		observedAt, err := time.Parse(time.RFC3339, rec[4])
		if err != nil {
			return nil, fmt.Errorf("error parsing observed_at on line %d of %s: %w", i+1, path, err)
		}

		// raw_metric is accepted but not used for scoring.
		var rawMetric int64
		if v := strings.TrimSpace(rec[5]); v != "" {
			rawMetric, err = strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing raw_metric on line %d of %s: %w", i+1, path, err)
			}
		}

		rows = append(rows, trend.Row{
			Source:     tag,
			Title:      rec[1],
			URL:        rec[2],
			Region:     rec[3],
			ObservedAt: observedAt,
			RawMetric:  rawMetric,
		})
	}

	return rows, nil
}
