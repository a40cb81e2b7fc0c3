package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"trendsite/internal/domain/trend"
)

// ImporterConfig contains configuration for the importer.
type ImporterConfig struct {
	EventsTopic string
}

// Importer runs the per-source import pipeline: read, normalize,
// dedupe, score, replace snapshot. Sources are processed strictly
// sequentially within one run, so a single process never races its
// own writes. Two processes importing the same source concurrently
// are not protected against.
type Importer struct {
	store  trend.Store
	synth  *Synthesizer
	events *nats.Conn
	config ImporterConfig
}

// Report summarizes one run over all configured sources.
type Report struct {
	RunID    string
	Imported map[string]int
	Skipped  []string
	Failed   []string
}

// importEvent is published on the event bus after each successful
// source import, for downstream consumers.
type importEvent struct {
	RunID       string    `json:"run_id"`
	Source      string    `json:"source"`
	Count       int       `json:"count"`
	CompletedAt time.Time `json:"completed_at"`
}

// NewImporter creates a new importer. events may be nil, in which case
// import events are not published.
func NewImporter(store trend.Store, synth *Synthesizer, events *nats.Conn, config ImporterConfig) *Importer {
	return &Importer{
		store:  store,
		synth:  synth,
		events: events,
		config: config,
	}
}

// Run imports every configured source in order. A missing file is
// skipped with a warning; a parse or store failure aborts only that
// source's import and the run continues. The returned error is
// reserved for failures outside the per-source loop.
func (im *Importer) Run(ctx context.Context, sources []SourceFile) (*Report, error) {
	report := &Report{
		RunID:    uuid.New().String(),
		Imported: make(map[string]int),
	}

	log.Printf("INFO: starting import run %s (%d sources)", report.RunID, len(sources))

	for _, src := range sources {
		count, err := im.importSource(ctx, src)
		if err != nil {
			if os.IsNotExist(err) {
				log.Printf("WARNING: source file missing, skipping: %s (%s)", src.Path, src.Tag)
				report.Skipped = append(report.Skipped, src.Tag)
				continue
			}
			log.Printf("ERROR: import failed for source %s: %v", src.Tag, err)
			report.Failed = append(report.Failed, src.Tag)
			continue
		}

		report.Imported[src.Tag] = count
		log.Printf("INFO: imported %d trends for source %s", count, src.Tag)
		im.publishEvent(report.RunID, src.Tag, count)
	}

	return report, nil
}

// importSource replaces one source's snapshot with the freshly scored
// batch. Failure leaves the prior snapshot untouched.
func (im *Importer) importSource(ctx context.Context, src SourceFile) (int, error) {
	rows, err := readFile(src.Path, src.Tag)
	if err != nil {
		return 0, err
	}

	records := im.synth.Score(Dedupe(Normalize(rows)))

	if err := im.store.ReplaceSnapshot(ctx, src.Tag, records); err != nil {
		return 0, fmt.Errorf("error replacing snapshot for source %s: %w", src.Tag, err)
	}

	return len(records), nil
}

func (im *Importer) publishEvent(runID, source string, count int) {
	if im.events == nil {
		return
	}

	payload, err := json.Marshal(importEvent{
		RunID:       runID,
		Source:      source,
		Count:       count,
		CompletedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("WARNING: error marshaling import event for %s: %v", source, err)
		return
	}

	subject := fmt.Sprintf("%s.%s", im.config.EventsTopic, source)
	if err := im.events.Publish(subject, payload); err != nil {
		log.Printf("WARNING: error publishing import event for %s: %v", source, err)
	}
}
