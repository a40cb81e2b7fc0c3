package ingest

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"trendsite/internal/domain/trend"
)

// The ecosystem exposes no true comparative metric across sources, so
// search volumes are synthesized from sorted rank: an exponential
// long-tail curve with per-item jitter and a hard floor.
const (
	baseVolume  = 3_000_000
	decayRate   = 0.15
	volumeFloor = 1000
)

// Synthesizer assigns rank-based synthetic search volumes.
type Synthesizer struct {
	rng *rand.Rand
}

// NewSynthesizer creates a synthesizer drawing jitter from rng. Pass a
// seeded source for deterministic scores; nil uses a time-based seed.
func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{rng: rng}
}

// Score assigns a volume to each record from its 1-based position in
// the title-sorted batch, then re-sorts the batch by volume descending.
// That order is what gets persisted and used for rank-based reporting.
func (s *Synthesizer) Score(records []trend.Record) []trend.Record {
	for i := range records {
		rank := float64(i + 1)
		jitter := 0.8 + s.rng.Float64()*0.4
		volume := int(math.Floor(baseVolume * math.Exp(-rank*decayRate) * jitter))
		if volume < volumeFloor {
			volume = volumeFloor
		}
		records[i].SearchVolume = volume
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].SearchVolume > records[j].SearchVolume
	})

	return records
}
