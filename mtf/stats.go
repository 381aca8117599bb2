package mtf

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// Stats is a snapshot of a table's activity since creation.
type Stats struct {
	Entries     int
	Inserts     uint64
	Lookups     uint64
	Hits        uint64
	Misses      uint64
	Relocations uint64
	Removals    uint64
	// Probes counts entries compared by lookups.
	Probes   uint64
	Lifetime timespan.TimeSpan
}

// MeanProbes is the average number of comparisons per lookup.
func (s Stats) MeanProbes() float64 {
	if s.Lookups == 0 {
		return 0
	}
	return float64(s.Probes) / float64(s.Lookups)
}

// HitRatio is the fraction of lookups that found their key.
func (s Stats) HitRatio() float64 {
	if s.Lookups == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Lookups)
}

type counters struct {
	inserts     uint64
	lookups     uint64
	hits        uint64
	misses      uint64
	relocations uint64
	removals    uint64
	probes      uint64
}

func (c counters) snapshot(entries int, created, now time.Time) Stats {
	return Stats{
		Entries:     entries,
		Inserts:     c.inserts,
		Lookups:     c.lookups,
		Hits:        c.hits,
		Misses:      c.misses,
		Relocations: c.relocations,
		Removals:    c.removals,
		Probes:      c.probes,
		Lifetime:    timespan.BetweenTimes(created, now),
	}
}
