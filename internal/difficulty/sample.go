package difficulty

// Sample holds one evaluation interval's raw performance counters as
// reported by the gameplay loop.
type Sample struct {
	Kills      uint
	Shots      uint
	Bypassed   uint
	ScoreDelta int
}

// Accuracy is the interval's hit ratio: kills over shots, or 0 when
// nothing was fired.
func (s Sample) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Kills) / float64(s.Shots)
}

// Score collapses the sample into a single scalar used for archival
// and for ordering samples by goodness: 10 points per kill, the raw
// score delta, an accuracy bonus in [0,100], minus 5 per bypass. Can
// be negative.
func (s Sample) Score() int {
	return scalarScore(s.Kills, s.Bypassed, s.ScoreDelta, s.Accuracy())
}

// AggregateStats is the reduction of one or more samples into a single
// accuracy-bearing summary. Aggregates are produced by Aggregate or,
// at the engine boundary, by NewAggregateStats wrapping one interval's
// counters.
type AggregateStats struct {
	Kills      uint
	Shots      uint
	Bypassed   uint
	ScoreDelta int
	Accuracy   float64
}

// NewAggregateStats wraps a single interval's counters, deriving the
// accuracy the same way Sample does.
func NewAggregateStats(kills, shots, bypassed uint, scoreDelta int) AggregateStats {
	return AggregateStats{
		Kills:      kills,
		Shots:      shots,
		Bypassed:   bypassed,
		ScoreDelta: scoreDelta,
		Accuracy:   Sample{Kills: kills, Shots: shots}.Accuracy(),
	}
}

// Score is the archival scalar computed with the aggregate's own
// accuracy rather than a rederived one.
func (a AggregateStats) Score() int {
	return scalarScore(a.Kills, a.Bypassed, a.ScoreDelta, a.Accuracy)
}

// sample strips the precomputed accuracy so the value can enter the
// sliding window as a raw interval.
func (a AggregateStats) sample() Sample {
	return Sample{
		Kills:      a.Kills,
		Shots:      a.Shots,
		Bypassed:   a.Bypassed,
		ScoreDelta: a.ScoreDelta,
	}
}

func scalarScore(kills, bypassed uint, scoreDelta int, accuracy float64) int {
	const (
		killWeight    = 10
		bypassPenalty = 5
	)
	accuracyBonus := int(accuracy * 100)
	return int(kills)*killWeight + scoreDelta + accuracyBonus - int(bypassed)*bypassPenalty
}
