package difficulty

// Engine capacities and the evaluation slice. The window keeps more
// history than a single decision looks at, so the full window stays
// available for diagnostics while recent regressions dominate the
// decision.
const (
	windowCapacity  = 15
	worstCapacity   = 10
	historyCapacity = 30
	evalRecent      = 5
)

// Engine owns the bounded structures and the current level for one
// game session. Construct a fresh one per session; nothing is shared
// or persisted across restarts.
type Engine struct {
	window  *Window
	worst   *WorstTracker
	archive *Archive
	history *History
	current Level
}

// New returns an engine starting at Easy with empty analytics.
func New() *Engine {
	return &Engine{
		window:  NewWindow(windowCapacity),
		worst:   NewWorstTracker(worstCapacity),
		archive: NewArchive(),
		history: NewHistory(historyCapacity, Easy),
		current: Easy,
	}
}

// EvaluateBatch feeds a batch of interval samples and returns the
// level now in effect. An empty or nil batch returns the current level
// and mutates nothing. The batch's own aggregate score is archived;
// the decision runs on the smoothed window.
func (e *Engine) EvaluateBatch(samples []Sample) Level {
	if len(samples) == 0 {
		return e.current
	}
	for _, s := range samples {
		e.window.Push(s)
	}
	e.archive.Record(Aggregate(samples).Score())
	return e.reevaluate()
}

// Evaluate feeds a single pre-aggregated interval and returns the
// level now in effect. The supplied stats are archived as-is, with
// their own accuracy; the decision runs on the smoothed window.
func (e *Engine) Evaluate(stats AggregateStats) Level {
	e.window.Push(stats.sample())
	e.archive.Record(stats.Score())
	return e.reevaluate()
}

// reevaluate runs one decision over the most recent window entries.
func (e *Engine) reevaluate() Level {
	recent := e.window.Snapshot()
	if len(recent) > evalRecent {
		recent = recent[len(recent)-evalRecent:]
	}
	agg := Aggregate(recent)

	e.worst.Observe(1 - agg.Accuracy)

	next := nextLevel(agg, e.current, e.worst.Struggling())
	if next != e.current {
		e.current = next
		e.history.Push(next)
	}
	return e.current
}

// UndoDifficulty reverts the most recent difficulty change and returns
// the level now in effect.
func (e *Engine) UndoDifficulty() Level {
	e.current = e.history.Undo()
	return e.current
}

// Current returns the level in effect without touching any state.
func (e *Engine) Current() Level {
	return e.current
}

// Struggling exposes the worst tracker's sustained-slump signal, for
// presentation layers that want to surface it.
func (e *Engine) Struggling() bool {
	return e.worst.Struggling()
}

// RecentByGoodness returns the sliding-window contents ordered worst
// to best, for end-of-session diagnostics.
func (e *Engine) RecentByGoodness() []Sample {
	return SortByGoodness(e.window.Snapshot())
}

// Evaluations is the number of archived interval scores.
func (e *Engine) Evaluations() int {
	return e.archive.Len()
}

// ScoreRange returns the lowest and highest archived interval scores;
// ok is false before the first evaluation.
func (e *Engine) ScoreRange() (lo, hi int, ok bool) {
	lo, ok = e.archive.Min()
	if !ok {
		return 0, 0, false
	}
	hi, _ = e.archive.Max()
	return lo, hi, true
}

// ArchivedScores returns every archived interval score, ascending.
func (e *Engine) ArchivedScores() []int {
	return e.archive.Ascending()
}
