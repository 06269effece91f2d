package difficulty

// Transition thresholds over the aggregated recent accuracy.
// Boundaries are exact: promotions fire on >=, demotions on <. The
// Wide variants apply when the worst tracker reports a sustained
// slump, demoting earlier than accuracy alone would.
const (
	promoteToMedium    = 0.80
	promoteToHard      = 0.70
	demoteToEasy       = 0.30
	demoteToEasyWide   = 0.40
	demoteToMedium     = 0.55
	demoteToMediumWide = 0.65
)

// nextLevel is the pure decision function mapping the aggregated
// recent stats, the current level, and the struggling flag to the next
// level. Unmatched conditions keep the current level; the caller
// records no self-transitions.
func nextLevel(agg AggregateStats, current Level, struggling bool) Level {
	acc := agg.Accuracy
	switch current {
	case Easy:
		if acc >= promoteToMedium {
			return Medium
		}
	case Medium:
		if acc >= promoteToHard {
			return Hard
		}
		if acc < demoteToEasy || (struggling && acc < demoteToEasyWide) {
			return Easy
		}
	case Hard:
		if acc < demoteToMedium || (struggling && acc < demoteToMediumWide) {
			return Medium
		}
	}
	return current
}
