// Package difficulty implements the adaptive difficulty core: a set of
// bounded analytics structures behind a rule-driven state machine. The
// engine ingests one performance sample per evaluation interval,
// smooths the recent trend over a sliding window, tracks the worst
// intervals seen so far, and decides promotions and demotions between
// three levels, with an undo history.
//
// Everything here is synchronous and bounded. An Engine belongs to one
// game session: construct it with New, feed it from a single
// goroutine, and drop it on restart. Methods are not safe for
// concurrent use; a caller that shares an Engine across goroutines
// must serialize access around it.
package difficulty

// Level is a discrete difficulty setting. Levels are ordered from
// easiest to hardest, but transitions between them are rule-driven
// rather than arithmetic.
type Level int

const (
	Easy Level = iota
	Medium
	Hard
)

func (l Level) String() string {
	switch l {
	case Easy:
		return "EASY"
	case Medium:
		return "MEDIUM"
	case Hard:
		return "HARD"
	default:
		return "UNKNOWN"
	}
}
