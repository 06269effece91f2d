package difficulty

// Struggling requires this many retained observations, all with
// badness above the threshold (accuracy below 50%).
const (
	strugglingMinCount = 3
	strugglingBadness  = 0.5
)

// WorstTracker retains the K worst badness values seen over the whole
// lifetime of an engine, where badness is 1 - accuracy. It is a
// fixed-capacity binary min-heap plus a size counter: the root is the
// least bad of the retained set, and once the tracker is full a new
// value enters only by displacing that root, and only when strictly
// worse than it.
type WorstTracker struct {
	heap []float64
	size int
}

// NewWorstTracker returns an empty tracker retaining at most capacity
// values.
func NewWorstTracker(capacity int) *WorstTracker {
	return &WorstTracker{heap: make([]float64, capacity)}
}

// Observe feeds one badness value into the tracker. Values equal to
// the current minimum of a full tracker are discarded.
func (t *WorstTracker) Observe(badness float64) {
	if t.size < len(t.heap) {
		t.heap[t.size] = badness
		t.size++
		t.siftUp(t.size - 1)
		return
	}
	if badness <= t.heap[0] {
		return
	}
	t.heap[0] = badness
	t.siftDown(0)
}

// WorstMin returns the minimum retained badness, the least bad of the
// worst-K. ok is false before the first observation.
func (t *WorstTracker) WorstMin() (float64, bool) {
	if t.size == 0 {
		return 0, false
	}
	return t.heap[0], true
}

// Len reports how many badness values are retained.
func (t *WorstTracker) Len() int { return t.size }

// Struggling reports sustained poor play: at least three retained
// intervals, and even the best of them under 50% accuracy.
func (t *WorstTracker) Struggling() bool {
	min, ok := t.WorstMin()
	return ok && t.size >= strugglingMinCount && min > strugglingBadness
}

func (t *WorstTracker) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if t.heap[parent] <= t.heap[i] {
			return
		}
		t.heap[parent], t.heap[i] = t.heap[i], t.heap[parent]
		i = parent
	}
}

func (t *WorstTracker) siftDown(i int) {
	for {
		smallest := i
		if l := 2*i + 1; l < t.size && t.heap[l] < t.heap[smallest] {
			smallest = l
		}
		if r := 2*i + 2; r < t.size && t.heap[r] < t.heap[smallest] {
			smallest = r
		}
		if smallest == i {
			return
		}
		t.heap[i], t.heap[smallest] = t.heap[smallest], t.heap[i]
		i = smallest
	}
}
