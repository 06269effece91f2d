package difficulty

import (
	"sort"
	"testing"
)

func TestTrackerFillsThenReplacesOnlyWorse(t *testing.T) {
	tr := NewWorstTracker(10)

	fill := []float64{0.3, 0.1, 0.9, 0.8, 0.2, 0.5, 0.7, 0.6, 0.4, 0.95}
	for _, b := range fill {
		tr.Observe(b)
	}
	if tr.Len() != 10 {
		t.Fatalf("Len() = %d after 10 observations, want 10", tr.Len())
	}
	if min, ok := tr.WorstMin(); !ok || min != 0.1 {
		t.Fatalf("WorstMin() = %v, %v; want 0.1, true", min, ok)
	}

	// Strictly worse than the minimum displaces it.
	tr.Observe(0.15)
	if min, _ := tr.WorstMin(); min != 0.15 {
		t.Errorf("WorstMin() = %v after observing 0.15, want 0.15", min)
	}

	// Equal to the minimum is discarded.
	tr.Observe(0.15)
	if min, _ := tr.WorstMin(); min != 0.15 {
		t.Errorf("WorstMin() = %v after equal observation, want 0.15", min)
	}

	// Better than the minimum is discarded.
	tr.Observe(0.05)
	if min, _ := tr.WorstMin(); min != 0.15 {
		t.Errorf("WorstMin() = %v after better observation, want 0.15", min)
	}
	if tr.Len() != 10 {
		t.Errorf("Len() = %d, want 10", tr.Len())
	}
}

func TestTrackerMatchesTrueWorstTen(t *testing.T) {
	// A longer mixed sequence; the retained minimum must always equal
	// the 10th-largest badness seen so far.
	seq := []float64{
		0.42, 0.11, 0.93, 0.27, 0.68, 0.05, 0.88, 0.31, 0.74, 0.50,
		0.19, 0.83, 0.61, 0.07, 0.99, 0.45, 0.36, 0.70, 0.58, 0.22,
	}

	tr := NewWorstTracker(10)
	var seen []float64
	for _, b := range seq {
		tr.Observe(b)
		seen = append(seen, b)

		want := trueWorstMin(seen, 10)
		got, ok := tr.WorstMin()
		if !ok {
			t.Fatalf("WorstMin() not ok after %d observations", len(seen))
		}
		if got != want {
			t.Errorf("after %d observations WorstMin() = %v, want %v", len(seen), got, want)
		}
		if tr.Len() > 10 {
			t.Fatalf("Len() = %d, capacity exceeded", tr.Len())
		}
	}
}

// trueWorstMin is the reference answer: the smallest of the k largest
// values observed.
func trueWorstMin(seen []float64, k int) float64 {
	sorted := make([]float64, len(seen))
	copy(sorted, seen)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	if len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted[len(sorted)-1]
}

func TestTrackerWorstMinEmpty(t *testing.T) {
	tr := NewWorstTracker(10)
	if _, ok := tr.WorstMin(); ok {
		t.Error("WorstMin() ok = true on empty tracker, want false")
	}
}

func TestTrackerStruggling(t *testing.T) {
	tr := NewWorstTracker(10)

	// Two terrible intervals are not enough evidence.
	tr.Observe(0.8)
	tr.Observe(0.9)
	if tr.Struggling() {
		t.Error("Struggling() = true with 2 observations, want false")
	}

	// Third bad one tips it.
	tr.Observe(0.7)
	if !tr.Struggling() {
		t.Error("Struggling() = false with 3 bad observations, want true")
	}

	// One good interval below the fill mark pulls the minimum down.
	tr.Observe(0.2)
	if tr.Struggling() {
		t.Error("Struggling() = true after a good interval entered, want false")
	}
}
