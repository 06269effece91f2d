package difficulty

import "testing"

func TestAggregateEmpty(t *testing.T) {
	for _, samples := range [][]Sample{nil, {}} {
		agg := Aggregate(samples)
		if agg.Kills != 0 || agg.Shots != 0 || agg.Bypassed != 0 || agg.ScoreDelta != 0 {
			t.Errorf("Aggregate(%v) = %+v, want all-zero", samples, agg)
		}
		if agg.Accuracy != 0 {
			t.Errorf("Aggregate(%v).Accuracy = %v, want 0", samples, agg.Accuracy)
		}
	}
}

func TestAggregateSingle(t *testing.T) {
	s := Sample{Kills: 3, Shots: 4, Bypassed: 1, ScoreDelta: 28}
	agg := Aggregate([]Sample{s})

	if agg.Kills != 3 || agg.Shots != 4 || agg.Bypassed != 1 || agg.ScoreDelta != 28 {
		t.Errorf("Aggregate single = %+v, want the sample's own counters", agg)
	}
	if agg.Accuracy != s.Accuracy() {
		t.Errorf("Aggregate single accuracy = %v, want %v", agg.Accuracy, s.Accuracy())
	}
}

func TestAggregateSums(t *testing.T) {
	samples := []Sample{
		{Kills: 2, Shots: 5, Bypassed: 0, ScoreDelta: 20},
		{Kills: 4, Shots: 5, Bypassed: 2, ScoreDelta: 30},
		{Kills: 0, Shots: 0, Bypassed: 3, ScoreDelta: -6},
	}
	agg := Aggregate(samples)

	if agg.Kills != 6 || agg.Shots != 10 || agg.Bypassed != 5 || agg.ScoreDelta != 44 {
		t.Errorf("Aggregate = %+v, want totals 6/10/5/44", agg)
	}
	if agg.Accuracy != 0.6 {
		t.Errorf("Aggregate accuracy = %v, want 0.6", agg.Accuracy)
	}
}

func TestSortByGoodnessOrdersWorstFirst(t *testing.T) {
	samples := []Sample{
		{Kills: 9, Shots: 10, ScoreDelta: 90}, // strong interval
		{Kills: 0, Shots: 10, Bypassed: 4},    // weak interval
		{Kills: 5, Shots: 10, ScoreDelta: 50}, // middling
	}

	sorted := SortByGoodness(samples)
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Score() > sorted[i].Score() {
			t.Fatalf("not ascending at %d: %d > %d", i, sorted[i-1].Score(), sorted[i].Score())
		}
	}
}

func TestSortByGoodnessStableOnTies(t *testing.T) {
	// Same score, different shapes: 1 kill + perfect accuracy vs a
	// bare score delta of 110.
	a := Sample{Kills: 1, Shots: 1}
	b := Sample{ScoreDelta: 110}
	if a.Score() != b.Score() {
		t.Fatalf("test setup broken: scores %d vs %d must tie", a.Score(), b.Score())
	}

	sorted := SortByGoodness([]Sample{a, b})
	if sorted[0] != a || sorted[1] != b {
		t.Errorf("tie order changed: got %+v", sorted)
	}

	sorted = SortByGoodness([]Sample{b, a})
	if sorted[0] != b || sorted[1] != a {
		t.Errorf("tie order changed: got %+v", sorted)
	}
}

func TestSortByGoodnessDoesNotMutateInput(t *testing.T) {
	samples := []Sample{
		{Kills: 9, Shots: 10, ScoreDelta: 90},
		{Kills: 0, Shots: 10, Bypassed: 4},
	}
	SortByGoodness(samples)

	if samples[0].Kills != 9 || samples[1].Kills != 0 {
		t.Errorf("input mutated: %+v", samples)
	}
}

func TestSampleAccuracy(t *testing.T) {
	if acc := (Sample{Kills: 3, Shots: 0}).Accuracy(); acc != 0 {
		t.Errorf("Accuracy with zero shots = %v, want 0", acc)
	}
	if acc := (Sample{Kills: 1, Shots: 10}).Accuracy(); acc != 0.1 {
		t.Errorf("Accuracy = %v, want 0.1", acc)
	}
}

func TestScoreGoldenCase(t *testing.T) {
	// 8 kills at 8/9 accuracy with +80 score and no bypasses:
	// 80 + 80 + 88 - 0.
	s := Sample{Kills: 8, Shots: 9, Bypassed: 0, ScoreDelta: 80}
	if got := s.Score(); got != 248 {
		t.Errorf("Score() = %d, want 248", got)
	}

	agg := NewAggregateStats(8, 9, 0, 80)
	if got := agg.Score(); got != 248 {
		t.Errorf("AggregateStats Score() = %d, want 248", got)
	}
}

func TestScoreCanGoNegative(t *testing.T) {
	s := Sample{Kills: 0, Shots: 5, Bypassed: 6, ScoreDelta: -12}
	if got := s.Score(); got != -42 {
		t.Errorf("Score() = %d, want -42", got)
	}
}

func TestNewAggregateStatsDerivesAccuracy(t *testing.T) {
	agg := NewAggregateStats(1, 4, 2, 6)
	if agg.Accuracy != 0.25 {
		t.Errorf("Accuracy = %v, want 0.25", agg.Accuracy)
	}

	agg = NewAggregateStats(0, 0, 0, 0)
	if agg.Accuracy != 0 {
		t.Errorf("Accuracy with zero shots = %v, want 0", agg.Accuracy)
	}
}
