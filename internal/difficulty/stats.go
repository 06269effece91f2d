package difficulty

// Aggregate reduces samples into summed totals with a derived
// accuracy. The input goes through the stable goodness sort first; the
// sums do not depend on order, but aggregation and the diagnostics in
// SortByGoodness share one deterministic path this way. An empty or
// nil input aggregates to all-zero stats with accuracy 0.
func Aggregate(samples []Sample) AggregateStats {
	var agg AggregateStats
	for _, s := range SortByGoodness(samples) {
		agg.Kills += s.Kills
		agg.Shots += s.Shots
		agg.Bypassed += s.Bypassed
		agg.ScoreDelta += s.ScoreDelta
	}
	if agg.Shots > 0 {
		agg.Accuracy = float64(agg.Kills) / float64(agg.Shots)
	}
	return agg
}

// SortByGoodness returns a copy of samples ordered worst to best by
// their scalar score. Equal scores keep their input order, so
// diagnostic output is deterministic.
func SortByGoodness(samples []Sample) []Sample {
	out := make([]Sample, len(samples))
	copy(out, samples)
	mergeSort(out)
	return out
}

// mergeSort is a classic top-down stable merge sort. The input slices
// here are small and bounded, so the extra allocations per level do
// not matter.
func mergeSort(s []Sample) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	left := make([]Sample, mid)
	right := make([]Sample, len(s)-mid)
	copy(left, s[:mid])
	copy(right, s[mid:])
	mergeSort(left)
	mergeSort(right)
	merge(s, left, right)
}

func merge(dst, left, right []Sample) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		// <= keeps equal scores in input order.
		if left[i].Score() <= right[j].Score() {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		dst[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		dst[k] = right[j]
		j++
		k++
	}
}
