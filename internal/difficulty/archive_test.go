package difficulty

import (
	"sort"
	"testing"
)

func TestArchiveAscendingWithDuplicates(t *testing.T) {
	scores := []int{248, -42, 17, 248, 0, 99, -42, 248, 5}

	a := NewArchive()
	for _, s := range scores {
		a.Record(s)
	}

	if a.Len() != len(scores) {
		t.Fatalf("Len() = %d, want %d", a.Len(), len(scores))
	}

	want := make([]int, len(scores))
	copy(want, scores)
	sort.Ints(want)

	got := a.Ascending()
	if len(got) != len(want) {
		t.Fatalf("Ascending() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ascending()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestArchiveMinMax(t *testing.T) {
	a := NewArchive()

	if _, ok := a.Min(); ok {
		t.Error("Min() ok = true on empty archive, want false")
	}
	if _, ok := a.Max(); ok {
		t.Error("Max() ok = true on empty archive, want false")
	}

	for _, s := range []int{10, -3, 42, 7} {
		a.Record(s)
	}
	if lo, ok := a.Min(); !ok || lo != -3 {
		t.Errorf("Min() = %d, %v; want -3, true", lo, ok)
	}
	if hi, ok := a.Max(); !ok || hi != 42 {
		t.Errorf("Max() = %d, %v; want 42, true", hi, ok)
	}
}

func TestArchiveStaysBalanced(t *testing.T) {
	// Ascending, descending, and duplicate-heavy insert orders are the
	// degenerate cases for an unbalanced tree.
	orders := map[string][]int{}

	asc := make([]int, 100)
	desc := make([]int, 100)
	for i := 0; i < 100; i++ {
		asc[i] = i
		desc[i] = 100 - i
	}
	orders["ascending"] = asc
	orders["descending"] = desc
	orders["duplicates"] = []int{5, 5, 5, 1, 1, 9, 9, 9, 9, 5, 1, 9}

	for name, scores := range orders {
		t.Run(name, func(t *testing.T) {
			a := NewArchive()
			for _, s := range scores {
				a.Record(s)
				if !balanced(a.root) {
					t.Fatalf("tree unbalanced after inserting %d", s)
				}
			}
		})
	}
}

// balanced walks the whole tree checking the AVL invariant and that
// stored heights are consistent.
func balanced(n *archiveNode) bool {
	if n == nil {
		return true
	}
	if bf := balanceFactor(n); bf < -1 || bf > 1 {
		return false
	}
	if n.height != 1+max(nodeHeight(n.left), nodeHeight(n.right)) {
		return false
	}
	return balanced(n.left) && balanced(n.right)
}

func TestArchiveHeightLogarithmic(t *testing.T) {
	a := NewArchive()
	for i := 0; i < 1024; i++ {
		a.Record(i)
	}

	// An AVL tree over 1024 distinct keys is at most ~1.44*log2(n)
	// tall; 15 gives slack over the exact bound.
	if h := nodeHeight(a.root); h > 15 {
		t.Errorf("height = %d after 1024 ordered inserts, want <= 15", h)
	}
}
