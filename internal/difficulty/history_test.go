package difficulty

import (
	"errors"
	"testing"
)

func TestHistorySeed(t *testing.T) {
	h := NewHistory(30, Easy)

	if h.Len() != 1 {
		t.Fatalf("Len() = %d after seeding, want 1", h.Len())
	}
	if top, err := h.Peek(); err != nil || top != Easy {
		t.Errorf("Peek() = %v, %v; want Easy, nil", top, err)
	}
}

func TestHistoryPushPopOrder(t *testing.T) {
	h := NewHistory(30, Easy)
	h.Push(Medium)
	h.Push(Hard)

	for _, want := range []Level{Hard, Medium, Easy} {
		got, err := h.Pop()
		if err != nil {
			t.Fatalf("Pop() error = %v", err)
		}
		if got != want {
			t.Errorf("Pop() = %v, want %v", got, want)
		}
	}

	if _, err := h.Pop(); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("Pop() on drained history error = %v, want ErrEmptyHistory", err)
	}
}

func TestHistoryOverflowDropsBottom(t *testing.T) {
	h := NewHistory(3, Easy)
	h.Push(Medium)
	h.Push(Hard) // full: Easy, Medium, Hard

	h.Push(Easy) // Easy at the bottom is evicted

	if h.Len() != 3 {
		t.Fatalf("Len() = %d after overflow, want 3", h.Len())
	}
	for _, want := range []Level{Easy, Hard, Medium} {
		got, err := h.Pop()
		if err != nil {
			t.Fatalf("Pop() error = %v", err)
		}
		if got != want {
			t.Errorf("Pop() = %v, want %v", got, want)
		}
	}
}

func TestHistoryBoundedUnderLongUse(t *testing.T) {
	h := NewHistory(30, Easy)
	levels := []Level{Medium, Hard, Medium, Easy}
	for i := 0; i < 200; i++ {
		h.Push(levels[i%len(levels)])
		if h.Len() < 1 || h.Len() > 30 {
			t.Fatalf("Len() = %d after %d pushes, want within [1,30]", h.Len(), i+1)
		}
	}
	if h.Len() != 30 {
		t.Errorf("Len() = %d after long use, want 30", h.Len())
	}
}

func TestHistoryUndo(t *testing.T) {
	h := NewHistory(30, Easy)
	h.Push(Medium)
	h.Push(Hard)

	if got := h.Undo(); got != Medium {
		t.Errorf("Undo() = %v, want Medium", got)
	}
	if got := h.Undo(); got != Easy {
		t.Errorf("Undo() = %v, want Easy", got)
	}

	// Undoing the last entry re-seeds rather than draining.
	if got := h.Undo(); got != Easy {
		t.Errorf("Undo() on seeded history = %v, want Easy", got)
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d after undo past the seed, want 1", h.Len())
	}
}
