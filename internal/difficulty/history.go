package difficulty

import "errors"

// ErrEmptyHistory reports a pop from a drained difficulty history. The
// engine seeds and re-seeds the history so the error is unreachable
// through its API; seeing it means a broken invariant.
var ErrEmptyHistory = errors.New("difficulty: history is empty")

// History is the bounded undo stack of difficulty levels, a
// fixed-capacity deque used stack-like: pushes and pops happen at the
// top, and pushing past capacity drops the bottom (oldest) entry so
// undo keeps working against the most recent transitions.
type History struct {
	buf  []Level
	head int // index of the bottom entry
	size int
}

// NewHistory returns a history holding at most capacity levels, seeded
// with initial.
func NewHistory(capacity int, initial Level) *History {
	h := &History{buf: make([]Level, capacity)}
	h.Push(initial)
	return h
}

// Push places level on top of the stack, evicting the bottom entry
// when full.
func (h *History) Push(level Level) {
	if h.size < len(h.buf) {
		h.buf[(h.head+h.size)%len(h.buf)] = level
		h.size++
		return
	}
	h.buf[h.head] = level
	h.head = (h.head + 1) % len(h.buf)
}

// Pop removes and returns the top entry.
func (h *History) Pop() (Level, error) {
	if h.size == 0 {
		return Easy, ErrEmptyHistory
	}
	top := h.buf[(h.head+h.size-1)%len(h.buf)]
	h.size--
	return top, nil
}

// Peek returns the top entry without removing it.
func (h *History) Peek() (Level, error) {
	if h.size == 0 {
		return Easy, ErrEmptyHistory
	}
	return h.buf[(h.head+h.size-1)%len(h.buf)], nil
}

// Len reports how many levels the history currently holds.
func (h *History) Len() int { return h.size }

// Undo discards the top entry; the new top becomes the active level.
// Draining the stack re-seeds it with Easy, so the history is never
// left empty.
func (h *History) Undo() Level {
	_, _ = h.Pop()
	if top, err := h.Peek(); err == nil {
		return top
	}
	h.Push(Easy)
	return Easy
}
