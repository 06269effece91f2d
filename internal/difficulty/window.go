package difficulty

// Window is a fixed-capacity ring buffer over the most recent samples.
// Pushing into a full window evicts the oldest entry.
type Window struct {
	buf  []Sample
	head int
	size int
}

// NewWindow returns an empty window holding at most capacity samples.
func NewWindow(capacity int) *Window {
	return &Window{buf: make([]Sample, capacity)}
}

// Push appends s as the newest entry, dropping the oldest one first
// when the window is full.
func (w *Window) Push(s Sample) {
	if w.size < len(w.buf) {
		w.buf[(w.head+w.size)%len(w.buf)] = s
		w.size++
		return
	}
	w.buf[w.head] = s
	w.head = (w.head + 1) % len(w.buf)
}

// Len reports how many samples the window currently holds.
func (w *Window) Len() int { return w.size }

// Snapshot returns the window contents oldest first. The result is a
// copy; mutating it does not affect the window.
func (w *Window) Snapshot() []Sample {
	out := make([]Sample, w.size)
	for i := 0; i < w.size; i++ {
		out[i] = w.buf[(w.head+i)%len(w.buf)]
	}
	return out
}
