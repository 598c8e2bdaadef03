package mastery

// WindowSize bounds the per-skill outcome history. Mastery is judged only
// on the most recent WindowSize attempts.
const WindowSize = 10

// outcomeWindow is a fixed-capacity circular buffer of attempt outcomes.
// Memory per skill is bounded regardless of how many attempts arrive.
type outcomeWindow struct {
	buf  [WindowSize]bool
	head int // index of the oldest entry
	size int
}

// Push appends an outcome, evicting the oldest once the window is full.
func (w *outcomeWindow) Push(correct bool) {
	if w.size < WindowSize {
		w.buf[(w.head+w.size)%WindowSize] = correct
		w.size++
		return
	}
	w.buf[w.head] = correct
	w.head = (w.head + 1) % WindowSize
}

// Len returns the number of outcomes currently held.
func (w *outcomeWindow) Len() int {
	return w.size
}

// CorrectCount returns how many outcomes in the window are correct.
func (w *outcomeWindow) CorrectCount() int {
	n := 0
	for i := 0; i < w.size; i++ {
		if w.buf[(w.head+i)%WindowSize] {
			n++
		}
	}
	return n
}

// Outcomes returns the window contents, oldest first.
func (w *outcomeWindow) Outcomes() []bool {
	out := make([]bool, w.size)
	for i := 0; i < w.size; i++ {
		out[i] = w.buf[(w.head+i)%WindowSize]
	}
	return out
}

// Reset empties the window.
func (w *outcomeWindow) Reset() {
	w.head = 0
	w.size = 0
}
