package usbrelay

// history is a bounded most-recent-first log of raw bytes. Insert puts
// the new byte at the front; once the capacity is reached the oldest
// byte falls off the back.
type history struct {
	buf []byte
}

func newHistory(capacity int) *history {
	return &history{buf: make([]byte, 0, capacity)}
}

func (h *history) Insert(b byte) {
	if len(h.buf) < cap(h.buf) {
		h.buf = h.buf[:len(h.buf)+1]
	}
	copy(h.buf[1:], h.buf)
	h.buf[0] = b
}

// Head returns the most recently inserted byte, or 0 if nothing has
// been logged yet.
func (h *history) Head() byte {
	if len(h.buf) == 0 {
		return 0
	}
	return h.buf[0]
}

func (h *history) Len() int {
	return len(h.buf)
}

// Snapshot returns a copy of the log, most recent byte first.
func (h *history) Snapshot() []byte {
	out := make([]byte, len(h.buf))
	copy(out, h.buf)
	return out
}
