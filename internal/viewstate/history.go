package viewstate

// History is the session's fragment history: each state-changing action
// pushes the new fragment, and Back/Forward walk it the way a browser does.
// The empty string is a valid entry and means the default view.
type History struct {
	entries []string
	pos     int
}

// NewHistory starts a history at fragment.
func NewHistory(fragment string) *History {
	return &History{entries: []string{fragment}}
}

// Current returns the fragment at the cursor.
func (h *History) Current() string {
	return h.entries[h.pos]
}

// Push records fragment as the newest entry, dropping any forward entries.
// Pushing the current fragment again is a no-op.
func (h *History) Push(fragment string) {
	if fragment == h.Current() {
		return
	}
	h.entries = append(h.entries[:h.pos+1], fragment)
	h.pos++
}

// Back moves one entry back and returns it. ok is false at the start.
func (h *History) Back() (fragment string, ok bool) {
	if h.pos == 0 {
		return h.Current(), false
	}
	h.pos--
	return h.Current(), true
}

// Forward moves one entry forward and returns it. ok is false at the end.
func (h *History) Forward() (fragment string, ok bool) {
	if h.pos == len(h.entries)-1 {
		return h.Current(), false
	}
	h.pos++
	return h.Current(), true
}

// Len is the number of entries.
func (h *History) Len() int { return len(h.entries) }
