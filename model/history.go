package model

// History holds submitted lines oldest-first. The cursor counts back from
// the newest entry; -1 means the user is not browsing.
type History struct {
	entries []string
	cursor  int
}

func NewHistory() *History {
	return &History{cursor: -1}
}

// Push records a submission and ends browsing.
func (h *History) Push(line string) {
	h.entries = append(h.entries, line)
	h.cursor = -1
}

// Older steps one entry back in time. ok is false when already at the oldest entry.
func (h *History) Older() (line string, ok bool) {
	if h.cursor >= len(h.entries)-1 {
		return "", false
	}
	h.cursor++
	return h.entries[len(h.entries)-1-h.cursor], true
}

// Newer steps toward the present. Leaving the newest entry ends browsing
// and yields an empty line. ok is false when not browsing.
func (h *History) Newer() (line string, ok bool) {
	switch {
	case h.cursor > 0:
		h.cursor--
		return h.entries[len(h.entries)-1-h.cursor], true
	case h.cursor == 0:
		h.cursor = -1
		return "", true
	}
	return "", false
}

func (h *History) Cursor() int {
	return h.cursor
}

func (h *History) Len() int {
	return len(h.entries)
}
