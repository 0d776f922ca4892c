// Package history implements the bounded command-history buffer that backs
// each history-enabled input field.
package history

// DefaultCap is the number of committed entries a History retains.
const DefaultCap = 10

// History holds the values committed on one field, oldest first, plus a
// cursor and a one-slot holder for the value that was being typed when
// navigation began. The cursor ranges over [0, len(entries)]; the value
// len(entries) is the live (unsubmitted) position.
type History struct {
	entries    []string
	cursor     int
	pending    string
	hasPending bool
	max        int
}

// New returns a History holding at most max entries. Values below 1 fall
// back to DefaultCap.
func New(max int) *History {
	if max < 1 {
		max = DefaultCap
	}
	return &History{max: max}
}

// Save records v as the session's unsubmitted value, unless one is already
// recorded. Only the first call of a navigation session wins; the slot is
// freed when Next consumes it or Push commits.
func (h *History) Save(v string) {
	if h.hasPending {
		return
	}
	h.pending = v
	h.hasPending = true
}

// Push commits cmd. Empty values and consecutive duplicates are not
// appended; the oldest entry is evicted once the buffer is full. The cursor
// returns to the live position and any saved value is discarded whether or
// not an append happened.
func (h *History) Push(cmd string) {
	if cmd != "" && (len(h.entries) == 0 || h.entries[len(h.entries)-1] != cmd) {
		h.entries = append(h.entries, cmd)
		if len(h.entries) > h.max {
			h.entries = h.entries[1:]
		}
	}
	h.pending = ""
	h.hasPending = false
	h.cursor = len(h.entries)
}

// Prev moves the cursor one step toward older entries and returns the entry
// there. With no history it returns ""; at the oldest entry it keeps
// returning that entry.
func (h *History) Prev() string {
	if h.cursor > 0 {
		h.cursor--
	}
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[h.cursor]
}

// Next moves the cursor one step toward newer entries. At the live position
// it hands back the saved unsubmitted value and clears it, so repeated calls
// there return "".
func (h *History) Next() string {
	if h.cursor < len(h.entries) {
		h.cursor++
	}
	if h.cursor == len(h.entries) {
		v := h.pending
		h.pending = ""
		h.hasPending = false
		return v
	}
	return h.entries[h.cursor]
}

// Reset abandons the current navigation session: the cursor returns to the
// live position and the saved value is discarded.
func (h *History) Reset() {
	h.pending = ""
	h.hasPending = false
	h.cursor = len(h.entries)
}

// Entries returns a copy of the committed entries, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of committed entries.
func (h *History) Len() int {
	return len(h.entries)
}
