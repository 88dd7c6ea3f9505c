// Package tui provides a Bubble Tea terminal UI for the game.
package tui

import "strings"

// History remembers submitted commands, oldest first, for recall with the
// arrow keys and completion with tab.
type History struct {
	entries []string
	max     int
	back    int // how many steps back from the newest entry; 0 when not recalling
}

// NewHistory creates a history that keeps at most max commands.
func NewHistory(max int) *History {
	return &History{entries: make([]string, 0, max), max: max}
}

// Push records a command unless it repeats the newest one.
func (h *History) Push(cmd string) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	if len(h.entries) > 0 && len(h.entries) >= h.max {
		h.entries = append(h.entries[:0], h.entries[1:]...)
	}
	h.entries = append(h.entries, cmd)
}

// Prev steps to an older command, stopping at the oldest.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.back < len(h.entries) {
		h.back++
	}
	return h.at(), true
}

// Next steps to a newer command. Stepping past the newest returns false
// and ends the recall.
func (h *History) Next() (string, bool) {
	if h.back <= 1 {
		h.back = 0
		return "", false
	}
	h.back--
	return h.at(), true
}

// ResetCursor ends any recall in progress.
func (h *History) ResetCursor() {
	h.back = 0
}

func (h *History) at() string {
	return h.entries[len(h.entries)-h.back]
}

// Complete returns the newest command that extends prefix. An empty prefix
// never completes.
func (h *History) Complete(prefix string) (string, bool) {
	if prefix == "" {
		return "", false
	}
	for i := len(h.entries) - 1; i >= 0; i-- {
		if e := h.entries[i]; len(e) > len(prefix) && strings.HasPrefix(e, prefix) {
			return e, true
		}
	}
	return "", false
}
