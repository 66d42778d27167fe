package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DebounceMsg is delivered when a debounce window closes.
type DebounceMsg struct {
	Key string
	Tag int
}

// Debouncer coalesces bursts of triggers into one DebounceMsg. Only the
// message from the latest Trigger is accepted by Fire.
type Debouncer struct {
	key  string
	wait time.Duration
	tag  int
}

// NewDebouncer returns a Debouncer whose messages carry key.
func NewDebouncer(key string, wait time.Duration) Debouncer {
	return Debouncer{key: key, wait: wait}
}

// Trigger starts a new window, superseding any pending one.
func (d *Debouncer) Trigger() tea.Cmd {
	d.tag++
	key, tag := d.key, d.tag
	return tea.Tick(d.wait, func(time.Time) tea.Msg {
		return DebounceMsg{Key: key, Tag: tag}
	})
}

// Cancel drops any pending window.
func (d *Debouncer) Cancel() {
	d.tag++
}

// Fire reports whether msg closes this debouncer's current window.
func (d Debouncer) Fire(msg DebounceMsg) bool {
	return msg.Key == d.key && msg.Tag == d.tag
}
