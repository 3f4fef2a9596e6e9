package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDebounce is the window rapid keystrokes are coalesced within
// before a remote lookup fires.
const DefaultDebounce = 250 * time.Millisecond

// debounceMsg fires when a debounce window elapses. Only the message
// carrying the latest sequence number is still valid.
type debounceMsg struct {
	seq uint64
}

// Debouncer coalesces rapid triggers into a single message. Every
// Trigger bumps the sequence and schedules a debounceMsg; Fired reports
// whether a received message is the most recent one, so stale timers
// from earlier keystrokes are ignored.
type Debouncer struct {
	duration time.Duration
	seq      uint64
}

// NewDebouncer creates a debouncer. A zero duration uses
// DefaultDebounce.
func NewDebouncer(duration time.Duration) *Debouncer {
	if duration == 0 {
		duration = DefaultDebounce
	}
	return &Debouncer{duration: duration}
}

// Trigger schedules a debounce message for the current input state.
func (d *Debouncer) Trigger() tea.Cmd {
	d.seq++
	seq := d.seq
	return tea.Tick(d.duration, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

// Fired reports whether msg is the latest scheduled debounce message.
func (d *Debouncer) Fired(msg tea.Msg) bool {
	m, ok := msg.(debounceMsg)
	return ok && m.seq == d.seq
}

// Cancel invalidates any pending debounce message.
func (d *Debouncer) Cancel() {
	d.seq++
}

// Duration returns the debounce window.
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}
