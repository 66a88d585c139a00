package checkin

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HistoryWindow is either unbounded or the trailing N days up to "now".
type HistoryWindow struct {
	days int
}

// Unbounded keeps every record.
func Unbounded() HistoryWindow {
	return HistoryWindow{}
}

// NewTrailingWindow builds a window covering the last days days.
func NewTrailingWindow(days int) (HistoryWindow, error) {
	if days < 1 {
		return HistoryWindow{}, fmt.Errorf("history window must be at least 1 day, got %d", days)
	}
	return HistoryWindow{days: days}, nil
}

// ParseHistoryWindow accepts "unbounded" (also "all", "false", "") or a positive day count.
func ParseHistoryWindow(s string) (HistoryWindow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unbounded", "all", "false":
		return Unbounded(), nil
	}
	days, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return HistoryWindow{}, fmt.Errorf("invalid history window %q: %w", s, err)
	}
	return NewTrailingWindow(days)
}

func (w HistoryWindow) IsUnbounded() bool { return w.days == 0 }

// Days returns the window length, 0 when unbounded.
func (w HistoryWindow) Days() int { return w.days }

// Start returns the earliest instant kept for the given now.
// ok is false when the window is unbounded.
func (w HistoryWindow) Start(now time.Time) (start time.Time, ok bool) {
	if w.IsUnbounded() {
		return time.Time{}, false
	}
	return now.Add(-time.Duration(w.days) * 24 * time.Hour), true
}

func (w HistoryWindow) String() string {
	if w.IsUnbounded() {
		return "unbounded"
	}
	return strconv.Itoa(w.days)
}
