package services

import (
	"time"

	"checkin-forecast/models/checkin"
)

// FilterByWindow keeps the timestamps at or after now minus the window,
// interpreting them in now's location. The result is a new slice in input
// order; an unbounded window copies everything.
func FilterByWindow(timestamps []checkin.Timestamp, now time.Time, window checkin.HistoryWindow) []checkin.Timestamp {
	start, bounded := window.Start(now)
	out := make([]checkin.Timestamp, 0, len(timestamps))
	for _, ts := range timestamps {
		if bounded && ts.Time(now.Location()).Before(start) {
			continue
		}
		out = append(out, ts)
	}
	return out
}
