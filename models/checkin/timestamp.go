package checkin

import (
	"fmt"
	"time"
)

// Timestamp is a parsed check-in time. Hour is always 0-23.
type Timestamp struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// Time returns the wall-clock time of t in loc.
func (t Timestamp) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(t.Year, time.Month(t.Month), t.Day, t.Hour, t.Minute, t.Second, 0, loc)
}

// Weekday of the calendar date, independent of any time zone.
func (t Timestamp) Weekday() Weekday {
	return FromTimeWeekday(t.Time(time.UTC).Weekday())
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
}
