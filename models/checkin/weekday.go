package checkin

import (
	"fmt"
	"strings"
	"time"
)

// Weekday indexes the fixed Monday..Sunday domain. Monday is 0.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysInWeek is the size of the weekday domain.
const DaysInWeek = 7

var weekdayNames = [DaysInWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Valid reports whether d is one of the seven weekdays.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// FromTimeWeekday maps time.Weekday (Sunday=0) onto Weekday (Monday=0).
func FromTimeWeekday(wd time.Weekday) Weekday {
	return Weekday((int(wd) + 6) % DaysInWeek)
}

// ParseWeekday accepts full or three-letter English names, case-insensitive.
func ParseWeekday(name string) (Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, w := range weekdayNames {
		lw := strings.ToLower(w)
		if n == lw || n == lw[:3] {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

// AllWeekdays returns Monday..Sunday in order.
func AllWeekdays() []Weekday {
	out := make([]Weekday, DaysInWeek)
	for i := range out {
		out[i] = Weekday(i)
	}
	return out
}
