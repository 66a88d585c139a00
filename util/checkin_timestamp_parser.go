package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"checkin-forecast/models/checkin"
)

const (
	meridiemAM = "AM"
	meridiemPM = "PM"
)

// ParseCheckInTimestamp converts "M/D/YYYY H:MM:SS AM|PM" into a Timestamp.
// 12 AM becomes hour 0 and 12 PM stays 12.
func ParseCheckInTimestamp(raw string) (checkin.Timestamp, error) {
	tokens := strings.Fields(raw)
	if len(tokens) != 3 {
		return checkin.Timestamp{}, formatErr(raw, "expected 3 tokens (date, time, meridiem), got %d", len(tokens))
	}

	date, err := splitInts(raw, tokens[0], "/", "date")
	if err != nil {
		return checkin.Timestamp{}, err
	}
	clock, err := splitInts(raw, tokens[1], ":", "time")
	if err != nil {
		return checkin.Timestamp{}, err
	}

	meridiem := tokens[2]
	if meridiem != meridiemAM && meridiem != meridiemPM {
		return checkin.Timestamp{}, formatErr(raw, "meridiem must be AM or PM, got %q", meridiem)
	}

	hour := clock[0]
	if hour < 1 || hour > 12 {
		return checkin.Timestamp{}, formatErr(raw, "12-hour clock value %d out of range 1-12", hour)
	}
	switch {
	case meridiem == meridiemPM && hour != 12:
		hour += 12
	case meridiem == meridiemAM && hour == 12:
		hour = 0
	}

	ts := checkin.Timestamp{
		Year:   date[2],
		Month:  date[0],
		Day:    date[1],
		Hour:   hour,
		Minute: clock[1],
		Second: clock[2],
	}
	if err := validateTimestamp(raw, ts); err != nil {
		return checkin.Timestamp{}, err
	}
	return ts, nil
}

// ParseCheckInTimestamps parses every record in order and stops at the first
// malformed one. The returned slice is newly allocated.
func ParseCheckInTimestamps(records []checkin.RawRecord) ([]checkin.Timestamp, error) {
	out := make([]checkin.Timestamp, 0, len(records))
	for i, r := range records {
		ts, err := ParseCheckInTimestamp(r.DateTime)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out = append(out, ts)
	}
	return out, nil
}

func splitInts(raw, token, sep, what string) ([3]int, error) {
	var out [3]int
	parts := strings.Split(token, sep)
	if len(parts) != 3 {
		return out, formatErr(raw, "%s %q must have 3 %q-separated fields", what, token, sep)
	}
	for i, p := range parts {
		if p == "" || strings.IndexFunc(p, isNotDigit) >= 0 {
			return out, formatErr(raw, "%s field %q is not numeric", what, p)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return out, formatErr(raw, "%s field %q: %v", what, p, err)
		}
		out[i] = n
	}
	return out, nil
}

func isNotDigit(r rune) bool {
	return r < '0' || r > '9'
}

func validateTimestamp(raw string, ts checkin.Timestamp) error {
	if ts.Year < 1 {
		return formatErr(raw, "year %d out of range", ts.Year)
	}
	if ts.Month < 1 || ts.Month > 12 {
		return formatErr(raw, "month %d out of range 1-12", ts.Month)
	}
	if last := daysIn(ts.Year, ts.Month); ts.Day < 1 || ts.Day > last {
		return formatErr(raw, "day %d out of range 1-%d", ts.Day, last)
	}
	if ts.Hour > 23 {
		return formatErr(raw, "hour %d out of range 0-23", ts.Hour)
	}
	if ts.Minute > 59 {
		return formatErr(raw, "minute %d out of range 0-59", ts.Minute)
	}
	if ts.Second > 59 {
		return formatErr(raw, "second %d out of range 0-59", ts.Second)
	}
	return nil
}

// daysIn returns the number of days in month of year.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func formatErr(raw, format string, args ...interface{}) error {
	return &FormatError{Input: raw, Reason: fmt.Sprintf(format, args...)}
}
