package services

import "checkin-forecast/models/checkin"

// noWeekday is the cursor value before the first timestamp is seen.
const noWeekday checkin.Weekday = -1

// AggregateByWeekday buckets check-in hours by weekday.
//
// timestamps must be in chronological order with each calendar day's records
// contiguous. The instance count of a weekday is incremented each time the
// weekday changes between consecutive timestamps, so a contiguous run of the
// same weekday counts once. Input is not sorted here: unsorted input yields
// wrong instance counts.
func AggregateByWeekday(timestamps []checkin.Timestamp) checkin.WeekBuckets {
	var buckets checkin.WeekBuckets
	for _, d := range checkin.AllWeekdays() {
		buckets[d] = checkin.WeekdayBucket{Weekday: d, Hours: []int{}}
	}

	current := noWeekday
	for _, ts := range timestamps {
		d := ts.Weekday()
		buckets[d].Hours = append(buckets[d].Hours, ts.Hour)
		if d != current {
			current = d
			buckets[d].InstanceCount++
		}
	}
	return buckets
}
