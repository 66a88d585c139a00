package checkin

// WeekdayBucket collects the check-in hours seen on one weekday.
// InstanceCount is the number of calendar occurrences of that weekday
// observed while scanning and is the divisor used for averaging.
type WeekdayBucket struct {
	Weekday       Weekday `json:"weekday"`
	Hours         []int   `json:"hours"`
	InstanceCount int     `json:"instance_count"`
}

// WeekBuckets holds one bucket per weekday, indexed by Weekday.
type WeekBuckets [DaysInWeek]WeekdayBucket

// TotalCheckIns is the number of hours recorded across all weekdays.
func (b *WeekBuckets) TotalCheckIns() int {
	n := 0
	for _, bucket := range b {
		n += len(bucket.Hours)
	}
	return n
}
