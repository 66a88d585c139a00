package models

// HourlyHistogram is the per-weekday chart input. Hours holds the distinct
// check-in hours in ascending order; Counts and Averages are parallel to it.
type HourlyHistogram struct {
	Hours    []int     `json:"hours"`
	Counts   []int     `json:"counts"`
	Averages []float64 `json:"averages"`
}

// Empty reports whether the histogram has no bins.
func (h HourlyHistogram) Empty() bool {
	return len(h.Hours) == 0
}
