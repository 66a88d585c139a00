package services

import (
	"errors"
	"fmt"
	"sort"

	"checkin-forecast/models"
)

var ErrInvalidInstanceCount = errors.New("instance count must be at least 1 when hours are present")

// BuildHistogram bins hours by distinct value and divides each bin's count by
// instanceCount. Hours with no check-ins get no bin. An empty hours slice
// yields an empty histogram.
func BuildHistogram(hours []int, instanceCount int) (models.HourlyHistogram, error) {
	if len(hours) == 0 {
		return models.HourlyHistogram{Hours: []int{}, Counts: []int{}, Averages: []float64{}}, nil
	}
	if instanceCount < 1 {
		return models.HourlyHistogram{}, fmt.Errorf("%w: got %d for %d hours", ErrInvalidInstanceCount, instanceCount, len(hours))
	}

	counts := make(map[int]int)
	for _, h := range hours {
		counts[h]++
	}

	bins := make([]int, 0, len(counts))
	for h := range counts {
		bins = append(bins, h)
	}
	sort.Ints(bins)

	hist := models.HourlyHistogram{
		Hours:    bins,
		Counts:   make([]int, len(bins)),
		Averages: make([]float64, len(bins)),
	}
	for i, h := range bins {
		hist.Counts[i] = counts[h]
		hist.Averages[i] = float64(counts[h]) / float64(instanceCount)
	}
	return hist, nil
}
