package models

import (
	"time"

	"checkin-forecast/models/checkin"
)

// WeekdayForecast is the expected hourly volume for one weekday.
type WeekdayForecast struct {
	Weekday       checkin.Weekday `json:"-"`
	WeekdayName   string          `json:"weekday"`
	InstanceCount int             `json:"instance_count"`
	CheckIns      int             `json:"check_ins"`
	Histogram     HourlyHistogram `json:"histogram"`
	Title         string          `json:"title"`
}

// WeeklyForecast is the full result of one forecast build.
type WeeklyForecast struct {
	Facility    string            `json:"facility"`
	GeneratedAt time.Time         `json:"generated_at"`
	WindowDays  int               `json:"window_days,omitempty"`
	Unbounded   bool              `json:"unbounded"`
	Days        []WeekdayForecast `json:"days"`
}

// Day returns the forecast for d, or nil when it is absent.
func (f *WeeklyForecast) Day(d checkin.Weekday) *WeekdayForecast {
	for i := range f.Days {
		if f.Days[i].Weekday == d {
			return &f.Days[i]
		}
	}
	return nil
}
