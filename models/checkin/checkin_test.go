package checkin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_Weekday(t *testing.T) {
	// 2023-04-17 was a Monday.
	ts := Timestamp{Year: 2023, Month: 4, Day: 17, Hour: 14, Minute: 30}
	assert.Equal(t, Monday, ts.Weekday())

	ts.Day = 23
	assert.Equal(t, Sunday, ts.Weekday())
}

func TestFromTimeWeekday(t *testing.T) {
	assert.Equal(t, Sunday, FromTimeWeekday(time.Sunday))
	assert.Equal(t, Monday, FromTimeWeekday(time.Monday))
	assert.Equal(t, Saturday, FromTimeWeekday(time.Saturday))
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in   string
		want Weekday
	}{
		{"Monday", Monday},
		{"tuesday", Tuesday},
		{" WED ", Wednesday},
		{"sun", Sunday},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWeekday(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseWeekday("Funday")
	assert.Error(t, err)
}

func TestWeekday_String(t *testing.T) {
	assert.Equal(t, "Friday", Friday.String())
	assert.Equal(t, "Weekday(9)", Weekday(9).String())
	assert.Len(t, AllWeekdays(), DaysInWeek)
}

func TestParseHistoryWindow(t *testing.T) {
	w, err := ParseHistoryWindow("unbounded")
	require.NoError(t, err)
	assert.True(t, w.IsUnbounded())

	w, err = ParseHistoryWindow("false")
	require.NoError(t, err)
	assert.True(t, w.IsUnbounded())

	w, err = ParseHistoryWindow("50")
	require.NoError(t, err)
	assert.False(t, w.IsUnbounded())
	assert.Equal(t, 50, w.Days())

	_, err = ParseHistoryWindow("0")
	assert.Error(t, err)
	_, err = ParseHistoryWindow("fifty")
	assert.Error(t, err)
}

func TestHistoryWindow_Start(t *testing.T) {
	now := time.Date(2023, 4, 30, 12, 0, 0, 0, time.UTC)

	_, ok := Unbounded().Start(now)
	assert.False(t, ok)

	w, err := NewTrailingWindow(7)
	require.NoError(t, err)
	start, ok := w.Start(now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2023, 4, 23, 12, 0, 0, 0, time.UTC), start)
}
