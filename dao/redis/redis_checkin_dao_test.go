package redis

import (
	"testing"

	"checkin-forecast/db"
	"checkin-forecast/models/checkin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCheckInDAO_AppendAndList(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient()
	dao := NewRedisCheckInDAO(mockClient)

	first := []checkin.RawRecord{{DateTime: "4/17/2023 6:01:12 AM"}, {DateTime: "4/17/2023 7:00:00 AM"}}
	second := []checkin.RawRecord{{DateTime: "4/18/2023 5:00:00 PM"}}

	// Act
	require.NoError(t, dao.AppendCheckIns("Marino", first))
	require.NoError(t, dao.AppendCheckIns(" marino ", second))
	records, err := dao.ListCheckIns("MARINO")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, append(first, second...), records)

	n, err := dao.CountCheckIns("marino")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	stored, err := mockClient.LRange("checkins_v1:marino", 0, -1)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestRedisCheckInDAO_AppendEmpty(t *testing.T) {
	mockClient := db.NewMockRedisClient()
	dao := NewRedisCheckInDAO(mockClient)

	require.NoError(t, dao.AppendCheckIns("Marino", nil))

	facilities, err := dao.ListFacilities()
	require.NoError(t, err)
	assert.Empty(t, facilities)
}

func TestRedisCheckInDAO_ListCheckIns_NoResults(t *testing.T) {
	dao := NewRedisCheckInDAO(db.NewMockRedisClient())

	records, err := dao.ListCheckIns("Marino")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRedisCheckInDAO_DeleteAndListFacilities(t *testing.T) {
	dao := NewRedisCheckInDAO(db.NewMockRedisClient())
	require.NoError(t, dao.AppendCheckIns("Marino", []checkin.RawRecord{{DateTime: "x"}}))
	require.NoError(t, dao.AppendCheckIns("SquashBusters", []checkin.RawRecord{{DateTime: "y"}}))

	require.NoError(t, dao.DeleteCheckIns("Marino"))

	facilities, err := dao.ListFacilities()
	require.NoError(t, err)
	assert.Equal(t, []string{"squashbusters"}, facilities)
}
