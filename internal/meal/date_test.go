package meal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), day)

	_, err = ParseDay("10/03/2024")
	assert.Error(t, err)

	_, err = ParseDay("")
	assert.Error(t, err)
}

func TestDayFloor(t *testing.T) {
	late := time.Date(2024, 3, 10, 23, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), DayFloor(late))

	// A timestamp with an offset floors to its UTC day, not the local one.
	offset := time.Date(2024, 3, 11, 1, 30, 0, 0, time.FixedZone("CEST", 2*3600))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), DayFloor(offset))
}

func TestDayRange(t *testing.T) {
	start, end := DayRange(time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, end.Before(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)))

	// Any instant of the day falls inside the range, boundaries included.
	for _, tc := range []time.Time{
		start,
		time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 10, 23, 59, 59, 999999999, time.UTC),
	} {
		assert.False(t, tc.Before(start))
		assert.False(t, tc.After(end))
	}
}

func TestWeekRange(t *testing.T) {
	start, end := WeekRange(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), start)

	// The window covers exactly the 7 days 2024-03-10 through 2024-03-16.
	last := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	assert.False(t, last.After(end))
	next := time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)
	assert.True(t, next.After(end))
}
