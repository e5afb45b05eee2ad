package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("11:30")
	require.NoError(t, err)
	assert.Equal(t, NewTimeOfDay(11, 30), tod)
	assert.Equal(t, "11:30", tod.String())

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("11:61")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("late")
	assert.Error(t, err)
}

func TestTimeOfDayFromTime(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	ts := time.Date(2024, 3, 4, 9, 15, 59, 0, loc)
	assert.Equal(t, NewTimeOfDay(9, 15), TimeOfDayFromTime(ts))
}

func TestWindowUnmarshalText(t *testing.T) {
	w := Window{}
	require.NoError(t, w.UnmarshalText([]byte("11:30-13:00")))
	assert.Equal(t, NewTimeOfDay(11, 30), w.Start)
	assert.Equal(t, NewTimeOfDay(13, 0), w.End)

	assert.Error(t, w.UnmarshalText([]byte("11:30")))
	assert.Error(t, w.UnmarshalText([]byte("13:00-11:30")))
}

func TestWindowContainsInclusiveBounds(t *testing.T) {
	w := Window{Start: NewTimeOfDay(11, 30), End: NewTimeOfDay(13, 0)}

	assert.True(t, w.Contains(NewTimeOfDay(11, 30)), "start boundary is inclusive")
	assert.True(t, w.Contains(NewTimeOfDay(13, 0)), "end boundary is inclusive")
	assert.True(t, w.Contains(NewTimeOfDay(12, 0)))

	assert.False(t, w.Contains(NewTimeOfDay(11, 29)), "one minute before start")
	assert.False(t, w.Contains(NewTimeOfDay(13, 1)), "one minute after end")
}

func TestInBlackout(t *testing.T) {
	windows := []Window{
		{Start: NewTimeOfDay(11, 30), End: NewTimeOfDay(13, 0)},
		{Start: NewTimeOfDay(14, 45), End: NewTimeOfDay(14, 50)},
	}

	assert.True(t, InBlackout(NewTimeOfDay(12, 15), windows))
	assert.True(t, InBlackout(NewTimeOfDay(14, 45), windows))
	assert.False(t, InBlackout(NewTimeOfDay(9, 0), windows))
	assert.False(t, InBlackout(NewTimeOfDay(9, 0), nil))
}
