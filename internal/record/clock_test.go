package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBedMinutesRollsEarlyHoursPastMidnight(t *testing.T) {
	// 00:45 counts as later in the evening than 22:00, but earlier than 23:10
	// stays earlier than 00:45 on the "how late" scale.
	assert.Equal(t, (0+24)*60+45, BedMinutes("00:45"))
	assert.Equal(t, (23)*60+10, BedMinutes("23:10"))
	assert.Greater(t, BedMinutes("00:45"), BedMinutes("23:10"))
	assert.Equal(t, 22*60, BedMinutes("22:00"))
	// noon is the cutoff: 11:59 rolls, 12:00 does not
	assert.Equal(t, (11+24)*60+59, BedMinutes("11:59"))
	assert.Equal(t, 12*60, BedMinutes("12:00"))
}

func TestWakeMinutesHasNoRollover(t *testing.T) {
	assert.Equal(t, 6*60+15, WakeMinutes("06:15"))
	assert.Equal(t, 45, WakeMinutes("00:45"))
	assert.Less(t, WakeMinutes("06:00"), WakeMinutes("07:30"))
}

func TestAbsentAndMalformedTimesReturnSentinel(t *testing.T) {
	for _, in := range []string{"", "7", "25:00", "12:60", "ab:cd", "-1:30"} {
		assert.Equal(t, AbsentMinutes, BedMinutes(in), "bed %q", in)
		assert.Equal(t, AbsentMinutes, WakeMinutes(in), "wake %q", in)
	}
}

func TestValidClock(t *testing.T) {
	assert.True(t, ValidClock("23:30"))
	assert.True(t, ValidClock("00:00"))
	assert.False(t, ValidClock("24:00"))
	assert.False(t, ValidClock("23:61"))
	assert.False(t, ValidClock("nope"))
}

func TestElapsedHours(t *testing.T) {
	tests := []struct {
		start, end string
		want       float64
	}{
		{"23:30", "07:15", 7.8}, // crosses midnight, +24 branch
		{"22:00", "06:00", 8.0},
		{"00:30", "08:00", 7.5},
		{"01:00", "01:00", 0.0},
		{"10:00", "09:00", 23.0}, // nearly a full day
		{"23:00", "22:59", 24.0}, // rounding lands on the 24h edge
	}
	for _, tt := range tests {
		got := ElapsedHours(tt.start, tt.end)
		assert.InDelta(t, tt.want, got, 0.001, "%s -> %s", tt.start, tt.end)
		assert.GreaterOrEqual(t, got, 0.0)
	}
}
