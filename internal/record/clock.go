package record

import (
	"math"
	"strconv"
	"strings"
)

// AbsentMinutes is returned for an absent or unparseable clock string.
// Ranking comparators must push it to the bottom regardless of direction.
const AbsentMinutes = -1

func splitClock(s string) (h, m int, ok bool) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, 0, false
	}
	m, err = strconv.Atoi(s[i+1:])
	if err != nil {
		return 0, 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// ValidClock reports whether s is a parseable HH:MM wall-clock string.
func ValidClock(s string) bool {
	_, _, ok := splitClock(s)
	return ok
}

// BedMinutes converts a bedtime to minutes on a "how late" scale. Hours
// before noon are treated as having rolled past midnight, so 00:45 sorts
// later than 23:10.
func BedMinutes(t string) int {
	h, m, ok := splitClock(t)
	if !ok {
		return AbsentMinutes
	}
	if h < 12 {
		return (h+24)*60 + m
	}
	return h*60 + m
}

// WakeMinutes converts a wake time to plain minutes since midnight; morning
// times are already in the intuitive order.
func WakeMinutes(t string) int {
	h, m, ok := splitClock(t)
	if !ok {
		return AbsentMinutes
	}
	return h*60 + m
}

// ElapsedHours is the duration between two clock times in hours, rounded to
// one decimal. A negative raw difference means the interval crossed midnight
// and gains 24 hours. Both arguments must be present and valid.
func ElapsedHours(start, end string) float64 {
	sh, sm, _ := splitClock(start)
	eh, em, _ := splitClock(end)
	d := (float64(eh) + float64(em)/60) - (float64(sh) + float64(sm)/60)
	if d < 0 {
		d += 24
	}
	return math.Round(d*10) / 10
}
