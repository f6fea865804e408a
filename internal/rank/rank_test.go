package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func peer(id, bed, wake string) Summary {
	return Summary{ID: id, Name: id, Presence: PresenceAwake, BedTime: bed, WakeTime: wake}
}

func ids(list []Summary) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.ID
	}
	return out
}

func TestNightOwlLatestBedtimeWins(t *testing.T) {
	// 00:45 rolls past midnight: (0+24)*60+45 = 1485, while 23:10 stays at
	// 1390, so the post-midnight sleeper ranks first.
	sorted := Sort(MetricNightOwl, []Summary{
		peer("a", "23:10", "07:00"),
		peer("b", "00:45", "08:00"),
		peer("c", "22:00", "06:00"),
	})
	assert.Equal(t, []string{"b", "a", "c"}, ids(sorted))
}

func TestEarlyBirdEarliestWakeWins(t *testing.T) {
	sorted := Sort(MetricEarlyBird, []Summary{
		peer("a", "23:10", "07:30"),
		peer("b", "00:45", "05:45"),
		peer("c", "22:00", "06:10"),
	})
	assert.Equal(t, []string{"b", "c", "a"}, ids(sorted))
}

func TestMissingTimesSinkToBottomForBothMetrics(t *testing.T) {
	cohort := []Summary{
		peer("noBed1", "", "07:00"),
		peer("real1", "23:00", "07:00"),
		peer("noBed2", "", "06:00"),
		peer("real2", "01:30", "08:00"),
	}

	owl := Sort(MetricNightOwl, cohort)
	assert.Equal(t, []string{"real2", "real1", "noBed1", "noBed2"}, ids(owl),
		"sentinels last, keeping their input order")

	early := Sort(MetricEarlyBird, []Summary{
		peer("noWake1", "23:00", ""),
		peer("real", "22:00", "06:30"),
		peer("noWake2", "01:00", ""),
	})
	assert.Equal(t, []string{"real", "noWake1", "noWake2"}, ids(early))
}

func TestSortIsStableAndPure(t *testing.T) {
	cohort := []Summary{
		peer("a", "23:00", "07:00"),
		peer("b", "23:00", "07:00"), // exact tie with a
		peer("c", "", ""),
	}
	first := Sort(MetricNightOwl, cohort)
	second := Sort(MetricNightOwl, cohort)
	assert.Equal(t, ids(first), ids(second), "re-running yields identical order")
	assert.Equal(t, []string{"a", "b", "c"}, ids(first), "ties keep input order")
	assert.Equal(t, "a", cohort[0].ID, "input cohort is not mutated")
}

func TestSelfRank(t *testing.T) {
	cohort := []Summary{
		peer("a", "23:50", "07:00"),
		{ID: "me", Name: "me", Presence: PresenceAwake, BedTime: "23:00", WakeTime: "06:00", IsSelf: true},
		peer("b", "21:00", "08:00"),
	}
	sorted := Sort(MetricNightOwl, cohort)
	require.Equal(t, 2, SelfRank(sorted))

	assert.Equal(t, 0, SelfRank(Sort(MetricNightOwl, []Summary{peer("a", "23:00", "07:00")})),
		"no self entry means rank zero")
}

func TestDisplayValue(t *testing.T) {
	awake := peer("a", "23:15", "06:45")
	assert.Equal(t, "23:15", DisplayValue(MetricNightOwl, awake))
	assert.Equal(t, "06:45", DisplayValue(MetricEarlyBird, awake))

	sleeping := Summary{ID: "s", Presence: PresenceSleeping, BedTime: "01:00"}
	assert.Equal(t, "01:00", DisplayValue(MetricNightOwl, sleeping))
	assert.Equal(t, "Sleeping", DisplayValue(MetricEarlyBird, sleeping),
		"a sleeping member never shows a stale wake time")

	blank := Summary{ID: "b", Presence: PresenceAwake}
	assert.Equal(t, TimePlaceholder, DisplayValue(MetricNightOwl, blank))
	assert.Equal(t, TimePlaceholder, DisplayValue(MetricEarlyBird, blank))
}
