// Package rank orders cohort members along the two leaderboard metrics.
package rank

import (
	"sort"

	"github.com/qiaoohe/Sleep-Planet/internal/record"
)

type Metric string

const (
	// MetricNightOwl ranks by bedtime, latest first.
	MetricNightOwl Metric = "owl"
	// MetricEarlyBird ranks by wake time, earliest first.
	MetricEarlyBird Metric = "early"
)

func (m Metric) Valid() bool {
	return m == MetricNightOwl || m == MetricEarlyBird
}

type Presence string

const (
	PresenceSleeping Presence = "sleeping"
	PresenceAwake    Presence = "awake"
	PresenceOffline  Presence = "offline"
)

// Summary is the leaderboard projection of one member's latest record.
// At most one entry per cohort carries IsSelf.
type Summary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	AvatarColor  string   `json:"avatar_color"`
	Presence     Presence `json:"presence"`
	SleepScore   int      `json:"sleep_score"`
	LastDuration *float64 `json:"last_duration,omitempty"`
	BedTime      string   `json:"bed_time,omitempty"`
	WakeTime     string   `json:"wake_time,omitempty"`
	IsSelf       bool     `json:"is_self,omitempty"`
}

// TimePlaceholder is shown where a member has no relevant time on record.
const TimePlaceholder = "--:--"

// Sort returns the cohort ordered for the metric. Entries whose relevant
// time is absent always sink to the bottom, never above real data; among
// themselves they keep input order (stable sort). The input is not mutated.
func Sort(metric Metric, cohort []Summary) []Summary {
	out := make([]Summary, len(cohort))
	copy(out, cohort)
	sort.SliceStable(out, func(i, j int) bool {
		if metric == MetricEarlyBird {
			a := record.WakeMinutes(out[i].WakeTime)
			b := record.WakeMinutes(out[j].WakeTime)
			if a == record.AbsentMinutes {
				return false
			}
			if b == record.AbsentMinutes {
				return true
			}
			return a < b
		}
		a := record.BedMinutes(out[i].BedTime)
		b := record.BedMinutes(out[j].BedTime)
		if a == record.AbsentMinutes {
			return false
		}
		if b == record.AbsentMinutes {
			return true
		}
		return a > b
	})
	return out
}

// SelfRank is the 1-based position of the IsSelf entry, or 0 when the
// cohort has none (anonymous caller).
func SelfRank(sorted []Summary) int {
	for i, s := range sorted {
		if s.IsSelf {
			return i + 1
		}
	}
	return 0
}

// DisplayValue is the per-row value for the metric. A sleeping member under
// EarlyBird shows a distinct marker rather than a stale wake time.
func DisplayValue(metric Metric, s Summary) string {
	if metric == MetricEarlyBird {
		if s.Presence == PresenceSleeping {
			return "Sleeping"
		}
		if s.WakeTime == "" {
			return TimePlaceholder
		}
		return s.WakeTime
	}
	if s.BedTime == "" {
		return TimePlaceholder
	}
	return s.BedTime
}
