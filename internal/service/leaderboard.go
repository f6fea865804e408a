package service

import (
	"context"

	"github.com/qiaoohe/Sleep-Planet/internal"
	"github.com/qiaoohe/Sleep-Planet/internal/rank"
	"github.com/qiaoohe/Sleep-Planet/internal/record"
	"github.com/qiaoohe/Sleep-Planet/internal/storage"
)

// LeaderboardEntry is one ranked row with its per-metric display value.
type LeaderboardEntry struct {
	Rank    int    `json:"rank"`
	Display string `json:"display"`
	rank.Summary
}

type LeaderboardResult struct {
	Metric      rank.Metric        `json:"metric"`
	Scope       rank.Scope         `json:"scope"`
	Entries     []LeaderboardEntry `json:"entries"`
	SelfRank    int                `json:"self_rank"`
	SelfDisplay string             `json:"self_display,omitempty"`
}

// SelfSummary projects the caller's latest record onto a cohort row. An open
// record reads as sleeping with a zero score. Returns nil when the user has
// no records at all (they do not appear on the board yet).
func SelfSummary(u *internal.User, latest *record.Record) *rank.Summary {
	if latest == nil {
		return nil
	}
	presence := rank.PresenceAwake
	score := latest.Score()
	if latest.Status == record.StatusIncomplete {
		presence = rank.PresenceSleeping
		score = 0
	}
	return &rank.Summary{
		ID:           u.ID,
		Name:         u.Name,
		AvatarColor:  u.AvatarColor,
		Presence:     presence,
		SleepScore:   score,
		LastDuration: latest.Duration,
		BedTime:      latest.BedTime,
		WakeTime:     latest.WakeTime,
		IsSelf:       true,
	}
}

// Leaderboard assembles the active cohort for the view and ranks it. user
// may be nil: an anonymous caller gets the global board, read-only, with no
// self row and a zero self rank.
func Leaderboard(ctx context.Context, cohorts storage.CohortRepository, records storage.SleepRecordRepository,
	user *internal.User, view rank.View, date string) (*LeaderboardResult, error) {

	view.Authenticated = user != nil
	view = view.Normalize()

	var friends []rank.Summary
	var err error
	if view.Scope == rank.ScopeFriends {
		friends, err = cohorts.Friends(ctx, user.ID)
		if err != nil {
			return nil, err
		}
	}
	global, err := cohorts.Global(ctx)
	if err != nil {
		return nil, err
	}

	var self *rank.Summary
	if user != nil {
		coll, err := loadCollection(ctx, records, user.ID)
		if err != nil {
			return nil, err
		}
		self = SelfSummary(user, coll.LatestFor(date))
	}

	sorted := rank.Sort(view.Metric, rank.Compose(view, friends, global, self))

	out := &LeaderboardResult{
		Metric:   view.Metric,
		Scope:    view.Scope,
		Entries:  make([]LeaderboardEntry, len(sorted)),
		SelfRank: rank.SelfRank(sorted),
	}
	for i, s := range sorted {
		out.Entries[i] = LeaderboardEntry{
			Rank:    i + 1,
			Display: rank.DisplayValue(view.Metric, s),
			Summary: s,
		}
		if s.IsSelf {
			out.SelfDisplay = selfDisplay(view.Metric, s)
		}
	}
	return out, nil
}

// selfDisplay is the footer value for the caller's own row; unlike list
// rows it always shows the raw time, never the sleeping marker.
func selfDisplay(metric rank.Metric, s rank.Summary) string {
	t := s.BedTime
	if metric == rank.MetricEarlyBird {
		t = s.WakeTime
	}
	if t == "" {
		return rank.TimePlaceholder
	}
	return t
}
