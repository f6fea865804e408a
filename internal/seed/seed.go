// Package seed generates the demo cohort installed on first run, the way
// the server seeds its default user file. Purely synthetic display data.
package seed

import (
	"fmt"
	"math/rand"

	"github.com/qiaoohe/Sleep-Planet/internal/rank"
)

var friendNames = []string{"Alice", "Bob", "Charlie", "Diana", "Ethan", "Fiona", "George", "Hannah"}

var friendColors = []string{
	"bg-red-400", "bg-orange-400", "bg-amber-400", "bg-green-400",
	"bg-emerald-400", "bg-teal-400", "bg-cyan-400", "bg-sky-400",
}

var (
	globalAdjectives = []string{"Sleepy", "Dreamy", "Cosmic", "Lunar", "Solar", "Restful", "Calm", "Night", "Dark"}
	globalNouns      = []string{"Traveler", "Panda", "Owl", "Cat", "Star", "Moon", "Cloud", "Fox", "Walker"}
)

func clock(h, m int) string {
	return fmt.Sprintf("%02d:%02d", h%24, m)
}

func member(rng *rand.Rand, id, name, color string, sleepingShare float64, minScore int, bedSpread int) rank.Summary {
	sleeping := rng.Float64() < sleepingShare
	s := rank.Summary{
		ID:          id,
		Name:        name,
		AvatarColor: color,
		Presence:    rank.PresenceAwake,
		SleepScore:  minScore + rng.Intn(100-minScore+1),
		BedTime:     clock(22+rng.Intn(bedSpread), rng.Intn(60)),
	}
	if sleeping {
		s.Presence = rank.PresenceSleeping
		s.SleepScore = 0
		return s
	}
	d := 5 + rng.Float64()*4
	s.LastDuration = &d
	s.WakeTime = clock(6+rng.Intn(3), 30)
	return s
}

// Friends builds the named demo friends list.
func Friends(rng *rand.Rand) []rank.Summary {
	out := make([]rank.Summary, 0, len(friendNames))
	for i, name := range friendNames {
		out = append(out, member(rng, fmt.Sprintf("f-%d", i), name, friendColors[i%len(friendColors)], 0.3, 60, 5))
	}
	return out
}

// Global builds n anonymous global members with generated handles.
func Global(rng *rand.Rand, n int) []rank.Summary {
	out := make([]rank.Summary, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("%s%s%d",
			globalAdjectives[rng.Intn(len(globalAdjectives))],
			globalNouns[rng.Intn(len(globalNouns))],
			rng.Intn(100))
		out = append(out, member(rng, fmt.Sprintf("g-%d", i), name, "bg-slate-700", 0.2, 50, 6))
	}
	return out
}
