package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(date string, status Status, hours float64) Record {
	r := Record{ID: "r-" + date, UserID: "u1", Date: date, Status: status, Quality: QualityUnknown}
	if status == StatusComplete {
		d := hours
		r.Duration = &d
		r.Quality = QualityFor(d)
	}
	return r
}

func TestLatestForPrefersExactDateThenFallsBack(t *testing.T) {
	c := NewCollection([]Record{
		day("2026-08-29", StatusComplete, 7.0),
		day("2026-08-31", StatusComplete, 8.0),
		day("2026-08-30", StatusMissed, 0),
	})

	exact := c.LatestFor("2026-08-30")
	require.NotNil(t, exact)
	assert.Equal(t, "2026-08-30", exact.Date)

	// No record for today yet: the most recent known day is shown instead.
	fallback := c.LatestFor("2026-09-01")
	require.NotNil(t, fallback)
	assert.Equal(t, "2026-08-31", fallback.Date)

	empty := NewCollection(nil)
	assert.Nil(t, empty.LatestFor("2026-09-01"))
}

func TestUpsertReplacesByIDAndByDate(t *testing.T) {
	c := NewCollection([]Record{day("2026-08-31", StatusIncomplete, 0)})

	// same id: in-place replacement
	updated := day("2026-08-31", StatusComplete, 7.2)
	c.Upsert(&updated)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, StatusComplete, c.FindByDate("2026-08-31").Status)

	// different id, same date: the date invariant wins, last write stays
	dup := day("2026-08-31", StatusComplete, 6.0)
	dup.ID = "other-id"
	c.Upsert(&dup)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "other-id", c.FindByDate("2026-08-31").ID)

	// new date appends in order
	older := day("2026-08-30", StatusComplete, 8.0)
	c.Upsert(&older)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "2026-08-30", c.Records()[0].Date)
}

func TestRecentWindow(t *testing.T) {
	c := NewCollection([]Record{
		day("2026-08-25", StatusComplete, 7.0),
		day("2026-08-26", StatusComplete, 7.0),
		day("2026-08-27", StatusMissed, 0),
	})
	w := c.RecentWindow(2)
	require.Len(t, w, 2)
	assert.Equal(t, "2026-08-26", w[0].Date)
	assert.Equal(t, "2026-08-27", w[1].Date)

	assert.Len(t, c.RecentWindow(10), 3)
}

func TestSummarizeDecisionTable(t *testing.T) {
	mkWindow := func(complete, incomplete int, hours float64) []*Record {
		var out []*Record
		for i := 0; i < complete; i++ {
			r := day("2026-08-2"+string(rune('0'+i)), StatusComplete, hours)
			out = append(out, &r)
		}
		for i := 0; i < incomplete; i++ {
			r := day("2026-08-1"+string(rune('0'+i)), StatusIncomplete, 0)
			out = append(out, &r)
		}
		return out
	}

	assert.Equal(t, "Begin tonight.", Summarize(nil))
	assert.Equal(t, "Dreams vivid lately.", Summarize(mkWindow(2, 3, 7.0)))
	assert.Equal(t, "Radiating energy.", Summarize(mkWindow(5, 0, 8.0)))
	assert.Equal(t, "Steady rhythm.", Summarize(mkWindow(5, 0, 6.5)))
	assert.Equal(t, "Building habits.", Summarize(mkWindow(5, 0, 5.0)))
	assert.Equal(t, "Finding balance.", Summarize(mkWindow(3, 0, 7.0)))
	assert.Equal(t, "Be gentle tonight.", Summarize(mkWindow(1, 1, 7.0)))
}
