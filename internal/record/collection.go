package record

import "sort"

// Collection is one user's records ordered by date ascending. A day with no
// entry is not materialized; it simply reads as missed.
type Collection struct {
	records []*Record
}

func NewCollection(recs []Record) *Collection {
	c := &Collection{records: make([]*Record, 0, len(recs))}
	for i := range recs {
		r := recs[i]
		c.records = append(c.records, &r)
	}
	c.sort()
	return c
}

func (c *Collection) sort() {
	sort.SliceStable(c.records, func(i, j int) bool {
		return c.records[i].Date < c.records[j].Date
	})
}

// FindByDate returns the record for exactly date, or nil.
func (c *Collection) FindByDate(date string) *Record {
	for _, r := range c.records {
		if r.Date == date {
			return r
		}
	}
	return nil
}

// LatestFor returns the record for date if present, else the most recent
// record, else nil. The fallback keeps something on screen before today's
// record exists.
func (c *Collection) LatestFor(date string) *Record {
	if r := c.FindByDate(date); r != nil {
		return r
	}
	if len(c.records) == 0 {
		return nil
	}
	return c.records[len(c.records)-1]
}

// Upsert replaces the record sharing r's id, or the one sharing its date,
// or appends. Last write wins; no two records ever share a date.
func (c *Collection) Upsert(r *Record) {
	for i, existing := range c.records {
		if existing.ID == r.ID || existing.Date == r.Date {
			c.records[i] = r
			c.sort()
			return
		}
	}
	c.records = append(c.records, r)
	c.sort()
}

// RecentWindow returns the last n records in date order.
func (c *Collection) RecentWindow(n int) []*Record {
	if n > len(c.records) {
		n = len(c.records)
	}
	return c.records[len(c.records)-n:]
}

func (c *Collection) Len() int {
	return len(c.records)
}

func (c *Collection) Records() []*Record {
	return c.records
}

// Summarize turns a recent window into the rolling mood line shown in the
// header. The rule table is advisory display logic only.
func Summarize(window []*Record) string {
	if len(window) == 0 {
		return "Begin tonight."
	}
	var complete, incomplete int
	var total float64
	for _, r := range window {
		switch r.Status {
		case StatusComplete:
			complete++
		case StatusIncomplete:
			incomplete++
		}
		if r.Duration != nil {
			total += *r.Duration
		}
	}
	var avg float64
	if complete > 0 {
		avg = total / float64(complete)
	}
	switch {
	case incomplete > 2:
		return "Dreams vivid lately."
	case complete >= 5:
		if avg > 7.5 {
			return "Radiating energy."
		}
		if avg > 6 {
			return "Steady rhythm."
		}
		return "Building habits."
	case complete >= 3:
		return "Finding balance."
	default:
		return "Be gentle tonight."
	}
}
