// Package record holds a user's nightly sleep entries and the lifecycle
// rules that move each day through missed -> incomplete -> complete.
package record

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusMissed     Status = "missed"
	StatusIncomplete Status = "incomplete"
	StatusComplete   Status = "complete"
)

type Quality string

const (
	QualityExcellent Quality = "Excellent"
	QualityGood      Quality = "Good"
	QualityFair      Quality = "Fair"
	QualityPoor      Quality = "Poor"
	QualityUnknown   Quality = "Unknown"
)

// Record is one calendar day's sleep entry. Date is the natural key; at most
// one record exists per date per user. Duration and Quality are derived from
// the two clock times and never set directly.
type Record struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Status    Status    `json:"status"`
	BedTime   string    `json:"bed_time,omitempty"`  // HH:MM
	WakeTime  string    `json:"wake_time,omitempty"` // HH:MM
	Duration  *float64  `json:"duration,omitempty"`  // hours, complete only
	Quality   Quality   `json:"quality"`
	CreatedAt time.Time `json:"created_at"`
}

// Score maps a finished record's quality onto the 0-100 display scale.
// Anything not complete scores zero.
func (r *Record) Score() int {
	if r == nil || r.Status != StatusComplete {
		return 0
	}
	switch r.Quality {
	case QualityExcellent:
		return 95
	case QualityGood:
		return 85
	case QualityFair:
		return 70
	default:
		return 60
	}
}

// Today formats now as the record date key.
func Today(now time.Time) string {
	return now.Format("2006-01-02")
}

func newID() string {
	return uuid.NewString()
}
