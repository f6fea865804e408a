package record

import "time"

// StartSleep opens (or reopens) the record for date with the given bedtime.
// A nil rec creates a fresh record; an existing one is overwritten back to
// incomplete, clearing any previous wake time and derived fields. Restarting
// the same day is allowed in any state.
func StartSleep(rec *Record, userID, date, bedTime string) *Record {
	if rec == nil {
		return &Record{
			ID:        newID(),
			UserID:    userID,
			Date:      date,
			Status:    StatusIncomplete,
			BedTime:   bedTime,
			Quality:   QualityUnknown,
			CreatedAt: time.Now(),
		}
	}
	next := *rec
	next.Status = StatusIncomplete
	next.BedTime = bedTime
	next.WakeTime = ""
	next.Duration = nil
	next.Quality = QualityUnknown
	return &next
}

// WakeUp closes an open record, deriving duration and quality from the two
// clock times. Valid only on an incomplete record with a bedtime; anything
// else returns the input unchanged. Callers check state first.
func WakeUp(rec *Record, wakeTime string) *Record {
	if rec == nil || rec.Status != StatusIncomplete || rec.BedTime == "" {
		return rec
	}
	next := *rec
	next.WakeTime = wakeTime
	complete(&next)
	return &next
}

// ManualEdit lands the record in complete with both times supplied at once,
// regardless of its prior status. This is how a missed day is filled in and
// how a finished day is corrected. A nil rec creates the day's record.
func ManualEdit(rec *Record, userID, date, bedTime, wakeTime string) *Record {
	var next Record
	if rec == nil {
		next = Record{ID: newID(), UserID: userID, Date: date, CreatedAt: time.Now()}
	} else {
		next = *rec
	}
	next.BedTime = bedTime
	next.WakeTime = wakeTime
	complete(&next)
	return &next
}

func complete(r *Record) {
	d := ElapsedHours(r.BedTime, r.WakeTime)
	r.Duration = &d
	r.Quality = QualityFor(d)
	r.Status = StatusComplete
}

// QualityFor grades a sleep duration in hours. The boundary asymmetry
// (>6 for Good, <5 for Poor, the band between defaulting to Fair) matches
// long-standing behavior and must not be "fixed".
func QualityFor(d float64) Quality {
	switch {
	case d > 7.5:
		return QualityExcellent
	case d > 6:
		return QualityGood
	case d < 5:
		return QualityPoor
	default:
		return QualityFair
	}
}
