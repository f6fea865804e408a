package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/qiaoohe/Sleep-Planet/internal"
	"github.com/qiaoohe/Sleep-Planet/internal/record"
	"github.com/qiaoohe/Sleep-Planet/internal/storage"
)

var validate = validator.New()

// ErrNoOpenRecord is returned by WakeUp when today has no incomplete record
// with a bedtime. The lifecycle itself treats this as a no-op; the service
// surfaces it so the API can answer with a client error.
var ErrNoOpenRecord = errors.New("no open sleep record for today")

type StartSleepRequest struct {
	BedTime string `json:"bed_time" validate:"required,datetime=15:04"`
}

type WakeUpRequest struct {
	WakeTime string `json:"wake_time" validate:"required,datetime=15:04"`
}

type ManualEditRequest struct {
	BedTime  string `json:"bed_time" validate:"required,datetime=15:04"`
	WakeTime string `json:"wake_time" validate:"required,datetime=15:04"`
}

func ValidateStartSleepRequest(body *StartSleepRequest) error { return validate.Struct(body) }
func ValidateWakeUpRequest(body *WakeUpRequest) error         { return validate.Struct(body) }
func ValidateManualEditRequest(body *ManualEditRequest) error { return validate.Struct(body) }

func loadCollection(ctx context.Context, repo storage.SleepRecordRepository, userID string) (*record.Collection, error) {
	recs, err := repo.ListRecords(ctx, userID)
	if err != nil {
		return nil, err
	}
	return record.NewCollection(recs), nil
}

// StartSleep opens today's record with the given bedtime, creating the day's
// record if it does not exist and restarting it if it does.
func StartSleep(ctx context.Context, repo storage.SleepRecordRepository, user *internal.User, date, bedTime string) (*record.Record, error) {
	coll, err := loadCollection(ctx, repo, user.ID)
	if err != nil {
		return nil, err
	}
	next := record.StartSleep(coll.FindByDate(date), user.ID, date, bedTime)
	if err := repo.SaveRecord(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// WakeUp closes today's open record. The state check happens here, before
// the lifecycle transition, so the core function never sees a bad call.
func WakeUp(ctx context.Context, repo storage.SleepRecordRepository, user *internal.User, date, wakeTime string) (*record.Record, error) {
	coll, err := loadCollection(ctx, repo, user.ID)
	if err != nil {
		return nil, err
	}
	cur := coll.FindByDate(date)
	if cur == nil || cur.Status != record.StatusIncomplete || cur.BedTime == "" {
		return nil, ErrNoOpenRecord
	}
	next := record.WakeUp(cur, wakeTime)
	if err := repo.SaveRecord(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// ManualEdit sets both times on the record for date, landing it complete
// whatever its prior status. A missed day gains its record here.
func ManualEdit(ctx context.Context, repo storage.SleepRecordRepository, user *internal.User, date, bedTime, wakeTime string) (*record.Record, error) {
	coll, err := loadCollection(ctx, repo, user.ID)
	if err != nil {
		return nil, err
	}
	next := record.ManualEdit(coll.FindByDate(date), user.ID, date, bedTime, wakeTime)
	if err := repo.SaveRecord(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// TodayView is what the dashboard reads: the latest record under the
// fallback policy plus the rolling weekly summary line.
type TodayView struct {
	Record  *record.Record `json:"record,omitempty"`
	Summary string         `json:"summary"`
}

func Today(ctx context.Context, repo storage.SleepRecordRepository, userID, date string) (*TodayView, error) {
	coll, err := loadCollection(ctx, repo, userID)
	if err != nil {
		return nil, err
	}
	return &TodayView{
		Record:  coll.LatestFor(date),
		Summary: record.Summarize(coll.RecentWindow(7)),
	}, nil
}
