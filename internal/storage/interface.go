package storage

import (
	"context"

	"github.com/qiaoohe/Sleep-Planet/internal"
	"github.com/qiaoohe/Sleep-Planet/internal/rank"
	"github.com/qiaoohe/Sleep-Planet/internal/record"
)

type SleepRecordRepository interface {
	SaveRecord(ctx context.Context, rec *record.Record) error
	ListRecords(ctx context.Context, userID string) ([]record.Record, error)
}

type CohortRepository interface {
	Friends(ctx context.Context, userID string) ([]rank.Summary, error)
	Global(ctx context.Context) ([]rank.Summary, error)
}

type UserRepository interface {
	SaveUser(ctx context.Context, user *internal.User) error
	FindUserByID(ctx context.Context, id string) (*internal.User, error)
	FindUserByName(ctx context.Context, name string) (*internal.User, error)
}
