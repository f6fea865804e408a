package api

import (
	"github.com/qiaoohe/Sleep-Planet/internal"
	"github.com/qiaoohe/Sleep-Planet/internal/annotate"
	"github.com/qiaoohe/Sleep-Planet/internal/auth"
	"github.com/qiaoohe/Sleep-Planet/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Records() storage.SleepRecordRepository
	Cohorts() storage.CohortRepository
	Users() storage.UserRepository
	Auth() auth.Provider
	Annotations() *annotate.Dispatcher
}
