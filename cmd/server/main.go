package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/qiaoohe/Sleep-Planet/internal"
	"github.com/qiaoohe/Sleep-Planet/internal/annotate"
	"github.com/qiaoohe/Sleep-Planet/internal/api"
	"github.com/qiaoohe/Sleep-Planet/internal/auth"
	"github.com/qiaoohe/Sleep-Planet/internal/config"
	"github.com/qiaoohe/Sleep-Planet/internal/seed"
	"github.com/qiaoohe/Sleep-Planet/internal/storage"
)

type app struct {
	logger      internal.Logger
	repos       *storage.Repositories
	provider    auth.Provider
	annotations *annotate.Dispatcher
}

func (a *app) Logger() internal.Logger                { return a.logger }
func (a *app) Records() storage.SleepRecordRepository { return a.repos.Records }
func (a *app) Cohorts() storage.CohortRepository      { return a.repos.Cohorts }
func (a *app) Users() storage.UserRepository          { return a.repos.Users }
func (a *app) Auth() auth.Provider                    { return a.provider }
func (a *app) Annotations() *annotate.Dispatcher      { return a.annotations }

func newLogger(level string) (internal.Logger, func()) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	z, err := zc.Build()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	return internal.NewZapLogger(z.Sugar()), func() { _ = z.Sync() }
}

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, sync := newLogger(cfg.Log.Level)
	defer sync()

	var repos *storage.Repositories
	switch cfg.Storage.Backend {
	case "postgres":
		repos, err = storage.NewPostgresRepositories(cfg.Storage.PostgresDSN, logger)
		if err != nil {
			logger.Fatalf("failed to init postgres storage: %v", err)
		}
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.RecordsFile), 0755); err != nil {
			logger.Fatalf("failed to create data dir: %v", err)
		}
		var fs *storage.FileStorage
		repos, fs, err = storage.NewFileRepositories(cfg.Storage.RecordsFile, cfg.Storage.UsersFile, cfg.Storage.CohortFile, logger)
		if err != nil {
			logger.Fatalf("failed to init file storage: %v", err)
		}
		defer fs.Close()
		if !fs.HasCohort() {
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			if err := fs.SeedCohort(seed.Friends(rng), seed.Global(rng, 50)); err != nil {
				logger.Fatalf("failed to seed cohort: %v", err)
			}
			logger.Info("seeded demo cohort")
		}
	}

	var provider auth.Provider
	if cfg.Auth.Mode == "remote" {
		provider = auth.NewRemoteProvider(cfg.Auth.RemoteURL, logger)
	} else {
		provider = auth.NewJWTProvider(cfg.Auth.Secret, 0, logger)
	}

	var annotator annotate.Annotator
	if cfg.Annotator.URL != "" {
		annotator = annotate.NewRemoteAnnotator(cfg.Annotator.URL, time.Duration(cfg.Annotator.TimeoutSeconds)*time.Second, logger)
	}
	dispatcher := annotate.NewDispatcher(annotator, time.Duration(cfg.Annotator.TimeoutSeconds)*time.Second, logger)

	a := &app{logger: logger, repos: repos, provider: provider, annotations: dispatcher}
	r := api.NewRouter(a)

	logger.Infof("server starting on %s (env=%s, storage=%s)", cfg.Addr(), cfg.Env, cfg.Storage.Backend)
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
