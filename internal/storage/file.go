package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/qiaoohe/Sleep-Planet/internal"
	"github.com/qiaoohe/Sleep-Planet/internal/rank"
	"github.com/qiaoohe/Sleep-Planet/internal/record"
)

// cohortFile is the on-disk shape of the seeded cohort sources.
type cohortFile struct {
	Friends []rank.Summary `json:"friends"`
	Global  []rank.Summary `json:"global"`
}

type FileStorage struct {
	records       map[string]*record.Record   // id -> record
	userIndex     map[string][]*record.Record // userID -> records sorted by date asc
	users         map[string]*internal.User   // id -> user
	cohort        cohortFile
	mu            sync.RWMutex
	recordsFile   string
	usersFile     string
	cohortPath    string
	saveRecsChan  chan struct{}
	saveUsersChan chan struct{}
	shutdownChan  chan struct{}
	saveDelay     time.Duration
	logger        internal.Logger
}

func NewFileStorage(recordsFile, usersFile, cohortFilePath string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		records:       make(map[string]*record.Record),
		userIndex:     make(map[string][]*record.Record),
		users:         make(map[string]*internal.User),
		recordsFile:   recordsFile,
		usersFile:     usersFile,
		cohortPath:    cohortFilePath,
		saveRecsChan:  make(chan struct{}, 1),
		saveUsersChan: make(chan struct{}, 1),
		shutdownChan:  make(chan struct{}),
		saveDelay:     500 * time.Millisecond,
		logger:        logger,
	}

	if err := s.loadRecords(); err != nil {
		logger.Errorf("storage: failed to load sleep records: %v", err)
		return nil, err
	}
	if err := s.loadUsers(); err != nil {
		logger.Errorf("storage: failed to load users: %v", err)
		return nil, err
	}
	if err := s.loadCohort(); err != nil {
		logger.Errorf("storage: failed to load cohort: %v", err)
		return nil, err
	}

	go s.saveRecordsWorker()
	go s.saveUsersWorker()

	return s, nil
}

func decodeFile(path string, v interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()
	if err := json.NewDecoder(file).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func (s *FileStorage) loadRecords() error {
	var recs []*record.Record
	if err := decodeFile(s.recordsFile, &recs); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range recs {
		s.records[r.ID] = r
		s.userIndex[r.UserID] = append(s.userIndex[r.UserID], r)
	}
	for userID := range s.userIndex {
		sort.SliceStable(s.userIndex[userID], func(i, j int) bool {
			return s.userIndex[userID][i].Date < s.userIndex[userID][j].Date
		})
	}
	return nil
}

func (s *FileStorage) loadUsers() error {
	var users []*internal.User
	if err := decodeFile(s.usersFile, &users); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		s.users[u.ID] = u
	}
	return nil
}

func (s *FileStorage) loadCohort() error {
	var c cohortFile
	if err := decodeFile(s.cohortPath, &c); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cohort = c
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveRecords() error {
	s.mu.RLock()
	recs := make([]*record.Record, 0, len(s.records))
	for _, r := range s.records {
		recs = append(recs, r)
	}
	s.mu.RUnlock()
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Date < recs[j].Date })
	return atomicWriteFileJSON(s.recordsFile, recs)
}

func (s *FileStorage) saveUsers() error {
	s.mu.RLock()
	users := make([]*internal.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	s.mu.RUnlock()
	return atomicWriteFileJSON(s.usersFile, users)
}

func (s *FileStorage) saveRecordsWorker() {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()
	for {
		select {
		case <-s.saveRecsChan:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := s.saveRecords(); err != nil {
				s.logger.Errorf("storage: error saving sleep records: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func (s *FileStorage) saveUsersWorker() {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()
	for {
		select {
		case <-s.saveUsersChan:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := s.saveUsers(); err != nil {
				s.logger.Errorf("storage: error saving users: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func (s *FileStorage) Close() error {
	close(s.shutdownChan)
	if err := s.saveRecords(); err != nil {
		return err
	}
	return s.saveUsers()
}

// SeedCohort installs the demo cohort sources and persists them. Used once
// on first run when no cohort file exists.
func (s *FileStorage) SeedCohort(friends, global []rank.Summary) error {
	s.mu.Lock()
	s.cohort = cohortFile{Friends: friends, Global: global}
	s.mu.Unlock()
	return atomicWriteFileJSON(s.cohortPath, s.cohort)
}

// HasCohort reports whether any cohort data is loaded.
func (s *FileStorage) HasCohort() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cohort.Friends) > 0 || len(s.cohort.Global) > 0
}

// --- SleepRecordRepository ---

// SaveRecord is last-write-wins by id; a record sharing the date of an
// existing one replaces it, keeping one record per date per user.
func (s *FileStorage) SaveRecord(ctx context.Context, rec *record.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.records[rec.ID]; ok {
		s.dropFromIndex(old)
	} else {
		for _, existing := range s.userIndex[rec.UserID] {
			if existing.Date == rec.Date {
				delete(s.records, existing.ID)
				s.dropFromIndex(existing)
				break
			}
		}
	}
	s.records[rec.ID] = rec
	logs := append(s.userIndex[rec.UserID], rec)
	sort.SliceStable(logs, func(i, j int) bool { return logs[i].Date < logs[j].Date })
	s.userIndex[rec.UserID] = logs

	select {
	case s.saveRecsChan <- struct{}{}:
	default:
	}
	return nil
}

func (s *FileStorage) dropFromIndex(rec *record.Record) {
	logs := s.userIndex[rec.UserID]
	for i, r := range logs {
		if r.ID == rec.ID {
			s.userIndex[rec.UserID] = append(logs[:i], logs[i+1:]...)
			return
		}
	}
}

func (s *FileStorage) ListRecords(ctx context.Context, userID string) ([]record.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ptrs, ok := s.userIndex[userID]
	if !ok {
		return []record.Record{}, nil
	}
	recs := make([]record.Record, len(ptrs))
	for i, r := range ptrs {
		recs[i] = *r
	}
	return recs, nil
}

// --- CohortRepository ---

func (s *FileStorage) Friends(ctx context.Context, userID string) ([]rank.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rank.Summary, len(s.cohort.Friends))
	copy(out, s.cohort.Friends)
	return out, nil
}

func (s *FileStorage) Global(ctx context.Context) ([]rank.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rank.Summary, len(s.cohort.Global))
	copy(out, s.cohort.Global)
	return out, nil
}

// --- UserRepository ---

func (s *FileStorage) SaveUser(ctx context.Context, user *internal.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	select {
	case s.saveUsersChan <- struct{}{}:
	default:
	}
	return nil
}

func (s *FileStorage) FindUserByID(ctx context.Context, id string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, errors.New("storage: user not found")
	}
	out := *u
	return &out, nil
}

func (s *FileStorage) FindUserByName(ctx context.Context, name string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Name == name {
			out := *u
			return &out, nil
		}
	}
	return nil, errors.New("storage: user not found")
}

var _ SleepRecordRepository = (*FileStorage)(nil)
var _ CohortRepository = (*FileStorage)(nil)
var _ UserRepository = (*FileStorage)(nil)
