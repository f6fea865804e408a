package storage

import "github.com/qiaoohe/Sleep-Planet/internal"

// Repositories bundles the three repository views every backend provides.
type Repositories struct {
	Records SleepRecordRepository
	Cohorts CohortRepository
	Users   UserRepository
}

func NewFileRepositories(recordsFile, usersFile, cohortFile string, logger internal.Logger) (*Repositories, *FileStorage, error) {
	s, err := NewFileStorage(recordsFile, usersFile, cohortFile, logger)
	if err != nil {
		return nil, nil, err
	}
	return &Repositories{Records: s, Cohorts: s, Users: s}, s, nil
}

func NewPostgresRepositories(dsn string, logger internal.Logger) (*Repositories, error) {
	s, err := NewPostgresStorage(dsn, logger)
	if err != nil {
		return nil, err
	}
	return &Repositories{Records: s, Cohorts: s, Users: s}, nil
}
