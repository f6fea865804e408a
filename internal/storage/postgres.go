package storage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qiaoohe/Sleep-Planet/internal"
	"github.com/qiaoohe/Sleep-Planet/internal/rank"
	"github.com/qiaoohe/Sleep-Planet/internal/record"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func (p *PostgresStorage) Close() {
	p.pool.Close()
}

// --- SleepRecordRepository ---

func (p *PostgresStorage) SaveRecord(ctx context.Context, rec *record.Record) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO sleep_records (id, user_id, date, status, bed_time, wake_time, duration, quality, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, date) DO UPDATE SET
			status = EXCLUDED.status, bed_time = EXCLUDED.bed_time, wake_time = EXCLUDED.wake_time,
			duration = EXCLUDED.duration, quality = EXCLUDED.quality`,
		rec.ID, rec.UserID, rec.Date, rec.Status, rec.BedTime, rec.WakeTime, rec.Duration, rec.Quality, rec.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to upsert sleep record: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListRecords(ctx context.Context, userID string) ([]record.Record, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, date, status, bed_time, wake_time, duration, quality, created_at
		FROM sleep_records WHERE user_id = $1 ORDER BY date ASC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query sleep records: %v", err)
		return nil, err
	}
	defer rows.Close()

	var recs []record.Record
	for rows.Next() {
		var r record.Record
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.Status, &r.BedTime, &r.WakeTime, &r.Duration, &r.Quality, &r.CreatedAt); err != nil {
			p.logger.Errorf("failed to scan sleep record: %v", err)
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// --- CohortRepository ---

func (p *PostgresStorage) Friends(ctx context.Context, userID string) ([]rank.Summary, error) {
	return p.cohortByScope(ctx, `SELECT id, name, avatar_color, presence, sleep_score, last_duration, bed_time, wake_time
		FROM cohort_members WHERE scope = 'friends' AND owner_id = $1`, userID)
}

func (p *PostgresStorage) Global(ctx context.Context) ([]rank.Summary, error) {
	return p.cohortByScope(ctx, `SELECT id, name, avatar_color, presence, sleep_score, last_duration, bed_time, wake_time
		FROM cohort_members WHERE scope = 'global'`)
}

func (p *PostgresStorage) cohortByScope(ctx context.Context, query string, args ...interface{}) ([]rank.Summary, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Errorf("failed to query cohort: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []rank.Summary
	for rows.Next() {
		var s rank.Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.AvatarColor, &s.Presence, &s.SleepScore, &s.LastDuration, &s.BedTime, &s.WakeTime); err != nil {
			p.logger.Errorf("failed to scan cohort member: %v", err)
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// --- UserRepository ---

func (p *PostgresStorage) SaveUser(ctx context.Context, user *internal.User) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO users (id, name, email, avatar_color, created_at) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, avatar_color = EXCLUDED.avatar_color`,
		user.ID, user.Name, user.Email, user.AvatarColor, user.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to upsert user: %v", err)
	}
	return err
}

func (p *PostgresStorage) FindUserByID(ctx context.Context, id string) (*internal.User, error) {
	return p.scanUser(ctx, `SELECT id, name, email, avatar_color, created_at FROM users WHERE id = $1`, id)
}

func (p *PostgresStorage) FindUserByName(ctx context.Context, name string) (*internal.User, error) {
	return p.scanUser(ctx, `SELECT id, name, email, avatar_color, created_at FROM users WHERE name = $1`, name)
}

func (p *PostgresStorage) scanUser(ctx context.Context, query string, arg interface{}) (*internal.User, error) {
	row := p.pool.QueryRow(ctx, query, arg)
	var u internal.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.AvatarColor, &u.CreatedAt); err != nil {
		p.logger.Errorf("user not found: %v", err)
		return nil, err
	}
	return &u, nil
}

var _ SleepRecordRepository = (*PostgresStorage)(nil)
var _ CohortRepository = (*PostgresStorage)(nil)
var _ UserRepository = (*PostgresStorage)(nil)
