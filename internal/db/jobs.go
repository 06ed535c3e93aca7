package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/orrn/labelhook/internal/core"
)

var ErrJobNotFound = errors.New("job not found")

// SQLiteStore keeps print jobs in the print_jobs table, one row per job ID.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(database *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: database}
}

func (s *SQLiteStore) WriteJob(ctx context.Context, job *core.PrintJob) error {
	if err := job.Validate(); err != nil {
		return fmt.Errorf("failed to write job: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, UpsertJob, job.ID, job.Text, job.Quantity); err != nil {
		return fmt.Errorf("failed to write job: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetJob(ctx context.Context, id string) (*PrintJob, error) {
	j := &PrintJob{}
	err := s.db.QueryRowContext(ctx, GetJobByID, id).Scan(&j.ID, &j.Text, &j.Qty, &j.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

func (s *SQLiteStore) ListJobs(ctx context.Context, limit int) ([]*PrintJob, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, ListJobs, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*PrintJob
	for rows.Next() {
		j := &PrintJob{}
		if err := rows.Scan(&j.ID, &j.Text, &j.Qty, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (s *SQLiteStore) CountJobs(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, CountJobs).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
