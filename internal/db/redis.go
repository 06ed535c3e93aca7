package db

import (
	"context"
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/orrn/labelhook/internal/core"
)

const jobKeyPrefix = "print_jobs/"

func JobKey(id string) string {
	return jobKeyPrefix + id
}

// RedisStore keeps each job as a hash {text, qty} at print_jobs/{id}.
// Redis hash fields are strings, so readers parse qty as a base-10 integer.
type RedisStore struct {
	client goredis.UniversalClient
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client goredis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

// WriteJob deletes then sets the hash in one transaction so a previous
// record at the same key is replaced, never merged.
func (s *RedisStore) WriteJob(ctx context.Context, job *core.PrintJob) error {
	if err := job.Validate(); err != nil {
		return fmt.Errorf("failed to write job: %w", err)
	}

	key := JobKey(job.ID)
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, "text", job.Text, "qty", job.Quantity)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write job: %w", err)
	}
	return nil
}

func (s *RedisStore) GetJob(ctx context.Context, id string) (*PrintJob, error) {
	fields, err := s.client.HGetAll(ctx, JobKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrJobNotFound
	}

	qty, err := strconv.Atoi(fields["qty"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse job qty: %w", err)
	}
	return &PrintJob{ID: id, Text: fields["text"], Qty: qty}, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
