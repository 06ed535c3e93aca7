package db

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orrn/labelhook/internal/config"
	"github.com/orrn/labelhook/internal/core"
)

func TestJobKey(t *testing.T) {
	assert.Equal(t, "print_jobs/abc123", JobKey("abc123"))
}

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStore_WriteAndGet(t *testing.T) {
	s, mr := newTestRedisStore(t)
	ctx := context.Background()

	job := &core.PrintJob{ID: core.JobID("Hello", 1), Text: "Hello", Quantity: 3}
	require.NoError(t, s.WriteJob(ctx, job))

	assert.Equal(t, "Hello", mr.HGet(JobKey(job.ID), "text"))
	assert.Equal(t, "3", mr.HGet(JobKey(job.ID), "qty"))

	got, err := s.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job, got.Job())
}

func TestRedisStore_WriteOverwrites(t *testing.T) {
	s, mr := newTestRedisStore(t)
	ctx := context.Background()

	key := JobKey("abc")
	mr.HSet(key, "stale", "field")
	mr.HSet(key, "text", "first")

	require.NoError(t, s.WriteJob(ctx, &core.PrintJob{ID: "abc", Text: "second", Quantity: 2}))

	fields, err := mr.HKeys(key)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"text", "qty"}, fields)
	assert.Equal(t, "second", mr.HGet(key, "text"))
	assert.Equal(t, "2", mr.HGet(key, "qty"))
}

func TestRedisStore_RejectsInvalidJob(t *testing.T) {
	s, mr := newTestRedisStore(t)

	assert.Error(t, s.WriteJob(context.Background(), &core.PrintJob{ID: "a", Text: "", Quantity: 1}))
	assert.False(t, mr.Exists(JobKey("a")))
}

func TestRedisStore_GetMissing(t *testing.T) {
	s, _ := newTestRedisStore(t)

	_, err := s.GetJob(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestRedisStore_ServerDown(t *testing.T) {
	s, mr := newTestRedisStore(t)
	mr.Close()

	ctx := context.Background()
	assert.Error(t, s.WriteJob(ctx, &core.PrintJob{ID: "a", Text: "x", Quantity: 1}))
	assert.Error(t, s.Ping(ctx))
}

func TestNewStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := NewStore(config.StoreConfig{Driver: "redis", RedisAddr: mr.Addr()})
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.WriteJob(ctx, &core.PrintJob{ID: "abc", Text: "Hello", Quantity: 1}))
	assert.Equal(t, "Hello", mr.HGet(JobKey("abc"), "text"))
}
