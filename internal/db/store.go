package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	goredis "github.com/redis/go-redis/v9"

	"github.com/orrn/labelhook/internal/config"
	"github.com/orrn/labelhook/internal/core"
)

// Store is what the server needs from a backend. Reading jobs back is left
// to the printer agent.
type Store interface {
	core.JobWriter
	Ping(ctx context.Context) error
	Close() error
}

// NewStore opens the backend selected by cfg.Driver.
func NewStore(cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "sqlite", "":
		if dir := filepath.Dir(cfg.Path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		database, err := Open(Config{Path: cfg.Path})
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(database), nil
	case "redis":
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return NewRedisStore(client), nil
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.Driver)
	}
}
