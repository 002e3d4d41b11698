package runstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/redis/go-redis/v9"

	"sitegen-workers/internal/common/config"
	"sitegen-workers/internal/tracker"
)

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Backends carries the clients a store driver may need. Unused ones may be nil.
type Backends struct {
	Redis    redis.Cmdable
	Postgres *sql.DB
}

// Open returns the store named by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig, b Backends) (tracker.RunStore, error) {
	switch cfg.Driver {
	case "", DriverMemory:
		return tracker.NewMemoryStore(), nil
	case DriverRedis:
		if b.Redis == nil {
			return nil, fmt.Errorf("store driver %q needs a redis client", cfg.Driver)
		}
		return NewRedisStore(b.Redis, cfg.RedisKey), nil
	case DriverPostgres:
		if b.Postgres == nil {
			return nil, fmt.Errorf("store driver %q needs a postgres connection", cfg.Driver)
		}
		s, err := NewPostgresStore(b.Postgres, cfg.Table)
		if err != nil {
			return nil, err
		}
		if err := s.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
