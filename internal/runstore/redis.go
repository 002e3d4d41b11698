// Package runstore persists run history outside the process and indexes completed runs.
package runstore

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/models"
)

const DefaultRedisKey = "sitegen:runs"

// RedisStore keeps history in a single Redis list, one JSON record per element.
// RPUSH makes list order equal completion order.
type RedisStore struct {
	rdb redis.Cmdable
	key string
}

func NewRedisStore(rdb redis.Cmdable, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{rdb: rdb, key: key}
}

func (s *RedisStore) Add(ctx context.Context, run models.GenerationRun) error {
	data, err := json.Marshal(run)
	if err != nil {
		return errors.NewStoreError("encode", err)
	}
	if err := s.rdb.RPush(ctx, s.key, data).Err(); err != nil {
		return errors.NewStoreError("add", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]models.GenerationRun, error) {
	vals, err := s.rdb.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, errors.NewStoreError("list", err)
	}
	runs := make([]models.GenerationRun, 0, len(vals))
	for _, v := range vals {
		var run models.GenerationRun
		if err := json.Unmarshal([]byte(v), &run); err != nil {
			return nil, errors.NewStoreError("decode", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return errors.NewStoreError("clear", err)
	}
	return nil
}
