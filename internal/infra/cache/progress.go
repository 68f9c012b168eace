package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const progressTTL = 24 * time.Hour

// Progress is a done/total counter pair for a running job.
type Progress struct {
	Done  int64
	Total int64
}

// Percent is done*100/total capped at 99; completion is reported by the job row.
func (p Progress) Percent() int {
	if p.Total <= 0 {
		return 0
	}
	pct := int(p.Done * 100 / p.Total)
	if pct > 99 {
		pct = 99
	}
	return pct
}

// ProgressTracker keeps job progress counters in a redis hash.
type ProgressTracker struct {
	rdb    redis.Cmdable
	prefix string
}

func NewProgressTracker(rdb redis.Cmdable) *ProgressTracker {
	return &ProgressTracker{rdb: rdb, prefix: "sitegenie:progress:"}
}

func (t *ProgressTracker) key(id uuid.UUID) string {
	return t.prefix + id.String()
}

func (t *ProgressTracker) Start(ctx context.Context, id uuid.UUID, total int) error {
	k := t.key(id)
	pipe := t.rdb.TxPipeline()
	pipe.HSet(ctx, k, "done", 0, "total", total)
	pipe.Expire(ctx, k, progressTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis start progress failure: %w", err)
	}
	return nil
}

func (t *ProgressTracker) Incr(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := t.rdb.HIncrBy(ctx, t.key(id), "done", 1).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr progress failure: %w", err)
	}
	return n, nil
}

// Get returns ok=false when no counter exists for id.
func (t *ProgressTracker) Get(ctx context.Context, id uuid.UUID) (Progress, bool, error) {
	var v struct {
		Done  int64 `redis:"done"`
		Total int64 `redis:"total"`
	}
	res := t.rdb.HGetAll(ctx, t.key(id))
	if err := res.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return Progress{}, false, nil
		}
		return Progress{}, false, fmt.Errorf("redis get progress failure: %w", err)
	}
	if len(res.Val()) == 0 {
		return Progress{}, false, nil
	}
	if err := res.Scan(&v); err != nil {
		return Progress{}, false, fmt.Errorf("redis scan progress failure: %w", err)
	}
	return Progress{Done: v.Done, Total: v.Total}, true, nil
}

func (t *ProgressTracker) Clear(ctx context.Context, id uuid.UUID) error {
	if err := t.rdb.Del(ctx, t.key(id)).Err(); err != nil {
		return fmt.Errorf("redis clear progress failure: %w", err)
	}
	return nil
}
