package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/types"
)

// CompletionCache fronts per-cluster registry reads for dashboards. The
// registry in postgres stays authoritative; every upsert invalidates the
// cluster's key, so a stale hit can only predate the invalidation.
type CompletionCache interface {
	Get(ctx context.Context, clusterID uuid.UUID) ([]*types.ModuleCompletion, bool)
	Set(ctx context.Context, clusterID uuid.UUID, rows []*types.ModuleCompletion)
	Invalidate(ctx context.Context, clusterID uuid.UUID)
	Close() error
}

type completionCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewCompletionCache(log *logger.Logger) (CompletionCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &completionCache{
		log: log.With("service", "CompletionCache"),
		rdb: rdb,
		ttl: 5 * time.Minute,
	}, nil
}

func cacheKey(clusterID uuid.UUID) string {
	return "completion:cluster:" + clusterID.String()
}

func (c *completionCache) Get(ctx context.Context, clusterID uuid.UUID) ([]*types.ModuleCompletion, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, cacheKey(clusterID)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("Completion cache read failed", "error", err, "cluster_id", clusterID)
		}
		return nil, false
	}

	var rows []*types.ModuleCompletion
	if err := json.Unmarshal(raw, &rows); err != nil {
		c.log.Warn("Completion cache entry unreadable, dropping", "error", err, "cluster_id", clusterID)
		_ = c.rdb.Del(ctx, cacheKey(clusterID)).Err()
		return nil, false
	}
	return rows, true
}

func (c *completionCache) Set(ctx context.Context, clusterID uuid.UUID, rows []*types.ModuleCompletion) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		c.log.Warn("Completion cache marshal failed", "error", err, "cluster_id", clusterID)
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(clusterID), raw, c.ttl).Err(); err != nil {
		c.log.Warn("Completion cache write failed", "error", err, "cluster_id", clusterID)
	}
}

func (c *completionCache) Invalidate(ctx context.Context, clusterID uuid.UUID) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, cacheKey(clusterID)).Err(); err != nil {
		c.log.Warn("Completion cache invalidate failed", "error", err, "cluster_id", clusterID)
	}
}

func (c *completionCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
