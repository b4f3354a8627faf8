package cache

import (
	"context"
	"time"

	"github.com/bizplatform/pmcore/internal/config"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func New(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
}

// RegisterOpenTelemetryPlugin adds command spans. Call it after the tracer provider is set.
func RegisterOpenTelemetryPlugin(rdb *redis.Client) error {
	return redisotel.InstrumentTracing(rdb)
}

// Deduper lets one caller per key through during ttl.
type Deduper struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
	log    *zap.Logger
}

func NewDeduper(rdb *redis.Client, prefix string, ttl time.Duration, log *zap.Logger) *Deduper {
	return &Deduper{rdb: rdb, ttl: ttl, prefix: prefix, log: log}
}

// AcquireOnce reports whether this is the first call for key within the ttl.
// When redis is unreachable it lets the caller through.
func (d *Deduper) AcquireOnce(ctx context.Context, key string) bool {
	full := d.prefix + ":" + key
	ok, err := d.rdb.SetNX(ctx, full, 1, d.ttl).Result()
	if err != nil {
		if d.log != nil {
			d.log.Sugar().Warnw("dedup check failed, allowing", "key", full, "err", err)
		}
		return true
	}
	if !ok && d.log != nil {
		d.log.Sugar().Debugw("skipped duplicate", "key", full)
	}
	return ok
}

// Release drops key so the next AcquireOnce for it succeeds.
func (d *Deduper) Release(ctx context.Context, key string) {
	full := d.prefix + ":" + key
	if err := d.rdb.Del(ctx, full).Err(); err != nil && d.log != nil {
		d.log.Sugar().Warnw("dedup release failed", "key", full, "err", err)
	}
}
