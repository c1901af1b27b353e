package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ollacart_server/structs"
	"ollacart_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

// CacheService fronts redis for the read-through product cache and the
// rate-limit counters. Every method degrades gracefully: a cache failure
// is logged and treated as a miss, never surfaced to the caller.
type CacheService struct {
	logger *gecho.Logger
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	cacheCfg := cfg.Cache

	client := redis.NewClient(&redis.Options{
		Addr:            cacheCfg.Address,
		Username:        cacheCfg.Username,
		Password:        cacheCfg.Password,
		DB:              cacheCfg.DB,
		PoolSize:        cacheCfg.PoolSize,
		MinIdleConns:    cacheCfg.MinIdleConns,
		MaxIdleConns:    cacheCfg.MaxIdleConns,
		PoolTimeout:     cacheCfg.PoolTimeout,
		ConnMaxIdleTime: cacheCfg.IdleTimeout,
		DialTimeout:     cacheCfg.DialTimeout,
		ReadTimeout:     cacheCfg.ReadTimeout,
		WriteTimeout:    cacheCfg.WriteTimeout,
		MaxRetries:      cacheCfg.MaxRetries,
		MinRetryBackoff: cacheCfg.MinRetryBackoff,
		MaxRetryBackoff: cacheCfg.MaxRetryBackoff,
	})

	return &CacheService{
		logger: logger,
		client: client,
		ttl:    cacheCfg.ProductTTL,
	}
}

func productKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}

// GetProduct returns the cached product and whether it was present.
func (cs *CacheService) GetProduct(ctx context.Context, id string) (*tables.Product, bool) {
	data, err := cs.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			cs.logger.Warn("Product cache read failed", gecho.Field("id", id), gecho.Field("error", err))
		}
		return nil, false
	}

	var product tables.Product
	if err := json.Unmarshal(data, &product); err != nil {
		cs.logger.Warn("Corrupt product cache entry, dropping", gecho.Field("id", id), gecho.Field("error", err))
		cs.InvalidateProduct(ctx, id)
		return nil, false
	}

	return &product, true
}

func (cs *CacheService) SetProduct(ctx context.Context, product *tables.Product) {
	data, err := json.Marshal(product)
	if err != nil {
		cs.logger.Warn("Failed to encode product for cache", gecho.Field("id", product.ID), gecho.Field("error", err))
		return
	}

	if err := cs.client.Set(ctx, productKey(product.ID), data, cs.ttl).Err(); err != nil {
		cs.logger.Warn("Product cache write failed", gecho.Field("id", product.ID), gecho.Field("error", err))
	}
}

func (cs *CacheService) InvalidateProduct(ctx context.Context, id string) {
	if err := cs.client.Del(ctx, productKey(id)).Err(); err != nil {
		cs.logger.Warn("Product cache invalidation failed", gecho.Field("id", id), gecho.Field("error", err))
	}
}

// IncrementRateLimit bumps the counter for key within the given window and
// returns the new count. The first hit in a window sets the expiry.
func (cs *CacheService) IncrementRateLimit(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := cs.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate limit increment failed: %w", err)
	}

	return incr.Val(), nil
}

func (cs *CacheService) Health(ctx context.Context) error {
	return cs.client.Ping(ctx).Err()
}

func (cs *CacheService) Close() error {
	return cs.client.Close()
}
