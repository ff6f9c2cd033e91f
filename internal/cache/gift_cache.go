package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	dom "yuletide/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyList = "gift:list"
	keyGen  = "gift:gen"
)

// ErrStale is returned by SetList when a write invalidated the list after
// the caller read its generation.
var ErrStale = errors.New("cache: list generation moved")

// GiftCache caches the full ordered gift list in Redis.
type GiftCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewGiftCache returns a new GiftCache.
func NewGiftCache(rdb *redis.Client, ttl time.Duration) *GiftCache {
	return &GiftCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list, or nil on a miss.
func (c *GiftCache) GetList(ctx context.Context) ([]dom.Gift, error) {
	b, err := c.rdb.Get(ctx, keyList).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	list := []dom.Gift{}
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Generation returns the invalidation counter. Read it before loading the
// list from the store and hand it to SetList.
func (c *GiftCache) Generation(ctx context.Context) (int64, error) {
	return generation(ctx, c.rdb)
}

// SetList stores the list unless Invalidate ran since gen was read.
func (c *GiftCache) SetList(ctx context.Context, gen int64, list []dom.Gift) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := generation(ctx, tx)
		if err != nil {
			return err
		}
		if cur != gen {
			return ErrStale
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, keyList, b, c.ttl)
			return nil
		})
		return err
	}, keyGen)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrStale
	}
	return err
}

// Invalidate bumps the generation and drops the cached list; called after
// every write.
func (c *GiftCache) Invalidate(ctx context.Context) error {
	_, err := c.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, keyGen)
		p.Del(ctx, keyList)
		return nil
	})
	return err
}

func generation(ctx context.Context, cmd redis.Cmdable) (int64, error) {
	gen, err := cmd.Get(ctx, keyGen).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}
