package cache

import (
	"context"
	"testing"
	"time"

	dom "yuletide/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*GiftCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewGiftCache(rdb, time.Minute), mr
}

func TestGetListMiss(t *testing.T) {
	c, _ := newTestCache(t)

	list, err := c.GetList(context.Background())
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestSetThenGetList(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	now := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
	want := []dom.Gift{
		{ID: 1, Kid: "Niko", Item: "Puzzle", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Kid: "Abby", CreatedAt: now, UpdatedAt: now},
	}

	require.NoError(t, c.SetList(ctx, 0, want))
	assert.Equal(t, time.Minute, mr.TTL(keyList))

	got, err := c.GetList(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, want[0].Kid, got[0].Kid)
	assert.Equal(t, want[1].ID, got[1].ID)
	assert.True(t, now.Equal(got[0].CreatedAt))
}

func TestEmptyListIsAHit(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetList(ctx, 0, []dom.Gift{}))

	got, err := c.GetList(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestInvalidate(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetList(ctx, 0, []dom.Gift{{ID: 1}}))
	require.NoError(t, c.Invalidate(ctx))
	assert.False(t, mr.Exists(keyList))

	gen, err := c.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)

	got, err := c.GetList(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSetListAfterInvalidateIsDropped(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	gen, err := c.Generation(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx))

	err = c.SetList(ctx, gen, []dom.Gift{{ID: 1}})
	assert.ErrorIs(t, err, ErrStale)
	assert.False(t, mr.Exists(keyList))

	gen, err = c.Generation(ctx)
	require.NoError(t, err)
	require.NoError(t, c.SetList(ctx, gen, []dom.Gift{{ID: 1}}))
	assert.True(t, mr.Exists(keyList))
}

func TestGetListCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set(keyList, "not json"))

	_, err := c.GetList(context.Background())
	assert.Error(t, err)
}
