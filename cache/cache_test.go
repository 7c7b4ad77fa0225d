package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rc.Close() })
	return NewRedis(rc, time.Minute), mr
}

func TestStoreAndInvalidate(t *testing.T) {
	c, mr := newRedis(t)
	ctx := context.Background()

	c.Store(ctx, "GET /boards", []byte(`[]`), []string{"boards"})
	c.Store(ctx, "GET /boards/free", []byte(`{"slug":"free"}`), []string{"boards", "board:free"})
	c.Store(ctx, "GET /categories", []byte(`[]`), []string{"categories"})

	b, ok := c.Load(ctx, "GET /boards/free")
	require.True(t, ok)
	assert.Equal(t, `{"slug":"free"}`, string(b))
	assert.True(t, mr.Exists(TagKey("board:free")))

	require.NoError(t, c.Invalidate(ctx, "boards"))

	_, ok = c.Load(ctx, "GET /boards")
	assert.False(t, ok)
	_, ok = c.Load(ctx, "GET /boards/free")
	assert.False(t, ok)
	_, ok = c.Load(ctx, "GET /categories")
	assert.True(t, ok)
	assert.False(t, mr.Exists(TagKey("boards")))
}

func TestTTL(t *testing.T) {
	c, mr := newRedis(t)
	ctx := context.Background()

	c.Store(ctx, "GET /boards", []byte(`[]`), nil)
	mr.FastForward(2 * time.Minute)

	_, ok := c.Load(ctx, "GET /boards")
	assert.False(t, ok)
}

func TestNilClient(t *testing.T) {
	c := NewRedis(nil, 0)
	ctx := context.Background()

	c.Store(ctx, "k", []byte("v"), []string{"t"})
	_, ok := c.Load(ctx, "k")
	assert.False(t, ok)
	assert.NoError(t, c.Invalidate(ctx, "t"))

	rc, err := NewClient(ctx, nil)
	assert.NoError(t, err)
	assert.Nil(t, rc)
}

func TestNoop(t *testing.T) {
	var n Noop
	n.Store(context.Background(), "k", []byte("v"), nil)
	_, ok := n.Load(context.Background(), "k")
	assert.False(t, ok)
	assert.NoError(t, n.Invalidate(context.Background(), "boards"))
}
