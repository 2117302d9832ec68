package cache_test

import (
	"context"
	"testing"

	"lexicon-manager/core/cache"

	"github.com/stretchr/testify/assert"
)

func TestNilCacheIsNoOp(t *testing.T) {
	var c *cache.Cache
	ctx := context.Background()

	_, err := c.Get(ctx, "word:nri")
	assert.Error(t, err) // permanent miss

	assert.NoError(t, c.Set(ctx, "word:nri", []byte("{}")))
	assert.NoError(t, c.Delete(ctx, "word:nri"))
	assert.NoError(t, c.Close())
}

func TestWordKey(t *testing.T) {
	assert.Equal(t, "word:nri", cache.WordKey("Nri"))
	assert.Equal(t, "word:aga", cache.WordKey("aga"))
}

func TestNewRejectsBadURL(t *testing.T) {
	_, err := cache.New(cache.Config{URL: "not-a-url"})
	assert.Error(t, err)
}
