package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithoutURLDisablesCache(t *testing.T) {
	assert.Nil(t, New(""))
}

func TestNewWithBadURLDisablesCache(t *testing.T) {
	assert.Nil(t, New("not a url"))
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *ListCache
	ctx := context.Background()

	body, ok := c.Get(ctx, KindClients)
	assert.Nil(t, body)
	assert.False(t, ok)

	c.Set(ctx, KindClients, []byte("[]"))
	c.Invalidate(ctx, KindClients)
}
