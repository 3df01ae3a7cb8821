package cache_test

import (
	"context"
	"testing"

	"todoapi/infras/otel/mocks"
	"todoapi/shared/cache"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisCache_NilClientMisses(t *testing.T) {
	c := cache.NewRedisCache(nil, mocks.NewOtel())
	ctx := context.Background()

	assert.NoError(t, c.Save(ctx, "todo:list", []string{"a"}, 60))

	var value []string
	err := c.Get(ctx, "todo:list", &value)

	assert.ErrorIs(t, err, cache.Nil)
	assert.Nil(t, value)
	assert.NoError(t, c.Delete(ctx, "todo:list"))
	assert.NoError(t, c.Clear(ctx, "todo"))

	version, err := c.Incr(ctx, "todo:list:version")
	assert.NoError(t, err)
	assert.Zero(t, version)
}
