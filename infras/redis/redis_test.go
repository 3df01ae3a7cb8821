package redis_test

import (
	"testing"

	"todoapi/config"
	"todoapi/infras/redis"

	"github.com/stretchr/testify/assert"
)

func TestNew_DisabledCache(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enable = false

	assert.Nil(t, redis.New(cfg))
}
