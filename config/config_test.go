package config_test

import (
	"testing"

	"todoapi/config"

	"github.com/stretchr/testify/assert"
)

func TestGet_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", config.DBDriverMemory)

	cfg := config.Get()

	assert.NotNil(t, cfg)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "todoapi", cfg.App.Name)
	assert.Equal(t, 60, cfg.Cache.TTL)
	assert.True(t, cfg.IsMemoryStore())
	assert.Same(t, cfg, config.Get())
}

func TestConfig_IsMemoryStore(t *testing.T) {
	cfg := &config.Config{}

	cfg.DB.Driver = config.DBDriverPostgres
	assert.False(t, cfg.IsMemoryStore())

	cfg.DB.Driver = config.DBDriverMemory
	assert.True(t, cfg.IsMemoryStore())
}
