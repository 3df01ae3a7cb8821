package helper_test

import (
	"testing"

	"todoapi/config"
	"todoapi/helper"

	"github.com/stretchr/testify/assert"
)

func TestConnectionString(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Write.Username = "todo"
	cfg.DB.Postgres.Write.Password = "secret"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Name = "todos"
	cfg.DB.Postgres.Write.SSLMode = "disable"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"

	assert.Equal(t,
		"postgres://todo:secret@db:5432/todos?sslmode=disable&x-migrations-table=schema_migrations",
		helper.ConnectionString(cfg),
	)
}

func TestRunner(t *testing.T) {
	t.Run("memory store skips migrations", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.DB.Driver = config.DBDriverMemory

		assert.NoError(t, helper.Up(cfg))
	})

	t.Run("unknown action", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.DB.Driver = config.DBDriverPostgres

		assert.ErrorIs(t, helper.Runner(cfg, "sideways"), helper.ErrUnknownAction)
	})
}
