package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"todoapi/config"
	"todoapi/infras/otel"
	"todoapi/infras/postgres"
	"todoapi/internal/domains/todo/model"
)

// Todo is the persistent collection of todos. Get returns the zero Todo when the id is
// absent. Save inserts a transient todo and assigns its id, or replaces the stored todo
// with the same id.
type Todo interface {
	GetAll(ctx context.Context) ([]model.Todo, error)
	Get(ctx context.Context, id int64) (model.Todo, error)
	Exist(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, todo model.Todo) (model.Todo, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

// New picks the store configured by DB_DRIVER.
func New(cfg *config.Config, db *postgres.Connection, otel otel.Otel) Todo {
	if cfg.IsMemoryStore() {
		return NewMemory()
	}

	return NewPostgres(db, otel)
}
