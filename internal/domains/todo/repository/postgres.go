package repository

import (
	"context"
	"fmt"

	"todoapi/infras/otel"
	"todoapi/infras/postgres"
	"todoapi/internal/domains/todo/model"
	"todoapi/shared"
	"todoapi/shared/constant"
	gDto "todoapi/shared/dto"
	gRepo "todoapi/shared/repository"
)

type postgresImpl struct {
	repo gRepo.Repository[model.Todo]
	otel otel.Otel
}

func NewPostgres(db *postgres.Connection, otel otel.Otel) Todo {
	return &postgresImpl{
		repo: gRepo.NewRepository[model.Todo](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel: otel,
	}
}

func byID(id int64) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func (r *postgresImpl) GetAll(ctx context.Context) ([]model.Todo, error) {
	return r.repo.GetAll(ctx, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (r *postgresImpl) Get(ctx context.Context, id int64) (model.Todo, error) {
	return r.repo.Get(ctx, byID(id)) //nolint:wrapcheck
}

func (r *postgresImpl) Exist(ctx context.Context, id int64) (bool, error) {
	return r.repo.Exist(ctx, byID(id)) //nolint:wrapcheck
}

func (r *postgresImpl) Save(ctx context.Context, todo model.Todo) (model.Todo, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.Save")
	defer scope.End()

	if todo.IsTransient() {
		id, err := r.repo.Insert(ctx, todo)
		if err != nil {
			return model.Todo{}, fmt.Errorf("failed to save todo: %w", err)
		}

		todo.ID = id

		return todo, nil
	}

	scope.SetAttribute("todo.id", todo.ID)

	if err := r.repo.Update(ctx, todo.Fields(), byID(todo.ID)); err != nil {
		return model.Todo{}, fmt.Errorf("failed to save todo %d: %w", todo.ID, err)
	}

	return todo, nil
}

func (r *postgresImpl) Delete(ctx context.Context, id int64) error {
	return r.repo.Delete(ctx, byID(id)) //nolint:wrapcheck
}

func (r *postgresImpl) DeleteAll(ctx context.Context) error {
	return r.repo.DeleteAll(ctx) //nolint:wrapcheck
}
