package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"todoapi/config"
	"todoapi/infras/otel"
	"todoapi/internal/domains/todo/model"
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/internal/domains/todo/repository"
	"todoapi/shared"
	"todoapi/shared/cache"
	"todoapi/shared/constant"
	"todoapi/shared/failure"

	"github.com/rs/zerolog/log"
)

// Cached lists live under a generation that every write bumps, so a list read before a
// write can only be stored under a generation no reader asks for anymore.
var (
	cacheKeyListVersion = shared.BuildCacheKey(model.EntityName, "list", "version")
	cacheKeyListPrefix  = shared.BuildCacheKey(model.EntityName, "list", "gen") + ":"
)

func listCacheKey(generation int64) string {
	return cacheKeyListPrefix + strconv.FormatInt(generation, 10)
}

type Todo interface {
	List(ctx context.Context) ([]dto.TodoResponse, error)
	Get(ctx context.Context, id int64) (dto.TodoResponse, error)
	Create(ctx context.Context, req dto.TodoRequest) (dto.TodoResponse, error)
	Update(ctx context.Context, id int64, req dto.TodoRequest) (dto.TodoResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Todo
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Todo, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func notFound(id int64) error {
	return failure.BadRequestFromString(model.MessageNotFound(id)) //nolint:wrapcheck
}

// List returns every todo ordered by id, from the cache when it holds the current list.
func (s *serviceImpl) List(ctx context.Context) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	generation, cacheable := s.listGeneration(ctx)
	key := listCacheKey(generation)

	if cacheable {
		cached := []dto.TodoResponse{}

		cacheErr := s.cache.Get(ctx, key, &cached)
		if cacheErr == nil {
			scope.AddEvent("todo list served from cache")

			return cached, nil
		}

		if !errors.Is(cacheErr, cache.Nil) {
			log.Warn().Err(cacheErr).Str("key", key).Msg("failed to read todo list from cache")
		}
	}

	todos, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	res = dto.FromModels(todos)

	if !cacheable {
		return res, nil
	}

	if cacheErr := s.cache.Save(ctx, key, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("key", key).Msg("failed to cache todo list")
	}

	return res, nil
}

// listGeneration reads the current list generation. A missing counter is generation 0.
// When the counter cannot be read the list is neither read from nor written to the cache.
func (s *serviceImpl) listGeneration(ctx context.Context) (int64, bool) {
	var generation int64

	err := s.cache.Get(ctx, cacheKeyListVersion, &generation)
	if err == nil || errors.Is(err, cache.Nil) {
		return generation, true
	}

	log.Warn().Err(err).Str("key", cacheKeyListVersion).Msg("failed to read todo list generation")

	return 0, false
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.IsTransient() {
		return res, notFound(id)
	}

	res.FromModel(todo)

	return res, nil
}

// Create stores a new todo. Any id in the request is ignored.
func (s *serviceImpl) Create(ctx context.Context, req dto.TodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.repo.Save(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	s.invalidate(ctx)

	log.Info().Int64("id", todo.ID).Msg("todo created")

	res.FromModel(todo)

	return res, nil
}

// Update replaces title, description, completed and createdAt of an existing todo. The
// path id wins over any id in the request.
func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.TodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if existing.IsTransient() {
		log.Warn().Int64("id", id).Msg("todo not found")

		return res, notFound(id)
	}

	updated := req.ToModel()
	updated.ID = existing.ID

	todo, err := s.repo.Save(ctx, updated)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update todo")

		return res, fmt.Errorf("failed to update todo: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.Exist(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to check if todo exists")

		return fmt.Errorf("failed to check if todo exists: %w", err)
	}

	if !exist {
		log.Warn().Int64("id", id).Msg("todo not found")

		return notFound(id)
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	if _, err := s.cache.Incr(ctx, cacheKeyListVersion); err != nil {
		log.Warn().Err(err).Str("key", cacheKeyListVersion).Msg("failed to bump todo list generation")
	}

	if err := s.cache.Clear(ctx, cacheKeyListPrefix); err != nil {
		log.Warn().Err(err).Str("prefix", cacheKeyListPrefix).Msg("failed to clear cached todo lists")
	}
}
