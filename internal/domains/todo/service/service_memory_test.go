package service_test

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"todoapi/config"
	"todoapi/infras/otel/mocks"
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/internal/domains/todo/repository"
	"todoapi/internal/domains/todo/service"
	"todoapi/shared/cache"
	"todoapi/shared/failure"
	"todoapi/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryService() service.Todo {
	otel := mocks.NewOtel()

	return service.New(repository.NewMemory(), &config.Config{}, cache.NewRedisCache(nil, otel), otel)
}

func randomRequest(rng *rand.Rand, i int) dto.TodoRequest {
	date := timezone.NewDate(2020+rng.IntN(5), time.Month(1+rng.IntN(12)), 1+rng.IntN(28))

	return dto.TodoRequest{
		Title:       ptr(fmt.Sprintf("title %d", i)),
		Description: ptr(fmt.Sprintf("description %d", rng.IntN(1000))),
		Completed:   ptr(rng.IntN(2) == 1),
		CreatedAt:   &date,
	}
}

func TestTodoService_ListEmpty(t *testing.T) {
	result, err := newMemoryService().List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestTodoService_CreatedTodosAreListedInOrder(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(1, 2))

	for _, count := range []int{1, 5, 30} {
		t.Run(fmt.Sprintf("%d creates", count), func(t *testing.T) {
			svc := newMemoryService()
			created := make([]dto.TodoResponse, 0, count)
			seen := map[int64]bool{}

			for i := range count {
				req := randomRequest(rng, i)

				todo, err := svc.Create(ctx, req)
				require.NoError(t, err)
				require.NotNil(t, todo.ID)

				assert.False(t, seen[*todo.ID], "id %d assigned twice", *todo.ID)
				seen[*todo.ID] = true

				assert.Equal(t, *req.Title, todo.Title)
				assert.Equal(t, *req.Description, todo.Description)
				assert.Equal(t, *req.Completed, todo.Completed)
				assert.Equal(t, *req.CreatedAt, todo.CreatedAt)

				created = append(created, todo)
			}

			listed, err := svc.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, created, listed)

			again, err := svc.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, listed, again)
		})
	}
}

func TestTodoService_UpdateKeepsPathID(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(3, 4))
	svc := newMemoryService()

	for i := range 10 {
		created, err := svc.Create(ctx, randomRequest(rng, i))
		require.NoError(t, err)

		req := randomRequest(rng, i+100)
		req.ID = ptr(int64(rng.IntN(1000) + 1000))

		updated, err := svc.Update(ctx, *created.ID, req)
		require.NoError(t, err)

		assert.Equal(t, *created.ID, *updated.ID)
		assert.Equal(t, *req.Title, updated.Title)
		assert.Equal(t, *req.Description, updated.Description)
		assert.Equal(t, *req.Completed, updated.Completed)
		assert.Equal(t, *req.CreatedAt, updated.CreatedAt)

		stored, err := svc.Get(ctx, *created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, stored)
	}
}

func TestTodoService_SecondDeleteFails(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	created, err := svc.Create(ctx, cleanRoom())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, *created.ID))

	err = svc.Delete(ctx, *created.ID)
	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
	assert.Equal(t, fmt.Sprintf("Todo with id %d is not found", *created.ID), err.Error())

	_, err = svc.Get(ctx, *created.ID)
	assert.Error(t, err)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestTodoService_NotFoundCarriesID(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	for _, id := range []int64{1, 42, 9000} {
		_, err := svc.Update(ctx, id, cleanRoom())
		require.Error(t, err)
		assert.Contains(t, err.Error(), fmt.Sprintf("id %d ", id))

		err = svc.Delete(ctx, id)
		require.Error(t, err)
		assert.Contains(t, err.Error(), fmt.Sprintf("id %d ", id))
	}
}
