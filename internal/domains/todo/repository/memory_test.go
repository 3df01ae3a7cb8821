package repository_test

import (
	"context"
	"sync"
	"testing"

	"todoapi/config"
	"todoapi/infras/otel/mocks"
	"todoapi/internal/domains/todo/model"
	"todoapi/internal/domains/todo/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MemoryDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Driver = config.DBDriverMemory

	repo := repository.New(cfg, nil, mocks.NewOtel())

	todos, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestMemory_SaveAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	first, err := repo.Save(ctx, model.Todo{Title: "first"})
	require.NoError(t, err)

	second, err := repo.Save(ctx, model.Todo{Title: "second"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, "first", first.Title)
}

func TestMemory_IDsAreNeverReused(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	saved, err := repo.Save(ctx, model.Todo{Title: "a"})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, saved.ID))

	next, err := repo.Save(ctx, model.Todo{Title: "b"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)

	require.NoError(t, repo.DeleteAll(ctx))

	afterClear, err := repo.Save(ctx, model.Todo{Title: "c"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), afterClear.ID)
}

func TestMemory_SaveExistingReplaces(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	saved, err := repo.Save(ctx, model.Todo{Title: "a", Description: "b"})
	require.NoError(t, err)

	saved.Title = "changed"
	saved.Completed = true

	_, err = repo.Save(ctx, saved)
	require.NoError(t, err)

	stored, err := repo.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, stored.Equal(saved))
}

func TestMemory_SaveUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	_, err := repo.Save(ctx, model.Todo{ID: 10, Title: "ghost"})
	require.NoError(t, err)

	exist, err := repo.Exist(ctx, 10)
	require.NoError(t, err)
	assert.False(t, exist)

	created, err := repo.Save(ctx, model.Todo{Title: "real"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestMemory_GetAbsentReturnsZeroValue(t *testing.T) {
	repo := repository.NewMemory()

	todo, err := repo.Get(context.Background(), 5)

	require.NoError(t, err)
	assert.True(t, todo.IsTransient())
}

func TestMemory_GetAllOrderedByID(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	for _, title := range []string{"a", "b", "c", "d"} {
		_, err := repo.Save(ctx, model.Todo{Title: title})
		require.NoError(t, err)
	}

	require.NoError(t, repo.Delete(ctx, 2))

	todos, err := repo.GetAll(ctx)
	require.NoError(t, err)

	ids := make([]int64, 0, len(todos))
	for _, todo := range todos {
		ids = append(ids, todo.ID)
	}

	assert.Equal(t, []int64{1, 3, 4}, ids)
}

func TestMemory_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	const workers = 50

	var wg sync.WaitGroup

	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()

			_, _ = repo.Save(ctx, model.Todo{Title: "parallel"})
		}()
	}

	wg.Wait()

	todos, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, todos, workers)

	for i, todo := range todos {
		assert.Equal(t, int64(i+1), todo.ID)
	}
}
