package repository

import (
	"context"
	"maps"
	"slices"
	"sync"

	"todoapi/internal/domains/todo/model"
)

type memoryImpl struct {
	mu     sync.RWMutex
	todos  map[int64]model.Todo
	lastID int64
}

// NewMemory returns a process-local store. Ids keep increasing for the lifetime of the
// store, DeleteAll included.
func NewMemory() Todo {
	return &memoryImpl{
		todos: map[int64]model.Todo{},
	}
}

func (r *memoryImpl) GetAll(_ context.Context) ([]model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]model.Todo, 0, len(r.todos))
	for _, id := range slices.Sorted(maps.Keys(r.todos)) {
		todos = append(todos, r.todos[id])
	}

	return todos, nil
}

func (r *memoryImpl) Get(_ context.Context, id int64) (model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.todos[id], nil
}

func (r *memoryImpl) Exist(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.todos[id]

	return ok, nil
}

func (r *memoryImpl) Save(_ context.Context, todo model.Todo) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if todo.IsTransient() {
		r.lastID++
		todo.ID = r.lastID
	} else if _, ok := r.todos[todo.ID]; !ok {
		// same as an UPDATE that matches no rows
		return todo, nil
	}

	r.todos[todo.ID] = todo

	return todo, nil
}

func (r *memoryImpl) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.todos, id)

	return nil
}

func (r *memoryImpl) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.todos)

	return nil
}
