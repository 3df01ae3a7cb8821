package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"todoapi/infras/otel/mocks"
	"todoapi/infras/postgres"
	"todoapi/shared"
	"todoapi/shared/dto"
	"todoapi/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Done bool   `db:"done"`
	Note string
}

func newRepository(t *testing.T) (repository.Repository[item], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return repository.NewRepository[item]("item", "items", "id", conn, mocks.NewOtel()), mock
}

func TestNewRepository_InsertColumns(t *testing.T) {
	repo, _ := newRepository(t)

	assert.Equal(t, []string{"name", "done"}, repo.InsertColumns)
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := newRepository(t)

	query := regexp.QuoteMeta("INSERT INTO items (name, done) VALUES ($1, $2) RETURNING id")

	mock.ExpectPrepare(query).
		ExpectQuery().
		WithArgs("write tests", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	id, err := repo.Insert(context.Background(), item{Name: "write tests"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InsertError(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO items")).
		ExpectQuery().
		WillReturnError(errors.New("connection reset"))

	id, err := repo.Insert(context.Background(), item{Name: "write tests"})

	assert.Error(t, err)
	assert.Zero(t, id)
}

func TestRepository_Get(t *testing.T) {
	query := regexp.QuoteMeta("SELECT items.id, items.name, items.done FROM items WHERE (items.id = $1)")

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(query).
			ExpectQuery().
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "done"}).AddRow(int64(1), "write tests", true))

		result, err := repo.Get(context.Background(), shared.FilterByID(1, "id", "items"))

		require.NoError(t, err)
		assert.Equal(t, item{ID: 1, Name: "write tests", Done: true}, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows returns zero value", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(query).
			ExpectQuery().
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "done"}))

		result, err := repo.Get(context.Background(), shared.FilterByID(9, "id", "items"))

		require.NoError(t, err)
		assert.Equal(t, item{}, result)
	})

	t.Run("filter required", func(t *testing.T) {
		repo, _ := newRepository(t)

		_, err := repo.Get(context.Background(), dto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestRepository_GetAll(t *testing.T) {
	query := regexp.QuoteMeta("SELECT items.id, items.name, items.done FROM items ORDER BY items.id ASC")

	t.Run("ordered rows", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(query).
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "done"}).
				AddRow(int64(1), "first", false).
				AddRow(int64(2), "second", true))

		result, err := repo.GetAll(context.Background(), dto.FilterGroup{})

		require.NoError(t, err)
		assert.Equal(t, []item{{ID: 1, Name: "first"}, {ID: 2, Name: "second", Done: true}}, result)
	})

	t.Run("empty table returns empty slice", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(query).
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "done"}))

		result, err := repo.GetAll(context.Background(), dto.FilterGroup{})

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("selected columns", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta("SELECT items.id, items.name FROM items ORDER BY items.id ASC")).
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(3), "third"))

		result, err := repo.GetAll(context.Background(), dto.FilterGroup{}, "id", "name")

		require.NoError(t, err)
		assert.Equal(t, []item{{ID: 3, Name: "third"}}, result)
	})
}

func TestRepository_Exist(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM items WHERE (items.id = $1))")).
		ExpectQuery().
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exist, err := repo.Exist(context.Background(), shared.FilterByID(4, "id", "items"))

	require.NoError(t, err)
	assert.True(t, exist)

	_, err = repo.Exist(context.Background(), dto.FilterGroup{})
	assert.Error(t, err)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE items SET done = $1, name = $2 WHERE (items.id = $3)")).
		WithArgs(true, "renamed", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), map[string]any{"name": "renamed", "done": true}, shared.FilterByID(2, "id", "items"))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Error(t, repo.Update(context.Background(), map[string]any{}, shared.FilterByID(2, "id", "items")))
	assert.Error(t, repo.Update(context.Background(), map[string]any{"name": "x"}, dto.FilterGroup{}))
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM items WHERE (items.id = $1)")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), shared.FilterByID(3, "id", "items")))
	assert.Error(t, repo.Delete(context.Background(), dto.FilterGroup{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteAll(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec("DELETE FROM items").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.DeleteAll(context.Background()))

	mock.ExpectExec("DELETE FROM items").
		WillReturnError(errors.New("permission denied"))

	assert.Error(t, repo.DeleteAll(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
