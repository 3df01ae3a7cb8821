package dto_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"todoapi/internal/domains/todo/model"
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/shared/failure"
	"todoapi/shared/timezone"
	"todoapi/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoRequest_ToModel(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		id := int64(99)
		title := "Clean Room"
		description := "Clean the room"
		completed := true
		createdAt := timezone.NewDate(2024, time.March, 1)

		req := dto.TodoRequest{
			ID:          &id,
			Title:       &title,
			Description: &description,
			Completed:   &completed,
			CreatedAt:   &createdAt,
		}

		todo := req.ToModel()

		assert.Zero(t, todo.ID, "payload id must be ignored")
		assert.Equal(t, title, todo.Title)
		assert.Equal(t, description, todo.Description)
		assert.True(t, todo.Completed)
		assert.Equal(t, createdAt, todo.CreatedAt)
	})

	t.Run("absent fields become zero values", func(t *testing.T) {
		req := dto.TodoRequest{}

		assert.Equal(t, model.Todo{}, req.ToModel())
	})
}

func TestTodoResponse_FromModel(t *testing.T) {
	todo := model.Todo{
		ID:          7,
		Title:       "Clean Room",
		Description: "Clean the room",
		Completed:   true,
		CreatedAt:   timezone.NewDate(2024, time.March, 1),
	}

	var response dto.TodoResponse
	response.FromModel(todo)

	require.NotNil(t, response.ID)
	assert.Equal(t, int64(7), *response.ID)
	assert.Equal(t, todo.Title, response.Title)
	assert.Equal(t, todo.Description, response.Description)
	assert.Equal(t, todo.Completed, response.Completed)
	assert.Equal(t, todo.CreatedAt, response.CreatedAt)

	body, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"title":"Clean Room","description":"Clean the room","completed":true,"createdAt":"2024-03-01"}`, string(body))
}

func TestTodoResponse_FromModelTransient(t *testing.T) {
	var response dto.TodoResponse
	response.FromModel(model.Todo{})

	body, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":null,"title":"","description":"","completed":false,"createdAt":null}`, string(body))
}

func TestFromModels(t *testing.T) {
	assert.Equal(t, []dto.TodoResponse{}, dto.FromModels(nil))

	responses := dto.FromModels([]model.Todo{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}})

	require.Len(t, responses, 2)
	assert.Equal(t, int64(1), *responses[0].ID)
	assert.Equal(t, "b", responses[1].Title)
}

func TestTodoRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErrs []string
	}{
		{
			name: "valid",
			body: `{"title":"Clean Room","description":"Clean the room","completed":false,"createdAt":"2024-03-01"}`,
		},
		{
			name:     "missing title",
			body:     `{"description":"Clean the room","completed":false,"createdAt":"2024-03-01"}`,
			wantCode: 422,
			wantErrs: []string{"Provide a title"},
		},
		{
			name:     "blank description",
			body:     `{"title":"Clean Room","description":"   ","completed":false,"createdAt":"2024-03-01"}`,
			wantCode: 422,
			wantErrs: []string{"Provide a description"},
		},
		{
			name:     "empty object lists every field in order",
			body:     `{}`,
			wantCode: 422,
			wantErrs: []string{
				"Provide a title",
				"Provide a description",
				"Provide a completion status",
				"Provide a created date",
			},
		},
		{
			name:     "null date",
			body:     `{"title":"Clean Room","description":"Clean the room","completed":true,"createdAt":null}`,
			wantCode: 422,
			wantErrs: []string{"Provide a created date"},
		},
		{
			name:     "malformed json",
			body:     `{"title":`,
			wantCode: 400,
		},
		{
			name:     "malformed date",
			body:     `{"title":"Clean Room","description":"Clean the room","completed":true,"createdAt":"01/03/2024"}`,
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.TodoRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.Equal(t, tt.wantErrs, failure.GetErrors(err))
		})
	}
}
