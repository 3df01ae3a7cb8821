package dto

import (
	"todoapi/internal/domains/todo/model"
	"todoapi/shared/timezone"
)

// TodoRequest is the body of create and update. Pointer fields tell an absent key apart
// from a zero value. ID is accepted on the wire but never used.
type TodoRequest struct {
	ID          *int64         `json:"id,omitempty" swaggerignore:"true"`
	Title       *string        `json:"title" validate:"required,notblank" message:"Provide a title" example:"Clean Room"`
	Description *string        `json:"description" validate:"required,notblank" message:"Provide a description" example:"Clean the room"`
	Completed   *bool          `json:"completed" validate:"required" message:"Provide a completion status" example:"false"`
	CreatedAt   *timezone.Date `json:"createdAt" validate:"required" message:"Provide a created date" swaggertype:"string" example:"2024-03-01"`
}

// ToModel builds a transient Todo. Absent fields become zero values.
func (r *TodoRequest) ToModel() model.Todo {
	var todo model.Todo

	if r.Title != nil {
		todo.Title = *r.Title
	}

	if r.Description != nil {
		todo.Description = *r.Description
	}

	if r.Completed != nil {
		todo.Completed = *r.Completed
	}

	if r.CreatedAt != nil {
		todo.CreatedAt = *r.CreatedAt
	}

	return todo
}

type TodoResponse struct {
	ID          *int64        `json:"id" example:"1"`
	Title       string        `json:"title" example:"Clean Room"`
	Description string        `json:"description" example:"Clean the room"`
	Completed   bool          `json:"completed" example:"false"`
	CreatedAt   timezone.Date `json:"createdAt" swaggertype:"string" example:"2024-03-01"`
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = nil
	if !model.IsTransient() {
		id := model.ID
		r.ID = &id
	}

	r.Title = model.Title
	r.Description = model.Description
	r.Completed = model.Completed
	r.CreatedAt = model.CreatedAt
}

// FromModels maps models in order. The result is never nil.
func FromModels(models []model.Todo) []TodoResponse {
	responses := make([]TodoResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
