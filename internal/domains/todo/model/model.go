package model

import (
	"fmt"

	"todoapi/shared/timezone"
)

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCompleted   = "completed"
	FieldCreatedAt   = "created_at"
)

// Todo is a single task. An ID of 0 marks a record that has not been saved yet.
type Todo struct {
	ID          int64         `db:"id"`
	Title       string        `db:"title"`
	Description string        `db:"description"`
	Completed   bool          `db:"completed"`
	CreatedAt   timezone.Date `db:"created_at"`
}

func (t Todo) IsTransient() bool {
	return t.ID == 0
}

// Equal compares every field, id included.
func (t Todo) Equal(other Todo) bool {
	return t == other
}

// Fields returns the mutable columns keyed by name.
func (t Todo) Fields() map[string]any {
	return map[string]any{
		FieldTitle:       t.Title,
		FieldDescription: t.Description,
		FieldCompleted:   t.Completed,
		FieldCreatedAt:   t.CreatedAt,
	}
}

func MessageNotFound(id int64) string {
	return fmt.Sprintf("Todo with id %d is not found", id)
}
