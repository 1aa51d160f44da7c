package models

import "time"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Todo struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	ProjectID  *string   `json:"project_id" db:"project_id"`
	Title      string    `json:"title" db:"title"`
	Completed  bool      `json:"completed" db:"completed"`
	Priority   string    `json:"priority" db:"priority"`
	DueDate    *string   `json:"due_date" db:"due_date"`
	AssignedTo *string   `json:"assigned_to" db:"assigned_to"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

type CreateTodoRequest struct {
	Title      string  `json:"title" validate:"required,notblank,max=500"`
	Priority   string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate    *string `json:"due_date" validate:"omitempty,dateformat"`
	AssignedTo *string `json:"assigned_to" validate:"omitempty,max=200"`
	ProjectID  *string `json:"project_id" validate:"omitempty,uuid"`
}

type UpdateTodoRequest struct {
	Title      *string `json:"title" validate:"omitempty,notblank,max=500"`
	Completed  *bool   `json:"completed"`
	Priority   *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate    *string `json:"due_date" validate:"omitempty,dateformat"`
	AssignedTo *string `json:"assigned_to" validate:"omitempty,max=200"`
	ProjectID  *string `json:"project_id" validate:"omitempty,uuid"`
}

type ToggleTodoRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}
