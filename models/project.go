package models

import "time"

const (
	ProjectStatusActive    = "active"
	ProjectStatusOnHold    = "on-hold"
	ProjectStatusCompleted = "completed"

	ProjectTypeFullstack = "fullstack"
	ProjectTypeCustom    = "custom"
)

type Project struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	Progress    int       `json:"progress" db:"progress"`
	Cost        float64   `json:"cost" db:"cost"`
	Client      *string   `json:"client" db:"client"`
	StartDate   *string   `json:"start_date" db:"start_date"`
	AssignedTo  *string   `json:"assigned_to" db:"assigned_to"`
	ProjectType string    `json:"project_type" db:"project_type"`
	CustomType  *string   `json:"custom_type" db:"custom_type"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateProjectRequest struct {
	Name        string  `json:"name" validate:"required,notblank,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Status      string  `json:"status" validate:"omitempty,oneof=active on-hold completed"`
	Progress    int     `json:"progress"`
	Cost        float64 `json:"cost" validate:"gte=0"`
	Client      *string `json:"client" validate:"omitempty,max=200"`
	StartDate   *string `json:"start_date" validate:"omitempty,dateformat"`
	AssignedTo  *string `json:"assigned_to" validate:"omitempty,max=200"`
	ProjectType string  `json:"project_type" validate:"omitempty,oneof=fullstack frontend backend ai custom"`
	CustomType  *string `json:"custom_type" validate:"omitempty,max=100"`
}

// UpdateProjectRequest carries a partial update; nil fields keep their stored value.
type UpdateProjectRequest struct {
	Name        *string  `json:"name" validate:"omitempty,notblank,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Status      *string  `json:"status" validate:"omitempty,oneof=active on-hold completed"`
	Progress    *int     `json:"progress"`
	Cost        *float64 `json:"cost" validate:"omitempty,gte=0"`
	Client      *string  `json:"client" validate:"omitempty,max=200"`
	StartDate   *string  `json:"start_date" validate:"omitempty,dateformat"`
	AssignedTo  *string  `json:"assigned_to" validate:"omitempty,max=200"`
	ProjectType *string  `json:"project_type" validate:"omitempty,oneof=fullstack frontend backend ai custom"`
	CustomType  *string  `json:"custom_type" validate:"omitempty,max=100"`
}

type SetProjectCostRequest struct {
	Cost *float64 `json:"cost" validate:"required,gte=0"`
}
