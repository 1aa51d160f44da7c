package services

import (
	"context"
	"strings"

	"varnix-dashboard/database"
	"varnix-dashboard/models"
)

// TodoService handles todos
type TodoService struct {
	*Repository[models.Todo]
}

func NewTodoService(gateway Gateway[models.Todo], deps Deps) *TodoService {
	return &TodoService{
		Repository: NewRepository(gateway, deps, Messages{
			Noun:    "todo",
			Created: "Todo added successfully",
			Updated: "Todo updated",
			Deleted: "Todo deleted",
		}),
	}
}

func (ts *TodoService) Create(ctx context.Context, userID string, req models.CreateTodoRequest) (*models.Todo, error) {
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	return ts.create(ctx, userID, database.Fields{
		"title":       strings.TrimSpace(req.Title),
		"completed":   false,
		"priority":    priority,
		"due_date":    nullable(req.DueDate),
		"assigned_to": nullable(req.AssignedTo),
		"project_id":  nullable(req.ProjectID),
	})
}

func (ts *TodoService) Update(ctx context.Context, userID, id string, req models.UpdateTodoRequest) (*models.Todo, error) {
	fields := database.Fields{}

	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Completed != nil {
		fields["completed"] = *req.Completed
	}
	if req.Priority != nil && *req.Priority != "" {
		fields["priority"] = *req.Priority
	}
	if req.DueDate != nil {
		fields["due_date"] = nullable(req.DueDate)
	}
	if req.AssignedTo != nil {
		fields["assigned_to"] = nullable(req.AssignedTo)
	}
	if req.ProjectID != nil {
		fields["project_id"] = nullable(req.ProjectID)
	}

	return ts.update(ctx, userID, id, fields)
}

// Toggle sets the completed flag.
func (ts *TodoService) Toggle(ctx context.Context, userID, id string, completed bool) (*models.Todo, error) {
	return ts.Update(ctx, userID, id, models.UpdateTodoRequest{Completed: &completed})
}
