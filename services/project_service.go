package services

import (
	"context"
	"strings"

	"varnix-dashboard/database"
	"varnix-dashboard/models"

	sq "github.com/Masterminds/squirrel"
)

// ProjectService handles business rules for dashboard projects
type ProjectService struct {
	*Repository[models.Project]
}

func NewProjectService(gateway Gateway[models.Project], deps Deps) *ProjectService {
	return &ProjectService{
		Repository: NewRepository(gateway, deps, Messages{
			Noun:    "project",
			Created: "Project created successfully",
			Updated: "Project updated successfully!",
			Deleted: "Project deleted",
		}),
	}
}

// ClampProgress bounds progress to [0, 100].
func ClampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// Create stores a new project. A project created at 100% is completed.
func (ps *ProjectService) Create(ctx context.Context, userID string, req models.CreateProjectRequest) (*models.Project, error) {
	status := req.Status
	if status == "" {
		status = models.ProjectStatusActive
	}
	progress := ClampProgress(req.Progress)
	if progress == 100 {
		status = models.ProjectStatusCompleted
	}

	projectType := req.ProjectType
	if projectType == "" {
		projectType = models.ProjectTypeFullstack
	}
	var customType interface{}
	if projectType == models.ProjectTypeCustom {
		customType = nullable(req.CustomType)
	}

	return ps.create(ctx, userID, database.Fields{
		"name":         strings.TrimSpace(req.Name),
		"description":  nullable(req.Description),
		"status":       status,
		"progress":     progress,
		"cost":         req.Cost,
		"client":       nullable(req.Client),
		"start_date":   nullable(req.StartDate),
		"assigned_to":  nullable(req.AssignedTo),
		"project_type": projectType,
		"custom_type":  customType,
	})
}

// Update applies a partial update. A project at 100% progress is always
// completed, whether the progress is supplied or already stored.
func (ps *ProjectService) Update(ctx context.Context, userID, id string, req models.UpdateProjectRequest) (*models.Project, error) {
	fields := database.Fields{}

	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		fields["description"] = nullable(req.Description)
	}
	if req.Status != nil && *req.Status != "" {
		if req.Progress == nil && *req.Status != models.ProjectStatusCompleted {
			// The stored progress decides.
			fields["status"] = sq.Expr("CASE WHEN progress = 100 THEN '"+models.ProjectStatusCompleted+"' ELSE ? END", *req.Status)
		} else {
			fields["status"] = *req.Status
		}
	}
	if req.Progress != nil {
		progress := ClampProgress(*req.Progress)
		fields["progress"] = progress
		if progress == 100 {
			fields["status"] = models.ProjectStatusCompleted
		}
	}
	if req.Cost != nil {
		fields["cost"] = *req.Cost
	}
	if req.Client != nil {
		fields["client"] = nullable(req.Client)
	}
	if req.StartDate != nil {
		fields["start_date"] = nullable(req.StartDate)
	}
	if req.AssignedTo != nil {
		fields["assigned_to"] = nullable(req.AssignedTo)
	}
	if req.ProjectType != nil && *req.ProjectType != "" {
		fields["project_type"] = *req.ProjectType
		if *req.ProjectType != models.ProjectTypeCustom {
			fields["custom_type"] = nil
		}
	}
	if req.CustomType != nil && (req.ProjectType == nil || *req.ProjectType == models.ProjectTypeCustom) {
		fields["custom_type"] = nullable(req.CustomType)
	}

	return ps.update(ctx, userID, id, fields)
}

// SetCost records the agreed project value.
func (ps *ProjectService) SetCost(ctx context.Context, userID, id string, cost float64) (*models.Project, error) {
	return ps.Update(ctx, userID, id, models.UpdateProjectRequest{Cost: &cost})
}
