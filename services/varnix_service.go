package services

import (
	"context"
	"strings"

	"varnix-dashboard/database"
	"varnix-dashboard/models"

	sq "github.com/Masterminds/squirrel"
)

// VarnixProjectService manages projects on the single-client invoice. The
// stored cost is kept equal to development_cost + additional_cost.
type VarnixProjectService struct {
	*Repository[models.VarnixProject]
	projects ProjectLookup
}

func NewVarnixProjectService(gateway Gateway[models.VarnixProject], projects ProjectLookup, deps Deps) *VarnixProjectService {
	return &VarnixProjectService{
		Repository: NewRepository(gateway, deps, Messages{
			Noun:    "varnix project",
			Created: "Project added to Varnix!",
			Updated: "Varnix project updated",
			Deleted: "Varnix project removed",
		}),
		projects: projects,
	}
}

func (vs *VarnixProjectService) Create(ctx context.Context, userID string, req models.CreateVarnixProjectRequest) (*models.VarnixProject, error) {
	status := req.Status
	if status == "" {
		status = models.VarnixStatusPending
	}

	return vs.create(ctx, userID, database.Fields{
		"project_id":       nullable(req.ProjectID),
		"project_name":     strings.TrimSpace(req.ProjectName),
		"development_cost": req.DevelopmentCost,
		"additional_cost":  req.AdditionalCost,
		"cost":             req.DevelopmentCost + req.AdditionalCost,
		"status":           status,
	})
}

// AddFromProject onboards an existing dashboard project, taking its name and
// cost as the development cost.
func (vs *VarnixProjectService) AddFromProject(ctx context.Context, userID string, req models.AddVarnixFromProjectRequest) (*models.VarnixProject, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	project, err := vs.projects.Get(ctx, userID, req.ProjectID)
	if err != nil {
		return nil, err
	}

	projectID := project.ID
	return vs.Create(ctx, userID, models.CreateVarnixProjectRequest{
		ProjectID:       &projectID,
		ProjectName:     project.Name,
		DevelopmentCost: project.Cost,
		Status:          req.Status,
	})
}

// Update applies a partial update. When only one cost part is supplied the
// total is recomputed in the same statement from the stored other part.
func (vs *VarnixProjectService) Update(ctx context.Context, userID, id string, req models.UpdateVarnixProjectRequest) (*models.VarnixProject, error) {
	fields := database.Fields{}

	if req.ProjectName != nil {
		fields["project_name"] = strings.TrimSpace(*req.ProjectName)
	}
	if req.Status != nil && *req.Status != "" {
		fields["status"] = *req.Status
	}

	switch {
	case req.DevelopmentCost != nil && req.AdditionalCost != nil:
		fields["development_cost"] = *req.DevelopmentCost
		fields["additional_cost"] = *req.AdditionalCost
		fields["cost"] = *req.DevelopmentCost + *req.AdditionalCost
	case req.DevelopmentCost != nil:
		fields["development_cost"] = *req.DevelopmentCost
		fields["cost"] = sq.Expr("? + additional_cost", *req.DevelopmentCost)
	case req.AdditionalCost != nil:
		fields["additional_cost"] = *req.AdditionalCost
		fields["cost"] = sq.Expr("development_cost + ?", *req.AdditionalCost)
	}

	return vs.update(ctx, userID, id, fields)
}

// VarnixPaymentService records payments received on the Varnix account
type VarnixPaymentService struct {
	*Repository[models.VarnixPayment]
}

func NewVarnixPaymentService(gateway Gateway[models.VarnixPayment], deps Deps) *VarnixPaymentService {
	return &VarnixPaymentService{
		Repository: NewRepository(gateway, deps, Messages{
			Noun:    "varnix payment",
			Created: "Payment recorded!",
			Updated: "Payment updated",
			Deleted: "Payment deleted",
		}),
	}
}

func (vs *VarnixPaymentService) Create(ctx context.Context, userID string, req models.CreateVarnixPaymentRequest) (*models.VarnixPayment, error) {
	date := req.Date
	if date == "" {
		date = vs.today()
	}
	mode := req.Mode
	if mode == "" {
		mode = models.PaymentModeUPI
	}

	return vs.create(ctx, userID, database.Fields{
		"date":   date,
		"amount": req.Amount,
		"mode":   mode,
	})
}

func (vs *VarnixPaymentService) Update(ctx context.Context, userID, id string, req models.UpdateVarnixPaymentRequest) (*models.VarnixPayment, error) {
	fields := database.Fields{}

	if req.Date != nil && *req.Date != "" {
		fields["date"] = *req.Date
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if req.Mode != nil && *req.Mode != "" {
		fields["mode"] = *req.Mode
	}

	return vs.update(ctx, userID, id, fields)
}
