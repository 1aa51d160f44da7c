package services

import (
	"context"
	"strings"

	"varnix-dashboard/database"
	"varnix-dashboard/models"
)

// ExpenseService stores expenses in the category-based schema
type ExpenseService struct {
	*Repository[models.Expense]
}

func NewExpenseService(gateway Gateway[models.Expense], deps Deps) *ExpenseService {
	return &ExpenseService{
		Repository: NewRepository(gateway, deps, Messages{
			Noun:    "expense",
			Created: "Expense added!",
			Updated: "Expense updated",
			Deleted: "Expense deleted",
		}),
	}
}

// Create accepts either the category-based or the type-based input.
func (es *ExpenseService) Create(ctx context.Context, userID string, req models.CreateExpenseRequest) (*models.Expense, error) {
	req.Normalize(es.today())

	return es.create(ctx, userID, database.Fields{
		"title":      req.Title,
		"amount":     req.Amount,
		"category":   req.Category,
		"date":       req.Date,
		"project_id": nullable(req.ProjectID),
	})
}

// Update accepts the same two input forms as Create.
func (es *ExpenseService) Update(ctx context.Context, userID, id string, req models.UpdateExpenseRequest) (*models.Expense, error) {
	req.Normalize()
	fields := database.Fields{}

	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if req.Category != nil && *req.Category != "" {
		fields["category"] = *req.Category
	}
	if req.Date != nil && *req.Date != "" {
		fields["date"] = *req.Date
	}
	if req.ProjectID != nil {
		fields["project_id"] = nullable(req.ProjectID)
	}

	return es.update(ctx, userID, id, fields)
}

// PaymentService records amounts received from clients
type PaymentService struct {
	*Repository[models.Payment]
}

func NewPaymentService(gateway Gateway[models.Payment], deps Deps) *PaymentService {
	return &PaymentService{
		Repository: NewRepository(gateway, deps, Messages{
			Noun:    "payment",
			Created: "Payment recorded!",
			Updated: "Payment updated",
			Deleted: "Payment deleted",
		}),
	}
}

func (ps *PaymentService) Create(ctx context.Context, userID string, req models.CreatePaymentRequest) (*models.Payment, error) {
	date := req.Date
	if date == "" {
		date = ps.today()
	}

	return ps.create(ctx, userID, database.Fields{
		"client":     strings.TrimSpace(req.Client),
		"date":       date,
		"amount":     req.Amount,
		"project_id": nullable(req.ProjectID),
	})
}

func (ps *PaymentService) Update(ctx context.Context, userID, id string, req models.UpdatePaymentRequest) (*models.Payment, error) {
	fields := database.Fields{}

	if req.Client != nil {
		fields["client"] = strings.TrimSpace(*req.Client)
	}
	if req.Date != nil && *req.Date != "" {
		fields["date"] = *req.Date
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if req.ProjectID != nil {
		fields["project_id"] = nullable(req.ProjectID)
	}

	return ps.update(ctx, userID, id, fields)
}
