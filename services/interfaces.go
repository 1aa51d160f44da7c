package services

import (
	"context"

	"varnix-dashboard/database"
	"varnix-dashboard/models"
)

// Gateway defines the remote collection contract a repository runs against.
// database.Table implements it; tests substitute mocks.
type Gateway[T any] interface {
	Kind() models.Kind
	List(ctx context.Context, userID string) ([]T, error)
	Get(ctx context.Context, userID, id string) (*T, error)
	Insert(ctx context.Context, userID string, fields database.Fields) (*T, error)
	Update(ctx context.Context, userID, id string, fields database.Fields) (*T, error)
	Delete(ctx context.Context, userID, id string) error
}

// ProjectLookup resolves a dashboard project for Varnix onboarding
type ProjectLookup interface {
	Get(ctx context.Context, userID, id string) (*models.Project, error)
}

var (
	_ Gateway[models.Project]       = (*database.Table[models.Project])(nil)
	_ Gateway[models.Todo]          = (*database.Table[models.Todo])(nil)
	_ Gateway[models.Expense]       = (*database.Table[models.Expense])(nil)
	_ Gateway[models.Payment]       = (*database.Table[models.Payment])(nil)
	_ Gateway[models.VarnixProject] = (*database.Table[models.VarnixProject])(nil)
	_ Gateway[models.VarnixPayment] = (*database.Table[models.VarnixPayment])(nil)
)
