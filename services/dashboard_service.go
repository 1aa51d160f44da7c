package services

import (
	"context"
	"time"

	"varnix-dashboard/stats"
)

// DashboardService recomputes aggregates from the current list snapshots on
// every call. Lists come through the query cache, so a committed mutation is
// reflected on the next call.
type DashboardService struct {
	projects       *ProjectService
	todos          *TodoService
	expenses       *ExpenseService
	payments       *PaymentService
	varnixProjects *VarnixProjectService
	varnixPayments *VarnixPaymentService
	clock          func() time.Time
}

func NewDashboardService(s *Services, clock func() time.Time) *DashboardService {
	if clock == nil {
		clock = time.Now
	}
	return &DashboardService{
		projects:       s.Projects,
		todos:          s.Todos,
		expenses:       s.Expenses,
		payments:       s.Payments,
		varnixProjects: s.VarnixProjects,
		varnixPayments: s.VarnixPayments,
		clock:          clock,
	}
}

func (ds *DashboardService) Overview(ctx context.Context, userID string) (*stats.Overview, error) {
	projects, err := ds.projects.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	todos, err := ds.todos.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses, err := ds.expenses.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	overview := stats.ComputeOverview(projects, todos, expenses)
	return &overview, nil
}

func (ds *DashboardService) Todos(ctx context.Context, userID string) (*stats.TodoGroups, error) {
	todos, err := ds.todos.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	groups := stats.GroupTodos(todos)
	return &groups, nil
}

func (ds *DashboardService) Projects(ctx context.Context, userID string) (*stats.ProjectGroups, error) {
	projects, err := ds.projects.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	groups := stats.GroupProjects(projects)
	return &groups, nil
}

func (ds *DashboardService) Finance(ctx context.Context, userID string) (*stats.Finance, error) {
	projects, err := ds.projects.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	payments, err := ds.payments.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses, err := ds.expenses.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	finance := stats.ComputeFinance(projects, payments, expenses)
	return &finance, nil
}

func (ds *DashboardService) Expenses(ctx context.Context, userID string) (*stats.ExpenseBreakdown, error) {
	expenses, err := ds.expenses.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	breakdown := stats.BreakdownExpenses(expenses)
	return &breakdown, nil
}

func (ds *DashboardService) Varnix(ctx context.Context, userID string) (*stats.VarnixSummary, error) {
	projects, err := ds.varnixProjects.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	payments, err := ds.varnixPayments.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := stats.ComputeVarnix(projects, payments)
	return &summary, nil
}

// CostingDoc renders the Varnix costing document as plain text.
func (ds *DashboardService) CostingDoc(ctx context.Context, userID string) (string, error) {
	projects, err := ds.varnixProjects.List(ctx, userID)
	if err != nil {
		return "", err
	}
	payments, err := ds.varnixPayments.List(ctx, userID)
	if err != nil {
		return "", err
	}

	summary := stats.ComputeVarnix(projects, payments)
	return stats.CostingDoc(summary, projects, payments, ds.clock()), nil
}
