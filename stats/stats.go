// Package stats computes the dashboard figures as pure projections over
// list snapshots. Nothing here is stored.
package stats

import (
	"varnix-dashboard/models"
)

const (
	// RecentLimit is how many projects and expenses the overview shows.
	RecentLimit = 5
	// RecentTodoLimit is how many todos the overview shows.
	RecentTodoLimit = 6
)

type ProjectCounts struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	OnHold    int `json:"on_hold"`
	Completed int `json:"completed"`
}

type Overview struct {
	Projects           ProjectCounts    `json:"projects"`
	TotalProjectsValue float64          `json:"total_projects_value"`
	PendingTodos       int              `json:"pending_todos"`
	CompletedTodos     int              `json:"completed_todos"`
	RecentProjects     []models.Project `json:"recent_projects"`
	RecentTodos        []models.Todo    `json:"recent_todos"`
	RecentExpenses     []models.Expense `json:"recent_expenses"`
}

func ComputeOverview(projects []models.Project, todos []models.Todo, expenses []models.Expense) Overview {
	o := Overview{
		Projects:       countProjects(projects),
		RecentProjects: head(projects, RecentLimit),
		RecentTodos:    head(todos, RecentTodoLimit),
		RecentExpenses: head(expenses, RecentLimit),
	}
	for _, p := range projects {
		o.TotalProjectsValue += p.Cost
	}
	for _, t := range todos {
		if t.Completed {
			o.CompletedTodos++
		} else {
			o.PendingTodos++
		}
	}
	return o
}

func countProjects(projects []models.Project) ProjectCounts {
	c := ProjectCounts{Total: len(projects)}
	for _, p := range projects {
		switch p.Status {
		case models.ProjectStatusActive:
			c.Active++
		case models.ProjectStatusOnHold:
			c.OnHold++
		case models.ProjectStatusCompleted:
			c.Completed++
		}
	}
	return c
}

// TodoGroups splits todos into pending-by-priority and completed.
type TodoGroups struct {
	High           []models.Todo `json:"high"`
	Medium         []models.Todo `json:"medium"`
	Low            []models.Todo `json:"low"`
	Completed      []models.Todo `json:"completed"`
	PendingCount   int           `json:"pending_count"`
	CompletedCount int           `json:"completed_count"`
}

func GroupTodos(todos []models.Todo) TodoGroups {
	g := TodoGroups{
		High:      []models.Todo{},
		Medium:    []models.Todo{},
		Low:       []models.Todo{},
		Completed: []models.Todo{},
	}
	for _, t := range todos {
		if t.Completed {
			g.Completed = append(g.Completed, t)
			continue
		}
		g.PendingCount++
		switch t.Priority {
		case models.PriorityHigh:
			g.High = append(g.High, t)
		case models.PriorityMedium:
			g.Medium = append(g.Medium, t)
		case models.PriorityLow:
			g.Low = append(g.Low, t)
		}
	}
	g.CompletedCount = len(g.Completed)
	return g
}

type ProjectGroups struct {
	Active    []models.Project `json:"active"`
	OnHold    []models.Project `json:"on_hold"`
	Completed []models.Project `json:"completed"`
}

func GroupProjects(projects []models.Project) ProjectGroups {
	g := ProjectGroups{
		Active:    []models.Project{},
		OnHold:    []models.Project{},
		Completed: []models.Project{},
	}
	for _, p := range projects {
		switch p.Status {
		case models.ProjectStatusActive:
			g.Active = append(g.Active, p)
		case models.ProjectStatusOnHold:
			g.OnHold = append(g.OnHold, p)
		case models.ProjectStatusCompleted:
			g.Completed = append(g.Completed, p)
		}
	}
	return g
}

// Finance is the payments & dues summary.
type Finance struct {
	TotalProjectsValue float64  `json:"total_projects_value"`
	TotalReceived      float64  `json:"total_received"`
	TotalExpenses      float64  `json:"total_expenses"`
	RemainingInAccount float64  `json:"remaining_in_account"` // received - expenses
	AmountDue          float64  `json:"amount_due"`           // value - received
	Clients            []string `json:"clients"`
}

func ComputeFinance(projects []models.Project, payments []models.Payment, expenses []models.Expense) Finance {
	f := Finance{Clients: []string{}}
	seen := make(map[string]bool)

	for _, p := range projects {
		f.TotalProjectsValue += p.Cost
		if p.Client != nil && *p.Client != "" && !seen[*p.Client] {
			seen[*p.Client] = true
			f.Clients = append(f.Clients, *p.Client)
		}
	}
	for _, p := range payments {
		f.TotalReceived += p.Amount
	}
	for _, e := range expenses {
		f.TotalExpenses += e.Amount
	}

	f.RemainingInAccount = f.TotalReceived - f.TotalExpenses
	f.AmountDue = f.TotalProjectsValue - f.TotalReceived
	return f
}

// ExpenseBreakdown is the expenses page summary: the grand total and the
// total per category.
type ExpenseBreakdown struct {
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"by_category"`
}

func BreakdownExpenses(expenses []models.Expense) ExpenseBreakdown {
	b := ExpenseBreakdown{ByCategory: map[string]float64{}}
	for _, e := range expenses {
		b.Total += e.Amount
		b.ByCategory[e.Category] += e.Amount
	}
	return b
}

type VarnixSummary struct {
	ProjectsOnboard int     `json:"projects_onboard"`
	Completed       int     `json:"completed"`
	Ongoing         int     `json:"ongoing"`
	Pending         int     `json:"pending"`
	TotalValue      float64 `json:"total_value"`
	TotalReceived   float64 `json:"total_received"`
	Remaining       float64 `json:"remaining"`
}

func ComputeVarnix(projects []models.VarnixProject, payments []models.VarnixPayment) VarnixSummary {
	s := VarnixSummary{ProjectsOnboard: len(projects)}
	for _, p := range projects {
		s.TotalValue += p.Cost
		switch p.Status {
		case models.VarnixStatusCompleted:
			s.Completed++
		case models.VarnixStatusOngoing:
			s.Ongoing++
		case models.VarnixStatusPending:
			s.Pending++
		}
	}
	for _, p := range payments {
		s.TotalReceived += p.Amount
	}
	s.Remaining = s.TotalValue - s.TotalReceived
	return s
}

func head[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}
