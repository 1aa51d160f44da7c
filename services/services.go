package services

import (
	"varnix-dashboard/database"
	"varnix-dashboard/models"
)

// Services bundles one repository per entity kind plus the dashboard
// aggregates built on top of them.
type Services struct {
	Projects       *ProjectService
	Todos          *TodoService
	Expenses       *ExpenseService
	Payments       *PaymentService
	VarnixProjects *VarnixProjectService
	VarnixPayments *VarnixPaymentService
	Dashboard      *DashboardService
}

// New wires every repository to its gateway table in db.
func New(db *database.DB, deps Deps, opts ...database.TableOption) *Services {
	deps = deps.withDefaults()

	s := &Services{
		Projects: NewProjectService(database.NewTable[models.Project](db, database.ProjectsSpec, opts...), deps),
		Todos:    NewTodoService(database.NewTable[models.Todo](db, database.TodosSpec, opts...), deps),
		Expenses: NewExpenseService(database.NewTable[models.Expense](db, database.ExpensesSpec, opts...), deps),
		Payments: NewPaymentService(database.NewTable[models.Payment](db, database.PaymentsSpec, opts...), deps),
		VarnixPayments: NewVarnixPaymentService(
			database.NewTable[models.VarnixPayment](db, database.VarnixPaymentsSpec, opts...), deps),
	}
	s.VarnixProjects = NewVarnixProjectService(
		database.NewTable[models.VarnixProject](db, database.VarnixProjectsSpec, opts...), s.Projects, deps)
	s.Dashboard = NewDashboardService(s, deps.Clock)

	return s
}
