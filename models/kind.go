package models

// Kind names an entity collection. It doubles as the gateway table name and
// the first half of a query cache key.
type Kind string

const (
	KindProjects       Kind = "projects"
	KindTodos          Kind = "todos"
	KindExpenses       Kind = "expenses"
	KindPayments       Kind = "payments"
	KindVarnixProjects Kind = "varnix_projects"
	KindVarnixPayments Kind = "varnix_payments"
)

// Kinds lists every collection in migration order.
var Kinds = []Kind{
	KindProjects,
	KindTodos,
	KindExpenses,
	KindPayments,
	KindVarnixProjects,
	KindVarnixPayments,
}

func (k Kind) String() string {
	return string(k)
}
