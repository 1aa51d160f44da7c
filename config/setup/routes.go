package setup

import (
	"time"

	"varnix-dashboard/app"
	"varnix-dashboard/handlers"
	"varnix-dashboard/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	fiberApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := fiberApp.Group("/api", middleware.AuthRequired(application.SessionStore), limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if userID := middleware.GetUserID(c); userID != "" {
				return "user:" + userID
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded for your account",
			})
		},
	}))

	RegisterAPI(api, application)
}

// RegisterAPI mounts the authenticated endpoints on router. Tests mount it
// behind their own user injection.
func RegisterAPI(api fiber.Router, application *app.App) {
	api.Get("/projects", handlers.GetProjects(application))
	api.Post("/projects", handlers.CreateProject(application))
	api.Put("/projects/:id", handlers.UpdateProject(application))
	api.Put("/projects/:id/cost", handlers.SetProjectCost(application))
	api.Delete("/projects/:id", handlers.DeleteProject(application))

	api.Get("/todos", handlers.GetTodos(application))
	api.Post("/todos", handlers.CreateTodo(application))
	api.Put("/todos/:id", handlers.UpdateTodo(application))
	api.Put("/todos/:id/toggle", handlers.ToggleTodo(application))
	api.Delete("/todos/:id", handlers.DeleteTodo(application))

	api.Get("/expenses", handlers.GetExpenses(application))
	api.Post("/expenses", handlers.CreateExpense(application))
	api.Put("/expenses/:id", handlers.UpdateExpense(application))
	api.Delete("/expenses/:id", handlers.DeleteExpense(application))

	api.Get("/payments", handlers.GetPayments(application))
	api.Post("/payments", handlers.CreatePayment(application))
	api.Put("/payments/:id", handlers.UpdatePayment(application))
	api.Delete("/payments/:id", handlers.DeletePayment(application))

	api.Get("/varnix/projects", handlers.GetVarnixProjects(application))
	api.Post("/varnix/projects", handlers.CreateVarnixProject(application))
	api.Post("/varnix/projects/from-project", handlers.AddVarnixFromProject(application))
	api.Put("/varnix/projects/:id", handlers.UpdateVarnixProject(application))
	api.Delete("/varnix/projects/:id", handlers.DeleteVarnixProject(application))

	api.Get("/varnix/payments", handlers.GetVarnixPayments(application))
	api.Post("/varnix/payments", handlers.CreateVarnixPayment(application))
	api.Put("/varnix/payments/:id", handlers.UpdateVarnixPayment(application))
	api.Delete("/varnix/payments/:id", handlers.DeleteVarnixPayment(application))

	api.Get("/dashboard", handlers.GetDashboard(application))
	api.Get("/dashboard/todos", handlers.GetTodoGroups(application))
	api.Get("/dashboard/projects", handlers.GetProjectGroups(application))
	api.Get("/dashboard/finance", handlers.GetFinance(application))
	api.Get("/dashboard/expenses", handlers.GetExpenseBreakdown(application))
	api.Get("/varnix/summary", handlers.GetVarnixSummary(application))
	api.Get("/varnix/costing-doc", handlers.GetCostingDoc(application))

	api.Get("/notifications", handlers.GetNotifications(application))
}
