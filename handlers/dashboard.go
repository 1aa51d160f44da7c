package handlers

import (
	"varnix-dashboard/app"
	"varnix-dashboard/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard returns the overview counters and recent items
func GetDashboard(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		overview, err := a.Services.Dashboard.Overview(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return failure(c, "Failed to load dashboard", err)
		}
		return success(c, fiber.Map{"overview": overview})
	}
}

func GetTodoGroups(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		groups, err := a.Services.Dashboard.Todos(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return failure(c, "Failed to load todos", err)
		}
		return success(c, fiber.Map{"todos": groups})
	}
}

func GetProjectGroups(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		groups, err := a.Services.Dashboard.Projects(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return failure(c, "Failed to load projects", err)
		}
		return success(c, fiber.Map{"projects": groups})
	}
}

func GetFinance(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		finance, err := a.Services.Dashboard.Finance(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return failure(c, "Failed to load finance summary", err)
		}
		return success(c, fiber.Map{"finance": finance})
	}
}

// GetExpenseBreakdown returns total spend and spend per category
func GetExpenseBreakdown(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		breakdown, err := a.Services.Dashboard.Expenses(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return failure(c, "Failed to load expense summary", err)
		}
		return success(c, fiber.Map{"expenses": breakdown})
	}
}

func GetVarnixSummary(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary, err := a.Services.Dashboard.Varnix(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return failure(c, "Failed to load Varnix summary", err)
		}
		return success(c, fiber.Map{"summary": summary})
	}
}

// GetCostingDoc returns the Varnix costing document as plain text
func GetCostingDoc(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := a.Services.Dashboard.CostingDoc(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return failure(c, "Failed to build costing doc", err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(doc)
	}
}

// GetNotifications returns the user's recent mutation outcomes, newest first
func GetNotifications(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 20)
		if limit < 1 || limit > 100 {
			limit = 20
		}
		return success(c, fiber.Map{
			"notifications": a.Feed.Recent(middleware.GetUserID(c), limit),
		})
	}
}
