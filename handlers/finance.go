package handlers

import (
	"varnix-dashboard/app"
	"varnix-dashboard/middleware"
	"varnix-dashboard/models"

	"github.com/gofiber/fiber/v2"
)

func GetExpenses(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		expenses, err := a.Services.Expenses.List(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return failure(c, "Failed to fetch expenses", err)
		}
		return success(c, fiber.Map{"expenses": expenses})
	}
}

// CreateExpense accepts both the category form and the older
// description/expense_type form.
func CreateExpense(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateExpenseRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		// The service fills a missing date from its own clock.
		req.Normalize("")

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		expense, err := a.Services.Expenses.Create(c.UserContext(), middleware.GetUserID(c), req)
		if err != nil {
			return failure(c, "Failed to add expense", err)
		}
		return created(c, fiber.Map{"expense": expense})
	}
}

func UpdateExpense(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateExpenseRequest
		if ok, err := parseAndValidate(c, a.Validator, &req); !ok {
			return err
		}

		expense, err := a.Services.Expenses.Update(c.UserContext(), middleware.GetUserID(c), c.Params("id"), req)
		if err != nil {
			return failure(c, "Failed to update expense", err)
		}
		return success(c, fiber.Map{"expense": expense})
	}
}

func DeleteExpense(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Services.Expenses.Delete(c.UserContext(), middleware.GetUserID(c), c.Params("id")); err != nil {
			return failure(c, "Failed to delete expense", err)
		}
		return success(c, fiber.Map{"success": true})
	}
}

func GetPayments(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payments, err := a.Services.Payments.List(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return failure(c, "Failed to fetch payments", err)
		}
		return success(c, fiber.Map{"payments": payments})
	}
}

func CreatePayment(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreatePaymentRequest
		if ok, err := parseAndValidate(c, a.Validator, &req); !ok {
			return err
		}

		payment, err := a.Services.Payments.Create(c.UserContext(), middleware.GetUserID(c), req)
		if err != nil {
			return failure(c, "Failed to record payment", err)
		}
		return created(c, fiber.Map{"payment": payment})
	}
}

func UpdatePayment(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdatePaymentRequest
		if ok, err := parseAndValidate(c, a.Validator, &req); !ok {
			return err
		}

		payment, err := a.Services.Payments.Update(c.UserContext(), middleware.GetUserID(c), c.Params("id"), req)
		if err != nil {
			return failure(c, "Failed to update payment", err)
		}
		return success(c, fiber.Map{"payment": payment})
	}
}

func DeletePayment(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Services.Payments.Delete(c.UserContext(), middleware.GetUserID(c), c.Params("id")); err != nil {
			return failure(c, "Failed to delete payment", err)
		}
		return success(c, fiber.Map{"success": true})
	}
}
