package handlers

import (
	"varnix-dashboard/app"
	"varnix-dashboard/middleware"
	"varnix-dashboard/models"

	"github.com/gofiber/fiber/v2"
)

func GetVarnixProjects(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		projects, err := a.Services.VarnixProjects.List(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return failure(c, "Failed to fetch Varnix projects", err)
		}
		return success(c, fiber.Map{"projects": projects})
	}
}

func CreateVarnixProject(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateVarnixProjectRequest
		if ok, err := parseAndValidate(c, a.Validator, &req); !ok {
			return err
		}

		project, err := a.Services.VarnixProjects.Create(c.UserContext(), middleware.GetUserID(c), req)
		if err != nil {
			return failure(c, "Failed to add Varnix project", err)
		}
		return created(c, fiber.Map{"project": project})
	}
}

// AddVarnixFromProject onboards an existing dashboard project
func AddVarnixFromProject(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.AddVarnixFromProjectRequest
		if ok, err := parseAndValidate(c, a.Validator, &req); !ok {
			return err
		}

		project, err := a.Services.VarnixProjects.AddFromProject(c.UserContext(), middleware.GetUserID(c), req)
		if err != nil {
			return failure(c, "Failed to add Varnix project", err)
		}
		return created(c, fiber.Map{"project": project})
	}
}

func UpdateVarnixProject(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateVarnixProjectRequest
		if ok, err := parseAndValidate(c, a.Validator, &req); !ok {
			return err
		}

		project, err := a.Services.VarnixProjects.Update(c.UserContext(), middleware.GetUserID(c), c.Params("id"), req)
		if err != nil {
			return failure(c, "Failed to update Varnix project", err)
		}
		return success(c, fiber.Map{"project": project})
	}
}

func DeleteVarnixProject(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Services.VarnixProjects.Delete(c.UserContext(), middleware.GetUserID(c), c.Params("id")); err != nil {
			return failure(c, "Failed to delete Varnix project", err)
		}
		return success(c, fiber.Map{"success": true})
	}
}

func GetVarnixPayments(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payments, err := a.Services.VarnixPayments.List(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return failure(c, "Failed to fetch Varnix payments", err)
		}
		return success(c, fiber.Map{"payments": payments})
	}
}

func CreateVarnixPayment(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateVarnixPaymentRequest
		if ok, err := parseAndValidate(c, a.Validator, &req); !ok {
			return err
		}

		payment, err := a.Services.VarnixPayments.Create(c.UserContext(), middleware.GetUserID(c), req)
		if err != nil {
			return failure(c, "Failed to record Varnix payment", err)
		}
		return created(c, fiber.Map{"payment": payment})
	}
}

func UpdateVarnixPayment(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateVarnixPaymentRequest
		if ok, err := parseAndValidate(c, a.Validator, &req); !ok {
			return err
		}

		payment, err := a.Services.VarnixPayments.Update(c.UserContext(), middleware.GetUserID(c), c.Params("id"), req)
		if err != nil {
			return failure(c, "Failed to update Varnix payment", err)
		}
		return success(c, fiber.Map{"payment": payment})
	}
}

func DeleteVarnixPayment(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Services.VarnixPayments.Delete(c.UserContext(), middleware.GetUserID(c), c.Params("id")); err != nil {
			return failure(c, "Failed to delete Varnix payment", err)
		}
		return success(c, fiber.Map{"success": true})
	}
}
