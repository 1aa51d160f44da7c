package handlers

import (
	"varnix-dashboard/app"
	"varnix-dashboard/middleware"
	"varnix-dashboard/models"

	"github.com/gofiber/fiber/v2"
)

// GetProjects lists the user's projects, newest first
func GetProjects(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		projects, err := a.Services.Projects.List(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return failure(c, "Failed to fetch projects", err)
		}
		return success(c, fiber.Map{"projects": projects})
	}
}

func CreateProject(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateProjectRequest
		if ok, err := parseAndValidate(c, a.Validator, &req); !ok {
			return err
		}

		project, err := a.Services.Projects.Create(c.UserContext(), middleware.GetUserID(c), req)
		if err != nil {
			return failure(c, "Failed to create project", err)
		}
		return created(c, fiber.Map{"project": project})
	}
}

func UpdateProject(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateProjectRequest
		if ok, err := parseAndValidate(c, a.Validator, &req); !ok {
			return err
		}

		project, err := a.Services.Projects.Update(c.UserContext(), middleware.GetUserID(c), c.Params("id"), req)
		if err != nil {
			return failure(c, "Failed to update project", err)
		}
		return success(c, fiber.Map{"project": project})
	}
}

// SetProjectCost sets only the cost of a project
func SetProjectCost(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SetProjectCostRequest
		if ok, err := parseAndValidate(c, a.Validator, &req); !ok {
			return err
		}

		project, err := a.Services.Projects.SetCost(c.UserContext(), middleware.GetUserID(c), c.Params("id"), *req.Cost)
		if err != nil {
			return failure(c, "Failed to update project cost", err)
		}
		return success(c, fiber.Map{"project": project})
	}
}

func DeleteProject(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Services.Projects.Delete(c.UserContext(), middleware.GetUserID(c), c.Params("id")); err != nil {
			return failure(c, "Failed to delete project", err)
		}
		return success(c, fiber.Map{"success": true})
	}
}
