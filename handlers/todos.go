package handlers

import (
	"varnix-dashboard/app"
	"varnix-dashboard/middleware"
	"varnix-dashboard/models"

	"github.com/gofiber/fiber/v2"
)

func GetTodos(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		todos, err := a.Services.Todos.List(c.UserContext(), middleware.GetUserID(c))
		if err != nil {
			return failure(c, "Failed to fetch todos", err)
		}
		return success(c, fiber.Map{"todos": todos})
	}
}

func CreateTodo(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateTodoRequest
		if ok, err := parseAndValidate(c, a.Validator, &req); !ok {
			return err
		}

		todo, err := a.Services.Todos.Create(c.UserContext(), middleware.GetUserID(c), req)
		if err != nil {
			return failure(c, "Failed to create todo", err)
		}
		return created(c, fiber.Map{"todo": todo})
	}
}

func UpdateTodo(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateTodoRequest
		if ok, err := parseAndValidate(c, a.Validator, &req); !ok {
			return err
		}

		todo, err := a.Services.Todos.Update(c.UserContext(), middleware.GetUserID(c), c.Params("id"), req)
		if err != nil {
			return failure(c, "Failed to update todo", err)
		}
		return success(c, fiber.Map{"todo": todo})
	}
}

// ToggleTodo sets the completed flag
func ToggleTodo(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ToggleTodoRequest
		if ok, err := parseAndValidate(c, a.Validator, &req); !ok {
			return err
		}

		todo, err := a.Services.Todos.Toggle(c.UserContext(), middleware.GetUserID(c), c.Params("id"), *req.Completed)
		if err != nil {
			return failure(c, "Failed to update todo", err)
		}
		return success(c, fiber.Map{"todo": todo})
	}
}

func DeleteTodo(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Services.Todos.Delete(c.UserContext(), middleware.GetUserID(c), c.Params("id")); err != nil {
			return failure(c, "Failed to delete todo", err)
		}
		return success(c, fiber.Map{"success": true})
	}
}
