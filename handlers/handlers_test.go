package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"varnix-dashboard/app"
	"varnix-dashboard/config/setup"
	"varnix-dashboard/database"
	"varnix-dashboard/models"
	"varnix-dashboard/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "test-user-id"

// setupTestDB creates a temporary database and an app wired to it
func setupTestDB(t *testing.T) *app.App {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "Failed to initialize test database")
	require.NoError(t, db.Migrate(), "Failed to run migrations")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application := app.New(db, logger, app.Options{})

	t.Cleanup(func() {
		application.Close()
		db.Close()
	})
	return application
}

// setupTestApp mounts the API routes behind a middleware that injects userID.
// An empty userID simulates a request with no signed-in user.
func setupTestApp(application *app.App, userID string) *fiber.App {
	fiberApp := fiber.New()
	fiberApp.Use(func(c *fiber.Ctx) error {
		if userID != "" {
			c.Locals("userID", userID)
		}
		return c.Next()
	})

	setup.RegisterAPI(fiberApp.Group("/api"), application)
	return fiberApp
}

func doJSON(t *testing.T, fiberApp *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestCreateAndListProjects(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t), testUserID)

	resp := doJSON(t, fiberApp, http.MethodPost, "/api/projects", fiber.Map{
		"name":   "Site Revamp",
		"cost":   50000,
		"client": "Acme",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var createdBody struct {
		Project models.Project `json:"project"`
	}
	decode(t, resp, &createdBody)
	assert.NotEmpty(t, createdBody.Project.ID)
	assert.Equal(t, models.ProjectStatusActive, createdBody.Project.Status)
	assert.Equal(t, testUserID, createdBody.Project.UserID)

	resp = doJSON(t, fiberApp, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listBody struct {
		Projects []models.Project `json:"projects"`
	}
	decode(t, resp, &listBody)
	require.Len(t, listBody.Projects, 1)
	assert.Equal(t, createdBody.Project.ID, listBody.Projects[0].ID)
}

func TestCreateProject_Validation(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t), testUserID)

	tests := []struct {
		name  string
		body  interface{}
		field string
	}{
		{name: "missing name", body: fiber.Map{"cost": 10}, field: "name"},
		{name: "negative cost", body: fiber.Map{"name": "X", "cost": -5}, field: "cost"},
		{name: "bad status", body: fiber.Map{"name": "X", "status": "archived"}, field: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, fiberApp, http.MethodPost, "/api/projects", tt.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body struct {
				Error  string `json:"error"`
				Fields []struct {
					Field string `json:"field"`
				} `json:"fields"`
			}
			decode(t, resp, &body)
			require.NotEmpty(t, body.Fields)
			assert.Equal(t, tt.field, body.Fields[0].Field)
		})
	}
}

func TestInvalidBody(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t), testUserID)

	req := httptest.NewRequest(http.MethodPost, "/api/todos", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnauthenticatedRequests(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t), "")

	resp := doJSON(t, fiberApp, http.MethodGet, "/api/projects", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, fiberApp, http.MethodPost, "/api/todos", fiber.Map{"title": "Call client"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDeleteTwice(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t), testUserID)

	resp := doJSON(t, fiberApp, http.MethodPost, "/api/payments", fiber.Map{"client": "Acme", "amount": 100})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body struct {
		Payment models.Payment `json:"payment"`
	}
	decode(t, resp, &body)

	resp = doJSON(t, fiberApp, http.MethodDelete, "/api/payments/"+body.Payment.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, fiberApp, http.MethodDelete, "/api/payments/"+body.Payment.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOtherUsersRowsAreInvisible(t *testing.T) {
	application := setupTestDB(t)
	owner := setupTestApp(application, "owner")
	intruder := setupTestApp(application, "intruder")

	resp := doJSON(t, owner, http.MethodPost, "/api/todos", fiber.Map{"title": "Private"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body struct {
		Todo models.Todo `json:"todo"`
	}
	decode(t, resp, &body)

	resp = doJSON(t, intruder, http.MethodPut, "/api/todos/"+body.Todo.ID, fiber.Map{"title": "Mine now"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var list struct {
		Todos []models.Todo `json:"todos"`
	}
	resp = doJSON(t, intruder, http.MethodGet, "/api/todos", nil)
	decode(t, resp, &list)
	assert.Empty(t, list.Todos)
}

func TestFinanceAmountDue(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t), testUserID)

	resp := doJSON(t, fiberApp, http.MethodPost, "/api/projects", fiber.Map{"name": "Site Revamp", "cost": 50000, "client": "Acme"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Prime the cache so the payment has to invalidate it.
	resp = doJSON(t, fiberApp, http.MethodGet, "/api/dashboard/finance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, fiberApp, http.MethodPost, "/api/payments", fiber.Map{"client": "Acme", "amount": 20000, "date": "2025-01-15"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, fiberApp, http.MethodGet, "/api/dashboard/finance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Finance stats.Finance `json:"finance"`
	}
	decode(t, resp, &body)
	assert.Equal(t, 50000.0, body.Finance.TotalProjectsValue)
	assert.Equal(t, 20000.0, body.Finance.TotalReceived)
	assert.Equal(t, 30000.0, body.Finance.AmountDue)
	assert.Equal(t, []string{"Acme"}, body.Finance.Clients)
}

func TestToggleTodoMovesGroups(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t), testUserID)

	resp := doJSON(t, fiberApp, http.MethodPost, "/api/todos", fiber.Map{"title": "Call client", "priority": "high"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var createdBody struct {
		Todo models.Todo `json:"todo"`
	}
	decode(t, resp, &createdBody)

	var groups struct {
		Todos stats.TodoGroups `json:"todos"`
	}
	decode(t, doJSON(t, fiberApp, http.MethodGet, "/api/dashboard/todos", nil), &groups)
	require.Len(t, groups.Todos.High, 1)
	assert.Empty(t, groups.Todos.Completed)

	resp = doJSON(t, fiberApp, http.MethodPut, "/api/todos/"+createdBody.Todo.ID+"/toggle", fiber.Map{"completed": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	decode(t, doJSON(t, fiberApp, http.MethodGet, "/api/dashboard/todos", nil), &groups)
	assert.Empty(t, groups.Todos.High)
	require.Len(t, groups.Todos.Completed, 1)
	assert.Equal(t, createdBody.Todo.ID, groups.Todos.Completed[0].ID)
	assert.Equal(t, 0, groups.Todos.PendingCount)
}

func TestCreateExpense_LegacyForm(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t), testUserID)

	resp := doJSON(t, fiberApp, http.MethodPost, "/api/expenses", fiber.Map{
		"description":  "Team lunch",
		"amount":       1500,
		"expense_type": "business",
		"date":         "2025-02-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Expense models.Expense `json:"expense"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "Team lunch", body.Expense.Title)
	assert.Equal(t, models.ExpenseTypeBusiness, body.Expense.Category)
	assert.Equal(t, "2025-02-01", body.Expense.Date)
}

func TestUpdateExpense_LegacyForm(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t), testUserID)

	resp := doJSON(t, fiberApp, http.MethodPost, "/api/expenses", fiber.Map{"title": "Lunch", "amount": 300, "category": "personal"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body struct {
		Expense models.Expense `json:"expense"`
	}
	decode(t, resp, &body)

	resp = doJSON(t, fiberApp, http.MethodPut, "/api/expenses/"+body.Expense.ID, fiber.Map{
		"description":  "Client lunch",
		"expense_type": "business",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, "Client lunch", body.Expense.Title)
	assert.Equal(t, models.ExpenseTypeBusiness, body.Expense.Category)
	assert.Equal(t, 300.0, body.Expense.Amount)

	resp = doJSON(t, fiberApp, http.MethodPut, "/api/expenses/"+body.Expense.ID, fiber.Map{"expense_type": "travel"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestExpenseBreakdown(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t), testUserID)

	for _, expense := range []fiber.Map{
		{"title": "Hosting", "amount": 900, "category": "software"},
		{"description": "Lunch", "amount": 300, "expense_type": "personal"},
		{"description": "Dinner", "amount": 200, "expense_type": "personal"},
	} {
		resp := doJSON(t, fiberApp, http.MethodPost, "/api/expenses", expense)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, fiberApp, http.MethodGet, "/api/dashboard/expenses", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Expenses stats.ExpenseBreakdown `json:"expenses"`
	}
	decode(t, resp, &body)
	assert.Equal(t, 1400.0, body.Expenses.Total)
	assert.Equal(t, map[string]float64{"software": 900, "personal": 500}, body.Expenses.ByCategory)
}

func TestVarnixFlow(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t), testUserID)

	resp := doJSON(t, fiberApp, http.MethodPost, "/api/projects", fiber.Map{"name": "Storefront", "cost": 40000})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var projectBody struct {
		Project models.Project `json:"project"`
	}
	decode(t, resp, &projectBody)

	resp = doJSON(t, fiberApp, http.MethodPost, "/api/varnix/projects/from-project", fiber.Map{"project_id": projectBody.Project.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var varnixBody struct {
		Project models.VarnixProject `json:"project"`
	}
	decode(t, resp, &varnixBody)
	assert.Equal(t, "Storefront", varnixBody.Project.ProjectName)
	assert.Equal(t, 40000.0, varnixBody.Project.Cost)

	resp = doJSON(t, fiberApp, http.MethodPut, "/api/varnix/projects/"+varnixBody.Project.ID, fiber.Map{"additional_cost": 5000})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &varnixBody)
	assert.Equal(t, 45000.0, varnixBody.Project.Cost)

	resp = doJSON(t, fiberApp, http.MethodPost, "/api/varnix/payments", fiber.Map{"amount": 15000, "date": "2025-03-04", "mode": "bank"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var summaryBody struct {
		Summary stats.VarnixSummary `json:"summary"`
	}
	decode(t, doJSON(t, fiberApp, http.MethodGet, "/api/varnix/summary", nil), &summaryBody)
	assert.Equal(t, 1, summaryBody.Summary.ProjectsOnboard)
	assert.Equal(t, 30000.0, summaryBody.Summary.Remaining)

	resp = doJSON(t, fiberApp, http.MethodGet, "/api/varnix/costing-doc", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	doc, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "VARNIX COSTING DOC")
	assert.Contains(t, string(doc), "Storefront: ₹45,000")
	assert.Contains(t, string(doc), "Mar 4, 2025: ₹15,000")
	assert.Contains(t, string(doc), "Total Remaining Amount: ₹30,000")
}

func TestVarnixFromProject_UnknownProject(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t), testUserID)

	resp := doJSON(t, fiberApp, http.MethodPost, "/api/varnix/projects/from-project",
		fiber.Map{"project_id": "6f1c2f0e-8d4b-4d8e-9a55-0a3c2f6d9b10"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNotificationsFeed(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t), testUserID)

	resp := doJSON(t, fiberApp, http.MethodPost, "/api/projects", fiber.Map{"name": "Site Revamp"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, fiberApp, http.MethodDelete, "/api/projects/6f1c2f0e-8d4b-4d8e-9a55-0a3c2f6d9b10", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	var body struct {
		Notifications []models.Notification `json:"notifications"`
	}
	decode(t, doJSON(t, fiberApp, http.MethodGet, "/api/notifications", nil), &body)
	require.Len(t, body.Notifications, 2)
	assert.Equal(t, models.NotificationError, body.Notifications[0].Level)
	assert.Equal(t, "Failed to delete project", body.Notifications[0].Title)
	assert.Equal(t, models.NotificationSuccess, body.Notifications[1].Level)
	assert.Equal(t, "Project created successfully", body.Notifications[1].Title)
}

func TestDashboardOverview(t *testing.T) {
	fiberApp := setupTestApp(setupTestDB(t), testUserID)

	for _, p := range []fiber.Map{
		{"name": "A", "cost": 1000},
		{"name": "B", "cost": 2000, "progress": 100},
		{"name": "C", "cost": 3000, "status": "on-hold"},
	} {
		resp := doJSON(t, fiberApp, http.MethodPost, "/api/projects", p)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	var body struct {
		Overview stats.Overview `json:"overview"`
	}
	decode(t, doJSON(t, fiberApp, http.MethodGet, "/api/dashboard", nil), &body)
	assert.Equal(t, 3, body.Overview.Projects.Total)
	assert.Equal(t, 1, body.Overview.Projects.Active)
	assert.Equal(t, 1, body.Overview.Projects.Completed)
	assert.Equal(t, 1, body.Overview.Projects.OnHold)
	assert.Equal(t, 6000.0, body.Overview.TotalProjectsValue)
	assert.Len(t, body.Overview.RecentProjects, 3)
}
