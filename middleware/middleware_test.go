package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"varnix-dashboard/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenResolver struct {
	mock.Mock
}

var _ TokenResolver = (*MockTokenResolver)(nil)

func (m *MockTokenResolver) Get(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func newAuthApp(resolver TokenResolver) *fiber.App {
	app := fiber.New()
	app.Use(AuthRequired(resolver))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(GetUserID(c))
	})
	return app
}

func TestAuthRequired(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setupMock  func(m *MockTokenResolver)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			setupMock:  func(m *MockTokenResolver) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			setupMock:  func(m *MockTokenResolver) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "unknown token",
			header: "Bearer nope",
			setupMock: func(m *MockTokenResolver) {
				m.On("Get", mock.Anything, "nope").Return(nil, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "store failure",
			header: "Bearer boom",
			setupMock: func(m *MockTokenResolver) {
				m.On("Get", mock.Anything, "boom").Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(m *MockTokenResolver) {
				m.On("Get", mock.Anything, "good").Return(&models.Session{ID: "good", UserID: "user-1"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "user-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := new(MockTokenResolver)
			tt.setupMock(resolver)

			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := newAuthApp(resolver).Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantBody != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.wantBody, string(body))
			}
			resolver.AssertExpectations(t)
		})
	}
}

func TestStructuredLogger_RequestID(t *testing.T) {
	app := fiber.New()
	app.Use(StructuredLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})

	t.Run("issues a new id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)

		id := resp.Header.Get(RequestIDHeader)
		_, parseErr := uuid.Parse(id)
		assert.NoError(t, parseErr)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, id, string(body))
	})

	t.Run("keeps a valid incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, incoming)

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, incoming, resp.Header.Get(RequestIDHeader))
	})

	t.Run("replaces a malformed incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.NotEqual(t, "not-a-uuid", resp.Header.Get(RequestIDHeader))
	})
}

func TestSecurityHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(Security())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
}
