package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"varnix-dashboard/cache"
	"varnix-dashboard/database"
	"varnix-dashboard/models"

	"github.com/stretchr/testify/mock"
)

// MockGateway is a mock implementation of Gateway
type MockGateway[T any] struct {
	mock.Mock
	kind models.Kind
}

var (
	_ Gateway[models.Project]       = (*MockGateway[models.Project])(nil)
	_ Gateway[models.VarnixProject] = (*MockGateway[models.VarnixProject])(nil)
)

func newMockGateway[T any](kind models.Kind) *MockGateway[T] {
	return &MockGateway[T]{kind: kind}
}

func (m *MockGateway[T]) Kind() models.Kind {
	return m.kind
}

func (m *MockGateway[T]) List(ctx context.Context, userID string) ([]T, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]T)
	return rows, args.Error(1)
}

func (m *MockGateway[T]) Get(ctx context.Context, userID, id string) (*T, error) {
	args := m.Called(ctx, userID, id)
	row, _ := args.Get(0).(*T)
	return row, args.Error(1)
}

func (m *MockGateway[T]) Insert(ctx context.Context, userID string, fields database.Fields) (*T, error) {
	args := m.Called(ctx, userID, fields)
	row, _ := args.Get(0).(*T)
	return row, args.Error(1)
}

func (m *MockGateway[T]) Update(ctx context.Context, userID, id string, fields database.Fields) (*T, error) {
	args := m.Called(ctx, userID, id, fields)
	row, _ := args.Get(0).(*T)
	return row, args.Error(1)
}

func (m *MockGateway[T]) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockProjectLookup is a mock implementation of ProjectLookup
type MockProjectLookup struct {
	mock.Mock
}

var _ ProjectLookup = (*MockProjectLookup)(nil)

func (m *MockProjectLookup) Get(ctx context.Context, userID, id string) (*models.Project, error) {
	args := m.Called(ctx, userID, id)
	row, _ := args.Get(0).(*models.Project)
	return row, args.Error(1)
}

// recordingNotifier keeps every notification it receives.
type recordingNotifier struct {
	mu    sync.Mutex
	items []models.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

func (r *recordingNotifier) all() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Notification(nil), r.items...)
}

var fixedNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

type testDeps struct {
	Deps
	notifier *recordingNotifier
	events   *[]cache.Event
}

// newTestDeps returns deps with a cache attached to a bus, a recording
// notifier and a fixed clock.
func newTestDeps() testDeps {
	bus := cache.NewBus()
	qc := cache.New()
	qc.Attach(bus)

	events := &[]cache.Event{}
	bus.Subscribe(func(e cache.Event) { *events = append(*events, e) })

	notifier := &recordingNotifier{}
	return testDeps{
		Deps: Deps{
			Cache:    qc,
			Bus:      bus,
			Notifier: notifier,
			Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
			Clock:    func() time.Time { return fixedNow },
		},
		notifier: notifier,
		events:   events,
	}
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
