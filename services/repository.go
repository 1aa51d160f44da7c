package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"varnix-dashboard/cache"
	"varnix-dashboard/database"
	"varnix-dashboard/metrics"
	"varnix-dashboard/models"
	"varnix-dashboard/notify"
)

// Deps are the collaborators shared by every repository.
type Deps struct {
	Cache    *cache.QueryCache
	Bus      *cache.Bus
	Notifier notify.Notifier
	Logger   *slog.Logger
	Clock    func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	return d
}

// Messages are the user-facing notification titles for one entity kind.
type Messages struct {
	Noun    string // "project", "payment", ...
	Created string
	Updated string
	Deleted string
}

// Repository translates list/create/update/delete intents into gateway calls
// for one entity kind. Successful mutations publish an invalidation for
// (kind, user); failures are reported once and returned unchanged.
type Repository[T any] struct {
	gateway  Gateway[T]
	deps     Deps
	messages Messages
}

func NewRepository[T any](gateway Gateway[T], deps Deps, messages Messages) *Repository[T] {
	return &Repository[T]{
		gateway:  gateway,
		deps:     deps.withDefaults(),
		messages: messages,
	}
}

func (r *Repository[T]) Kind() models.Kind {
	return r.gateway.Kind()
}

// List returns the user's records newest first. Reads go through the query
// cache when one is configured.
func (r *Repository[T]) List(ctx context.Context, userID string) ([]T, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	if r.deps.Cache == nil {
		return r.gateway.List(ctx, userID)
	}

	key := cache.Key{Kind: r.Kind(), UserID: userID}
	return cache.Fetch(ctx, r.deps.Cache, key, func(ctx context.Context) ([]T, error) {
		return r.gateway.List(ctx, userID)
	})
}

// Get reads one record straight from the gateway.
func (r *Repository[T]) Get(ctx context.Context, userID, id string) (*T, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return r.gateway.Get(ctx, userID, id)
}

// Delete removes a record. A second delete of the same id fails.
func (r *Repository[T]) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return ErrUnauthenticated
	}

	err := r.gateway.Delete(ctx, userID, id)
	r.commit(ctx, userID, "delete", err)
	return err
}

func (r *Repository[T]) create(ctx context.Context, userID string, fields database.Fields) (*T, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	row, err := r.gateway.Insert(ctx, userID, fields)
	r.commit(ctx, userID, "create", err)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository[T]) update(ctx context.Context, userID, id string, fields database.Fields) (*T, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	row, err := r.gateway.Update(ctx, userID, id, fields)
	r.commit(ctx, userID, "update", err)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// commit reports a mutation outcome. Only successful mutations invalidate.
func (r *Repository[T]) commit(ctx context.Context, userID, op string, err error) {
	kind := r.Kind()
	metrics.RecordMutation(kind.String(), op, err)

	if err != nil {
		r.deps.Logger.Error("mutation failed",
			"kind", kind,
			"operation", op,
			"user_id", userID,
			"error", err,
		)
		r.notify(ctx, models.Notification{
			UserID: userID,
			Level:  models.NotificationError,
			Title:  fmt.Sprintf("Failed to %s %s", op, r.messages.Noun),
			Detail: err.Error(),
		})
		return
	}

	if r.deps.Bus != nil {
		r.deps.Bus.Publish(cache.Event{Kind: kind, UserID: userID})
	}

	r.deps.Logger.Debug("mutation committed", "kind", kind, "operation", op, "user_id", userID)

	var title string
	switch op {
	case "create":
		title = r.messages.Created
	case "update":
		title = r.messages.Updated
	case "delete":
		title = r.messages.Deleted
	}
	r.notify(ctx, models.Notification{
		UserID: userID,
		Level:  models.NotificationSuccess,
		Title:  title,
	})
}

func (r *Repository[T]) notify(ctx context.Context, n models.Notification) {
	if r.deps.Notifier == nil {
		return
	}
	n.CreatedAt = r.deps.Clock()
	r.deps.Notifier.Notify(ctx, n)
}

func (r *Repository[T]) today() string {
	return r.deps.Clock().Format(models.DateLayout)
}

// nullable maps a blank optional string to SQL NULL.
func nullable(s *string) interface{} {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return trimmed
}
