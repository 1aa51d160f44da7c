package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"varnix-dashboard/models"
)

// DefaultFeedSize bounds the per-user history.
const DefaultFeedSize = 50

// Notifier receives a message for every mutation outcome.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification)
}

// Feed keeps the most recent notifications per user in memory and logs each one.
type Feed struct {
	mu     sync.RWMutex
	size   int
	byUser map[string][]models.Notification
	logger *slog.Logger
	now    func() time.Time
}

func NewFeed(size int, logger *slog.Logger) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Feed{
		size:   size,
		byUser: make(map[string][]models.Notification),
		logger: logger,
		now:    time.Now,
	}
}

func (f *Feed) Notify(ctx context.Context, n models.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = f.now()
	}

	level := slog.LevelInfo
	if n.Level == models.NotificationError {
		level = slog.LevelWarn
	}
	f.logger.Log(ctx, level, "notification",
		"user_id", n.UserID,
		"level", n.Level,
		"title", n.Title,
		"detail", n.Detail,
	)

	if n.UserID == "" {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	items := append(f.byUser[n.UserID], n)
	if len(items) > f.size {
		items = items[len(items)-f.size:]
	}
	f.byUser[n.UserID] = items
}

// Recent returns up to limit notifications for userID, newest first.
// limit <= 0 returns the whole history.
func (f *Feed) Recent(userID string, limit int) []models.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	items := f.byUser[userID]
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}

	out := make([]models.Notification, 0, limit)
	for i := len(items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, items[i])
	}
	return out
}

// Clear drops the history for userID.
func (f *Feed) Clear(userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byUser, userID)
}
