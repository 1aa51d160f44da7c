package session

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"varnix-dashboard/database"
	"varnix-dashboard/models"

	"github.com/google/uuid"
)

// DefaultTTL is how long a freshly issued token stays valid.
const DefaultTTL = 30 * 24 * time.Hour

// Store keeps API tokens in the gateway database. A token resolves to the
// user id that scopes every repository call.
type Store struct {
	db       *database.DB
	ttl      time.Duration
	now      func() time.Time
	stopChan chan struct{}
}

func NewStore(db *database.DB, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		db:       db,
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
		stopChan: make(chan struct{}),
	}
}

// Create issues a new token for userID.
func (s *Store) Create(ctx context.Context, userID, label string) (*models.Session, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	now := s.now()
	sess := &models.Session{
		ID:         uuid.New().String(),
		UserID:     userID,
		Label:      label,
		ExpiresAt:  now.Add(s.ttl),
		CreatedAt:  now,
		LastUsedAt: now,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, user_id, label, expires_at, created_at, last_used_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sess.ID, sess.UserID, sess.Label, sess.ExpiresAt, sess.CreatedAt, sess.LastUsedAt)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Get returns the live session for token, or nil when it is unknown or expired.
func (s *Store) Get(ctx context.Context, token string) (*models.Session, error) {
	var sess models.Session
	err := s.db.GetContext(ctx, &sess, `
		SELECT id, user_id, label, expires_at, created_at, last_used_at
		FROM sessions WHERE id = ?
	`, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if s.now().After(sess.ExpiresAt) {
		return nil, nil
	}

	if _, err := s.db.ExecContext(ctx, `UPDATE sessions SET last_used_at = ? WHERE id = ?`, s.now(), token); err != nil {
		slog.Warn("failed to touch session", "error", err)
	}
	return &sess, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, token)
	return err
}

// DeleteForUser revokes every token of userID and returns how many were removed.
func (s *Store) DeleteForUser(ctx context.Context, userID string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *Store) CleanupExpired(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, s.now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *Store) StartCleanupRoutine() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n, err := s.CleanupExpired(context.Background()); err != nil {
					slog.Error("session cleanup failed", "error", err)
				} else if n > 0 {
					slog.Info("expired sessions removed", "count", n)
				}
			case <-s.stopChan:
				return
			}
		}
	}()
}

func (s *Store) Stop() {
	select {
	case <-s.stopChan:
	default:
		close(s.stopChan)
	}
}
