package setup

import (
	"log/slog"

	"varnix-dashboard/app"
	"varnix-dashboard/config"
	"varnix-dashboard/database"
	"varnix-dashboard/session"
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp builds the application and starts the token cleanup routine
func InitApp(db *database.DB, cfg *config.Config, logger *slog.Logger) *app.App {
	sessionStore := session.NewStore(db, cfg.TokenTTL)
	sessionStore.StartCleanupRoutine()
	logger.Info("token cleanup routine started")

	application := app.New(db, logger, app.Options{
		FeedSize:     cfg.NotificationFeed,
		SessionStore: sessionStore,
	})
	logger.Info("application initialized")

	return application
}

// Shutdown stops background work and closes the database
func Shutdown(application *app.App, db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if application != nil {
		application.SessionStore.Stop()
		application.Close()
	}

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
