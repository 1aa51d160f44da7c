package app

import (
	"log/slog"

	"varnix-dashboard/cache"
	"varnix-dashboard/database"
	"varnix-dashboard/notify"
	"varnix-dashboard/services"
	"varnix-dashboard/session"
	"varnix-dashboard/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	DB           *database.DB
	Services     *services.Services
	Cache        *cache.QueryCache
	Bus          *cache.Bus
	Feed         *notify.Feed
	SessionStore *session.Store
	Validator    *validator.Validator
	Logger       *slog.Logger

	detach func()
}

// Options tune the pieces New builds itself.
type Options struct {
	FeedSize     int
	SessionStore *session.Store
	TableOptions []database.TableOption
}

// New wires the repositories, query cache and invalidation bus over db.
func New(db *database.DB, logger *slog.Logger, opts Options) *App {
	if logger == nil {
		logger = slog.Default()
	}

	bus := cache.NewBus()
	queryCache := cache.New()
	feed := notify.NewFeed(opts.FeedSize, logger)

	svc := services.New(db, services.Deps{
		Cache:    queryCache,
		Bus:      bus,
		Notifier: feed,
		Logger:   logger,
	}, opts.TableOptions...)

	sessionStore := opts.SessionStore
	if sessionStore == nil {
		sessionStore = session.NewStore(db, session.DefaultTTL)
	}

	return &App{
		DB:           db,
		Services:     svc,
		Cache:        queryCache,
		Bus:          bus,
		Feed:         feed,
		SessionStore: sessionStore,
		Validator:    validator.New(),
		Logger:       logger,
		detach:       queryCache.Attach(bus),
	}
}

// Close detaches the cache from the bus. The database is owned by the caller.
func (a *App) Close() {
	if a.detach != nil {
		a.detach()
		a.detach = nil
	}
}
