package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sqlx.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them.
	db, err := sqlx.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{db}, nil
}

// Wrap adopts an existing handle, e.g. a sqlmock connection in tests.
func Wrap(db *sqlx.DB) *DB {
	return &DB{db}
}

func (db *DB) Migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'on-hold', 'completed')),
			progress INTEGER NOT NULL DEFAULT 0 CHECK (progress BETWEEN 0 AND 100),
			cost REAL NOT NULL DEFAULT 0 CHECK (cost >= 0),
			client TEXT,
			start_date TEXT,
			assigned_to TEXT,
			project_type TEXT NOT NULL DEFAULT 'fullstack',
			custom_type TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS todos (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			project_id TEXT,
			title TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			priority TEXT NOT NULL DEFAULT 'medium' CHECK (priority IN ('low', 'medium', 'high')),
			due_date TEXT,
			assigned_to TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS expenses (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			project_id TEXT,
			title TEXT NOT NULL,
			amount REAL NOT NULL CHECK (amount >= 0),
			category TEXT NOT NULL DEFAULT 'other',
			date TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS payments (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			project_id TEXT,
			client TEXT NOT NULL,
			date TEXT NOT NULL,
			amount REAL NOT NULL CHECK (amount >= 0),
			created_at DATETIME NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS varnix_projects (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			project_id TEXT,
			project_name TEXT NOT NULL,
			development_cost REAL NOT NULL DEFAULT 0 CHECK (development_cost >= 0),
			additional_cost REAL NOT NULL DEFAULT 0 CHECK (additional_cost >= 0),
			cost REAL NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'ongoing', 'completed')),
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS varnix_payments (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			date TEXT NOT NULL,
			amount REAL NOT NULL CHECK (amount >= 0),
			mode TEXT NOT NULL DEFAULT 'upi' CHECK (mode IN ('upi', 'cash', 'bank')),
			created_at DATETIME NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			label TEXT NOT NULL DEFAULT '',
			expires_at DATETIME NOT NULL,
			created_at DATETIME NOT NULL,
			last_used_at DATETIME NOT NULL
		)`,

		// Indexes for per-user ordered reads
		`CREATE INDEX IF NOT EXISTS idx_projects_user_created ON projects(user_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_todos_user_created ON todos(user_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_user_date ON expenses(user_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_user_date ON payments(user_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_varnix_projects_user_created ON varnix_projects(user_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_varnix_payments_user_date ON varnix_payments(user_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
