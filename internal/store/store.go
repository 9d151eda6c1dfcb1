// Package store persists completed sessions and derived analytics in a
// local SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"

	"github.com/abhisek/mathsprint/internal/badges"
)

// Store wraps the SQLite handle and provides all persistence operations.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies recommended
// pragmas, and runs migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	uuid TEXT NOT NULL,
	mode TEXT NOT NULL,
	category TEXT NOT NULL,
	difficulty TEXT NOT NULL,
	total_questions INTEGER NOT NULL,
	correct_answers INTEGER NOT NULL,
	total_score INTEGER NOT NULL,
	avg_time_per_question REAL NOT NULL,
	duration_seconds INTEGER NOT NULL,
	timestamp DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS questions_answered (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id INTEGER NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	question_type TEXT NOT NULL,
	category TEXT NOT NULL,
	difficulty TEXT NOT NULL,
	question_text TEXT NOT NULL,
	user_answer TEXT NOT NULL,
	correct_answer TEXT NOT NULL,
	is_correct INTEGER NOT NULL,
	time_taken REAL NOT NULL,
	timestamp DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_questions_session ON questions_answered(session_id);
CREATE INDEX IF NOT EXISTS idx_questions_type ON questions_answered(question_type);

CREATE TABLE IF NOT EXISTS badges (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	slug TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	category TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS user_badges (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	badge_id INTEGER NOT NULL REFERENCES badges(id) ON DELETE CASCADE,
	earned_date DATETIME NOT NULL,
	UNIQUE(badge_id)
);

CREATE TABLE IF NOT EXISTS daily_streaks (
	date TEXT PRIMARY KEY,
	sessions_completed INTEGER NOT NULL DEFAULT 0
);
`

// migrate creates the schema and seeds the badge catalog. Both are
// idempotent so Open can run migration unconditionally.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	for _, b := range badges.Catalog() {
		_, err := db.Exec(
			`INSERT INTO badges (slug, name, description, category) VALUES (?, ?, ?, ?)
			 ON CONFLICT(slug) DO UPDATE SET name = excluded.name, description = excluded.description, category = excluded.category`,
			b.Slug, b.Name, b.Description, b.Category,
		)
		if err != nil {
			return fmt.Errorf("seed badge %s: %w", b.Slug, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. MATHSPRINT_DB environment variable
// 2. $XDG_DATA_HOME/mathsprint/mathsprint.db
// 3. ~/.local/share/mathsprint/mathsprint.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MATHSPRINT_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "mathsprint", "mathsprint.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
