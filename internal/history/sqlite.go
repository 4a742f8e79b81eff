// Package history persists question-and-answer transcripts in SQLite so
// past answers survive restarts and can be reviewed from the CLI.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hyperjump/kotae/internal/models"
)

// Store records answered questions in a SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates a SQLite database at dbPath and initializes the
// schema. Parent directories are created if they do not exist.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS answers (
		id TEXT PRIMARY KEY,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		model TEXT NOT NULL DEFAULT '',
		sources TEXT NOT NULL DEFAULT '[]',
		duration_ms INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_answers_created_at ON answers(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// Record stores one answered question. Sources are kept as JSON so the CLI
// can show which passages backed an old answer.
func (s *Store) Record(ctx context.Context, answer *models.Answer) error {
	sourcesJSON, err := json.Marshal(answer.Sources)
	if err != nil {
		return fmt.Errorf("failed to marshal sources: %w", err)
	}
	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = time.Now()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO answers (id, question, answer, model, sources, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		answer.ID, answer.Question, answer.Text, answer.Model, string(sourcesJSON),
		answer.DurationMS, answer.CreatedAt,
	)
	return err
}

// Recent returns up to limit answers, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]*models.Answer, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, question, answer, model, sources, duration_ms, created_at
		 FROM answers ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []*models.Answer
	for rows.Next() {
		var answer models.Answer
		var sourcesJSON string
		if err := rows.Scan(&answer.ID, &answer.Question, &answer.Text, &answer.Model,
			&sourcesJSON, &answer.DurationMS, &answer.CreatedAt); err != nil {
			return nil, err
		}
		if sourcesJSON != "" {
			if err := json.Unmarshal([]byte(sourcesJSON), &answer.Sources); err != nil {
				return nil, fmt.Errorf("failed to unmarshal sources: %w", err)
			}
		}
		answers = append(answers, &answer)
	}
	return answers, rows.Err()
}

// Count returns the total number of recorded answers.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM answers`).Scan(&count)
	return count, err
}

// Clear removes all recorded answers.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM answers`)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
