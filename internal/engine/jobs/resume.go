package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultResumeProfile is the profile used when the caller names none.
const DefaultResumeProfile = "default"

const resumeSchema = `
CREATE TABLE IF NOT EXISTS resume_profiles (
	name       TEXT PRIMARY KEY,
	content    TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// ResumeStore keeps named resume profiles in Postgres so the fit and
// cover-letter tools can run without the caller re-sending the resume text.
type ResumeStore struct {
	pool *pgxpool.Pool
}

// ConnectResumeStore opens a pool against databaseURL and ensures the schema.
func ConnectResumeStore(ctx context.Context, databaseURL string) (*ResumeStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect resume store: %w", err)
	}
	if _, err := pool.Exec(ctx, resumeSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init resume schema: %w", err)
	}
	return &ResumeStore{pool: pool}, nil
}

// Set upserts the resume content for name.
func (s *ResumeStore) Set(ctx context.Context, name, content string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO resume_profiles (name, content, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET content = EXCLUDED.content, updated_at = now()`,
		name, content)
	if err != nil {
		return fmt.Errorf("set resume %q: %w", name, err)
	}
	return nil
}

// Get returns the resume content for name, or "" when no profile exists.
func (s *ResumeStore) Get(ctx context.Context, name string) (string, error) {
	var content string
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM resume_profiles WHERE name = $1`, name).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get resume %q: %w", name, err)
	}
	return content, nil
}

// Close releases the connection pool.
func (s *ResumeStore) Close() {
	s.pool.Close()
}
