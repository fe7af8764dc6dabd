package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/webform/internal/models"
	"github.com/mmynk/webform/internal/storage"
)

// CreateSubmission persists a new submission to the database.
func (s *SQLiteStore) CreateSubmission(ctx context.Context, sub *models.Submission) error {
	// Generate identity if not set
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.CreatedAt == 0 {
		sub.CreatedAt = time.Now().Unix()
	}
	if sub.Greeting == "" {
		sub.Greeting = sub.FullName()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO submissions (id, first_name, last_name, greeting, created_at) VALUES (?, ?, ?, ?, ?)",
		sub.ID, sub.FirstName, sub.LastName, sub.Greeting, sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	return nil
}

// GetSubmission retrieves a submission by ID.
func (s *SQLiteStore) GetSubmission(ctx context.Context, id string) (*models.Submission, error) {
	sub := &models.Submission{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, first_name, last_name, greeting, created_at FROM submissions WHERE id = ?",
		id,
	).Scan(&sub.ID, &sub.FirstName, &sub.LastName, &sub.Greeting, &sub.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: submission %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return sub, nil
}

// ListSubmissions returns up to limit submissions, newest first.
func (s *SQLiteStore) ListSubmissions(ctx context.Context, limit int) ([]models.Submission, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, first_name, last_name, greeting, created_at FROM submissions ORDER BY created_at DESC, id LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var subs []models.Submission
	for rows.Next() {
		var sub models.Submission
		if err := rows.Scan(&sub.ID, &sub.FirstName, &sub.LastName, &sub.Greeting, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submissions: %w", err)
	}

	return subs, nil
}
