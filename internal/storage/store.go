// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/webform/internal/models"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint, e.g. registering an email that already exists.
	ErrDuplicate = errors.New("record already exists")
)

// Store defines the interface for submission and user storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateSubmission persists a new submission.
	// The submission's ID and CreatedAt fields are populated by the store
	// if unset.
	CreateSubmission(ctx context.Context, sub *models.Submission) error

	// GetSubmission retrieves a submission by its ID.
	// Returns ErrNotFound if no such submission exists.
	GetSubmission(ctx context.Context, id string) (*models.Submission, error)

	// ListSubmissions returns up to limit submissions, newest first.
	ListSubmissions(ctx context.Context, limit int) ([]models.Submission, error)

	// CreateUser persists a new admin user.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email address.
	// Returns (nil, nil) if no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns ErrNotFound if no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
