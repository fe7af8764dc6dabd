package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mmynk/webform/internal/models"
	"github.com/mmynk/webform/internal/storage"
)

// stubStore lets tests script the user operations. Submission operations
// are never reached by the authenticator.
type stubStore struct {
	storage.Store

	createUserErr  error
	userByEmail    *models.User
	createdUsers   []*models.User
}

func (s *stubStore) CreateUser(ctx context.Context, user *models.User) error {
	if s.createUserErr != nil {
		return s.createUserErr
	}
	s.createdUsers = append(s.createdUsers, user)
	return nil
}

func (s *stubStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userByEmail, nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		store := &stubStore{}
		a := NewPasswordAuthenticator(store)

		user, err := a.Register(ctx, "jane@example.com", "Jane", "longenough")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if user.PasswordHash == "longenough" {
			t.Error("expected password to be hashed, got plaintext")
		}
		if len(store.createdUsers) != 1 {
			t.Errorf("expected 1 created user, got %d", len(store.createdUsers))
		}
	})

	t.Run("rejects weak password", func(t *testing.T) {
		a := NewPasswordAuthenticator(&stubStore{})

		if _, err := a.Register(ctx, "jane@example.com", "Jane", "short"); !errors.Is(err, ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("rejects email seen by the exists check", func(t *testing.T) {
		store := &stubStore{userByEmail: &models.User{Email: "jane@example.com"}}
		a := NewPasswordAuthenticator(store)

		if _, err := a.Register(ctx, "jane@example.com", "Jane", "longenough"); !errors.Is(err, ErrEmailExists) {
			t.Errorf("expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("maps store duplicate to ErrEmailExists", func(t *testing.T) {
		// A concurrent registration can slip past the exists check and
		// surface as a uniqueness violation from the insert instead.
		store := &stubStore{
			createUserErr: fmt.Errorf("%w: email jane@example.com", storage.ErrDuplicate),
		}
		a := NewPasswordAuthenticator(store)

		if _, err := a.Register(ctx, "jane@example.com", "Jane", "longenough"); !errors.Is(err, ErrEmailExists) {
			t.Errorf("expected ErrEmailExists, got %v", err)
		}
	})
}
