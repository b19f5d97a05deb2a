package store

import (
	"context"

	"github.com/newsboard/newsboard-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// List returns every user.
	List(ctx context.Context) ([]domain.User, error)

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
