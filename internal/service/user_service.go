package service

import (
	"context"
	"log/slog"

	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/store"
)

// UserService provides user-related operations
type UserService interface {
	// ListUsers returns every user.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// GetUser returns a single user. Returns store.ErrUserNotFound if absent.
	GetUser(ctx context.Context, username string) (*domain.User, error)
}

type userServiceImpl struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUserService creates a new UserService.
// It returns an error if the store is nil.
func NewUserService(users store.UserStore, logger *slog.Logger) (UserService, error) {
	if users == nil {
		return nil, nilDependency("user", "userStore")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &userServiceImpl{
		users:  users,
		logger: logger.With(slog.String("component", "user_service")),
	}, nil
}

// ListUsers implements UserService.ListUsers
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, NewServiceError("user", "list_users", "failed to list users", err)
	}
	return users, nil
}

// GetUser implements UserService.GetUser
func (s *userServiceImpl) GetUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, NewServiceError("user", "get_user", "failed to get user", err)
	}
	return user, nil
}
