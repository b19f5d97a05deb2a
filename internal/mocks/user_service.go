package mocks

import (
	"context"

	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/service"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	ListUsersFn func(ctx context.Context) ([]domain.User, error)
	GetUserFn   func(ctx context.Context, username string) (*domain.User, error)

	// Default return values
	Users        []domain.User
	User         *domain.User
	DefaultError error
}

var _ service.UserService = (*MockUserService)(nil)

// ListUsers implements the UserService.ListUsers method
func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx)
	}
	return m.Users, m.DefaultError
}

// GetUser implements the UserService.GetUser method
func (m *MockUserService) GetUser(ctx context.Context, username string) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, username)
	}
	return m.User, m.DefaultError
}
