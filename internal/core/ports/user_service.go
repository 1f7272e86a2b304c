package ports

import (
	"context"

	"github.com/admindesk/user-management/internal/core/domain"
)

// CreateUserInput carries the fields for an admin-initiated user creation.
// Role defaults to viewer when empty.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries the mutable fields of a user record. Role defaults
// to viewer when empty; IsActive defaults to true when nil. Password is not
// updatable through this path.
type UpdateUserInput struct {
	Name     string
	Email    string
	Role     string
	IsActive *bool
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, principal domain.Principal, id int) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int, input UpdateUserInput) error
	Delete(ctx context.Context, principal domain.Principal, id int) error
}
