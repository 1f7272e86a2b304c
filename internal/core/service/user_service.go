package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/admindesk/user-management/internal/core/domain"
	"github.com/admindesk/user-management/internal/core/ports"
)

// UserService implements the user directory operations. Role gating for
// list/create/update/delete happens at the route level; the self-or-admin
// scope on Get and the self-delete rule live here because they depend on
// the acting principal.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Get returns one user. A non-admin principal may only fetch its own record.
func (s *UserService) Get(ctx context.Context, principal domain.Principal, id int) (*domain.User, error) {
	if !principal.IsAdmin() && principal.ID != id {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, id)
}

// Create adds a user with an admin-chosen role (viewer when empty).
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.Validation("name, email and password are required")
	}
	if len(input.Password) < minPasswordLen {
		return nil, domain.Validation(fmt.Sprintf("password must be at least %d characters long", minPasswordLen))
	}

	role := input.Role
	if role == "" {
		role = domain.RoleViewer
	}
	if !domain.ValidRole(role) {
		return nil, domain.Validation("role must be admin or viewer")
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

// Update persists new name/email/role/is_active on an existing user. The
// email may stay the same but must not belong to a different user.
func (s *UserService) Update(ctx context.Context, id int, input ports.UpdateUserInput) error {
	if input.Name == "" || input.Email == "" {
		return domain.Validation("name and email are required")
	}

	role := input.Role
	if role == "" {
		role = domain.RoleViewer
	}
	if !domain.ValidRole(role) {
		return domain.Validation("role must be admin or viewer")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if other, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		if other.ID != id {
			return domain.ErrEmailTaken
		}
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Role = role
	user.IsActive = input.IsActive == nil || *input.IsActive

	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Int("user_id", id).Msg("user updated")
	return nil
}

// Delete removes a user permanently. A principal can never delete itself.
func (s *UserService) Delete(ctx context.Context, principal domain.Principal, id int) error {
	if principal.ID == id {
		return domain.ErrSelfDelete
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int("user_id", id).Msg("user deleted")
	return nil
}
