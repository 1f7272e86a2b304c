package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/admindesk/user-management/internal/core/domain"
	"github.com/admindesk/user-management/internal/core/ports"
)

// EnsureDefaultAdmin creates the bootstrap administrator account when no user
// with the given email exists. Idempotent; meant to run once at startup before
// the server accepts traffic.
func EnsureDefaultAdmin(ctx context.Context, repo ports.UserRepository, email, password string, logger zerolog.Logger) error {
	if _, err := repo.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		Name:         "Admin User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := repo.Create(ctx, admin); err != nil {
		// A concurrent boot may have raced us past the existence check; the
		// unique index turns that into ErrEmailTaken, which is fine.
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil
		}
		return err
	}

	logger.Info().Str("email", email).Msg("default admin user created")
	return nil
}
