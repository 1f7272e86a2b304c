package ports

import (
	"context"

	"github.com/admindesk/user-management/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	TokenVerifier
}

// TokenVerifier is the narrow surface the auth middleware depends on.
type TokenVerifier interface {
	VerifyToken(token string) (domain.Principal, error)
}
