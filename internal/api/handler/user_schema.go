package handler

import "github.com/admindesk/user-management/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// Email format is deliberately not validated server-side; the store treats
// emails as case-sensitive opaque text and the UI mirrors field checks.

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin viewer"`
}

type updateUserRequest struct {
	Name     string `json:"name"  validate:"required"`
	Email    string `json:"email" validate:"required"`
	Role     string `json:"role"  validate:"omitempty,oneof=admin viewer"`
	IsActive *bool  `json:"is_active"`
}

// --- Response types ---

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type createUserResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}
