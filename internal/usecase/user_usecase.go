// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new operator.
type SignUpInput struct {
	Email          string
	Name           string
	Password       string
	PasswordVerify string
}

// SignInInput defines the data required for an operator to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SignInOutput returns the signed-in user and the bearer token bound to the new session.
type SignInOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase covers sign-up, sign-in and the per-request token check.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*entity.User, error)
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// Authenticate verifies the token signature and that a session row holds it.
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
}

// UserUsecase exposes read access to operators.
type UserUsecase interface {
	GetFirstUser(ctx context.Context) (*entity.User, error)
}
