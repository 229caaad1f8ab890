package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// SessionRepository stores the tokens issued at sign-in.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByToken retrieves the session holding exactly this token.
	// Returns domainerrors.ErrSessionNotFound when no row matches.
	FindByToken(ctx context.Context, token string) (*entity.Session, error)
}
