// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new operator. Duplicate emails are rejected by the users.email unique index.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.User, error) {
	if input.Password != input.PasswordVerify {
		return nil, domainerrors.ErrPasswordMismatch
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User signed up", slog.Uint64("userID", uint64(user.ID)))

	return user, nil
}

// SignIn verifies credentials, issues a token and records it as a session.
// Unknown email and wrong password produce the same error.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Sign-in rejected", slog.Uint64("userID", uint64(user.ID)))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	session := &entity.Session{UserID: user.ID, Token: token}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	return &usecase.SignInOutput{User: user, Token: token}, nil
}

// Authenticate fails closed: any verification or lookup problem is reported as unauthorized.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}

	session, err := srv.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}
		srv.log(ctx).Error("Failed to look up session", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized.WrapMessage("session lookup failed")
	}

	if session.UserID != claims.UserID {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token subject does not own the session")
	}

	return session, nil
}
