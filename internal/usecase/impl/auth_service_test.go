package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	mockRepo "backoffice/internal/mocks/repository"
	mockSvc "backoffice/internal/mocks/service"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	sessionRepo  *mockRepo.MockSessionRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		sessionRepo:  mockRepo.NewMockSessionRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	fx.service = NewAuthService(AuthServiceParams{
		UserRepo:     fx.userRepo,
		SessionRepo:  fx.sessionRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "op@example.com" && u.PasswordHash == "hashed"
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = 7 }).
		Return(nil)

	user, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email: "op@example.com", Name: "Op", Password: "secret1", PasswordVerify: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
}

func TestAuthService_SignUp_PasswordMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		Email: "op@example.com", Name: "Op", Password: "secret1", PasswordVerify: "secret2",
	})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email: "op@example.com", Name: "Op", Password: "secret1", PasswordVerify: "secret1",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: 3, Email: "op@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "op@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateToken(uint(3)).Return("jwt-token", nil)
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(s *entity.Session) bool {
			return s.UserID == 3 && s.Token == "jwt-token"
		})).
		Return(nil)

	out, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "op@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", out.Token)
	assert.Equal(t, user, out.User)
}

func TestAuthService_SignIn_Rejections(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, domainerrors.ErrUserNotFound)

		_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "ghost@example.com", Password: "secret1"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByEmail(ctx, "op@example.com").Return(&entity.User{ID: 3, PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "op@example.com", Password: "wrong"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	t.Run("valid token with session", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: 5}, nil)
		fx.sessionRepo.EXPECT().FindByToken(ctx, "tok").Return(&entity.Session{ID: 1, UserID: 5, Token: "tok"}, nil)

		session, err := fx.service.Authenticate(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, uint(5), session.UserID)
	})

	t.Run("valid token without session", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: 5}, nil)
		fx.sessionRepo.EXPECT().FindByToken(ctx, "tok").Return(nil, domainerrors.ErrSessionNotFound)

		_, err := fx.service.Authenticate(ctx, "tok")

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 401, appErr.HTTPCode())
	})

	t.Run("invalid signature", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))

		_, err := fx.service.Authenticate(context.Background(), "bad")
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("session owned by another user", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: 5}, nil)
		fx.sessionRepo.EXPECT().FindByToken(ctx, "tok").Return(&entity.Session{UserID: 6, Token: "tok"}, nil)

		_, err := fx.service.Authenticate(ctx, "tok")
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}

func TestUserService_GetFirstUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	ctx := context.Background()
	userRepo.EXPECT().FindFirst(ctx).Return(&entity.User{ID: 1}, nil)

	user, err := NewUserService(userRepo).GetFirstUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
}
