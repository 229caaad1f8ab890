package impl

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"
)

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) usecase.UserUsecase {
	return &userService{userRepo: userRepo}
}

func (srv *userService) GetFirstUser(ctx context.Context) (*entity.User, error) {
	return srv.userRepo.FindFirst(ctx)
}
