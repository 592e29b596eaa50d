package userService

import (
	users "ProjectInkwell/internal/api/user"
	userRepository "ProjectInkwell/internal/api/user/repository"
	"ProjectInkwell/internal/entity"
	"ProjectInkwell/pkg/utils"
	"context"
	"github.com/sirupsen/logrus"
)

type IUserService interface {
	SyncOnLogin(ctx context.Context, identity entity.Identity, req users.SyncUserRequest) (users.UserResponse, error)
	RoleByEmail(ctx context.Context, email string) (string, error)
	Profile(ctx context.Context, email string) (users.UserResponse, error)
}

type userService struct {
	log      *logrus.Logger
	userRepo userRepository.Repository
	utils    utils.IUtils
}

func New(
	log *logrus.Logger,
	userRepo userRepository.Repository,
	utils utils.IUtils,
) IUserService {
	return &userService{
		log:      log,
		userRepo: userRepo,
		utils:    utils,
	}
}
