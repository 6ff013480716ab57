package usecase

import (
	"context"
	"fmt"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, subjectID uuid.UUID, role entity.UserRole) (*response.ProfileResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

// GetProfile reads from stores for store owners and from users otherwise.
func (us *userService) GetProfile(ctx context.Context, subjectID uuid.UUID, role entity.UserRole) (*response.ProfileResponse, error) {
	var identity *entity.Identity

	if role == entity.RoleStoreOwner {
		store, err := us.repo.Store.FindByID(ctx, subjectID)
		if err != nil {
			return nil, fmt.Errorf("get store profile: %w", err)
		}
		if store != nil {
			identity = store.Identity()
		}
	} else {
		user, err := us.repo.User.FindByID(ctx, subjectID)
		if err != nil {
			return nil, fmt.Errorf("get user profile: %w", err)
		}
		if user != nil {
			identity = user.Identity()
		}
	}

	if identity == nil {
		us.log.Warn("Profile subject not found",
			zap.String("subject_id", subjectID.String()),
			zap.String("role", string(role)))
		return nil, entity.ErrNotFound
	}

	profile := response.IdentityToProfile(identity)
	return &profile, nil
}
