package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"
	"store-rating/internal/dto/response"
	"store-rating/pkg/database"
	"store-rating/pkg/token"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	// EnsureAdmin creates the configured administrator when no admin exists yet.
	EnsureAdmin(ctx context.Context) error
}

type authService struct {
	repo   *repository.Repository
	tx     database.TxManager
	tokens token.Manager
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	tx database.TxManager,
	tokens token.Manager,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		tx:     tx,
		tokens: tokens,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, entity.NewValidationError(errs)
	}

	hashedPassword, err := utils.HashPassword(req.Password, s.config.Security.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Address:      req.Address,
		Role:         entity.RoleNormalUser,
		ClaimStatus:  entity.ClaimStatusNone,
	}

	if err := s.createUser(ctx, user); err != nil {
		if errors.Is(err, entity.ErrEmailTaken) {
			s.log.Warn("Register with taken email", zap.String("email", req.Email))
		}
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return s.authResponse(user.Identity())
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, entity.NewValidationError(errs)
	}

	identity, err := s.repo.Identity.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find identity: %w", err)
	}
	if identity == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.Email))
		return nil, entity.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, identity.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("subject_id", identity.ID.String()))
		return nil, entity.ErrInvalidCredentials
	}

	s.log.Info("Subject logged in",
		zap.String("subject_id", identity.ID.String()),
		zap.String("population", string(identity.Population)),
		zap.String("role", string(identity.Role)))

	return s.authResponse(identity)
}

func (s *authService) EnsureAdmin(ctx context.Context) error {
	exists, err := s.repo.User.ExistsWithRole(ctx, entity.RoleAdmin)
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if exists {
		return nil
	}

	cfg := s.config.Bootstrap
	hashedPassword, err := utils.HashPassword(cfg.AdminPassword, s.config.Security.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &entity.User{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: hashedPassword,
		Address:      cfg.AdminAddress,
		Role:         entity.RoleAdmin,
		ClaimStatus:  entity.ClaimStatusNone,
	}

	if err := s.createUser(ctx, admin); err != nil {
		if errors.Is(err, entity.ErrEmailTaken) {
			s.log.Warn("Default admin not created, email already registered", zap.String("email", admin.Email))
			return nil
		}
		return fmt.Errorf("create default admin %s: %w", cfg.AdminEmail, err)
	}

	s.log.Info("Default admin created", zap.String("email", admin.Email))
	return nil
}

// createUser inserts user while holding the email lock, so the cross-table check and the insert are atomic.
func (s *authService) createUser(ctx context.Context, user *entity.User) error {
	return s.tx.RunInTx(ctx, func(q database.Querier) error {
		repo := s.repo.WithTx(q)

		if err := repo.Identity.LockEmail(ctx, user.Email); err != nil {
			return err
		}

		taken, err := repo.Identity.EmailTaken(ctx, user.Email)
		if err != nil {
			return err
		}
		if taken {
			return entity.ErrEmailTaken
		}

		if err := repo.User.Create(ctx, user); err != nil {
			if repository.IsUniqueViolation(err) {
				return entity.ErrEmailTaken
			}
			return err
		}
		return nil
	})
}

func (s *authService) authResponse(identity *entity.Identity) (*response.AuthResponse, error) {
	signed, expiresAt, err := s.tokens.Issue(identity.ID, identity.Role)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("subject_id", identity.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &response.AuthResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      response.IdentityToProfile(identity),
	}, nil
}
