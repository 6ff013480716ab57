package usecase

import (
	"context"
	"fmt"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PromotionService turns normal users into store owners.
type PromotionService interface {
	// Claim records the user's request; repeating it is a no-op.
	Claim(ctx context.Context, userID uuid.UUID) error
	// Verify moves the user into the stores population in one transaction.
	Verify(ctx context.Context, userID uuid.UUID) error
}

type promotionService struct {
	repo *repository.Repository
	tx   database.TxManager
	log  *zap.Logger
}

func NewPromotionService(repo *repository.Repository, tx database.TxManager, log *zap.Logger) PromotionService {
	return &promotionService{
		repo: repo,
		tx:   tx,
		log:  log.With(zap.String("service", "promotion")),
	}
}

func (ps *promotionService) Claim(ctx context.Context, userID uuid.UUID) error {
	updated, err := ps.repo.User.MarkClaimPending(ctx, userID)
	if err != nil {
		return fmt.Errorf("claim store owner: %w", err)
	}
	if !updated {
		ps.log.Warn("Claim for missing normal user", zap.String("user_id", userID.String()))
		return entity.ErrNotFound
	}

	ps.log.Info("Store owner claim submitted", zap.String("user_id", userID.String()))
	return nil
}

func (ps *promotionService) Verify(ctx context.Context, userID uuid.UUID) error {
	var storeID uuid.UUID

	err := ps.tx.RunInTx(ctx, func(q database.Querier) error {
		repo := ps.repo.WithTx(q)

		user, err := repo.User.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil || user.Role != entity.RoleNormalUser {
			return entity.ErrNotEligible
		}

		if err := repo.Identity.LockEmail(ctx, user.Email); err != nil {
			return err
		}

		store := &entity.Store{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			Name:         user.Name,
			Email:        user.Email,
			PasswordHash: user.PasswordHash,
			Address:      user.Address,
			Role:         entity.RoleStoreOwner,
		}
		if err := repo.Store.Create(ctx, store); err != nil {
			return fmt.Errorf("insert store for user %s: %w", userID.String(), err)
		}

		deleted, err := repo.User.Delete(ctx, userID)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("user %s vanished during promotion", userID.String())
		}

		storeID = store.ID
		return nil
	})
	if err != nil {
		ps.log.Warn("Promotion rolled back", zap.Error(err), zap.String("user_id", userID.String()))
		return err
	}

	ps.log.Info("User promoted to store owner",
		zap.String("user_id", userID.String()),
		zap.String("store_id", storeID.String()))
	return nil
}
