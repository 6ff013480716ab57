package repository

import (
	"context"
	"fmt"

	"store-rating/internal/data/entity"
	"store-rating/pkg/database"

	"go.uber.org/zap"
)

// IdentityRepository looks across both login populations.
type IdentityRepository interface {
	// FindByEmail checks users first, then stores.
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	// LockEmail serializes writers of the same email until the transaction ends.
	LockEmail(ctx context.Context, email string) error

	WithTx(q database.Querier) IdentityRepository
}

type identityRepository struct {
	db    database.Querier
	users UserRepository
	store StoreRepository
	log   *zap.Logger
}

func NewIdentityRepository(db database.Querier, log *zap.Logger) IdentityRepository {
	return &identityRepository{
		db:    db,
		users: NewUserRepository(db, log),
		store: NewStoreRepository(db, log),
		log:   log.With(zap.String("repository", "identity")),
	}
}

func (ir *identityRepository) WithTx(q database.Querier) IdentityRepository {
	return &identityRepository{
		db:    q,
		users: ir.users.WithTx(q),
		store: ir.store.WithTx(q),
		log:   ir.log,
	}
}

func (ir *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	user, err := ir.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user.Identity(), nil
	}

	store, err := ir.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if store != nil {
		return store.Identity(), nil
	}

	return nil, nil
}

func (ir *identityRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
		    OR EXISTS (SELECT 1 FROM stores WHERE email = $1)
	`

	var taken bool
	if err := ir.db.QueryRow(ctx, query, email).Scan(&taken); err != nil {
		ir.log.Error("Failed to check email availability", zap.Error(err), zap.String("email", email))
		return false, fmt.Errorf("check email %s: %w", email, err)
	}

	return taken, nil
}

func (ir *identityRepository) LockEmail(ctx context.Context, email string) error {
	if _, err := ir.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, email); err != nil {
		ir.log.Error("Failed to lock email", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("lock email %s: %w", email, err)
	}
	return nil
}
