package repository

import (
	"context"
	"errors"
	"fmt"

	"store-rating/internal/data/entity"
	"store-rating/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context, sortBy, order string) ([]*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
	ExistsWithRole(ctx context.Context, role entity.UserRole) (bool, error)
	MarkClaimPending(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// WithTx binds the repository to an open transaction.
	WithTx(q database.Querier) UserRepository
}

type userRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewUserRepository(db database.Querier, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (ur *userRepository) WithTx(q database.Querier) UserRepository {
	return &userRepository{db: q, log: ur.log}
}

const userColumns = `id, name, email, password, address, role, claim_status, created_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Address,
		&user.Role,
		&user.ClaimStatus,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password, address, role, claim_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Address,
		user.Role,
		user.ClaimStatus,
		user.CreatedAt,
	)
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return ur.findOne(ctx, "find user by ID "+id.String(), query, id)
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (ur *userRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
	return ur.findOne(ctx, "lock user "+id.String(), query, id)
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return ur.findOne(ctx, "find user by email "+email, query, email)
}

func (ur *userRepository) findOne(ctx context.Context, op, query string, arg any) (*entity.User, error) {
	user, err := scanUser(ur.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to "+op, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// FindAll lists every user ordered by an allowlisted column
func (ur *userRepository) FindAll(ctx context.Context, sortBy, order string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u ORDER BY ` + userSort.OrderBy(sortBy, order)

	rows, err := ur.db.Query(ctx, query)
	if err != nil {
		ur.log.Error("Failed to get all users",
			zap.Error(err),
			zap.String("sort_by", userSort.Key(sortBy)),
		)
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

func (ur *userRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM users`

	var count int64
	if err := ur.db.QueryRow(ctx, query).Scan(&count); err != nil {
		ur.log.Error("Database error counting users", zap.Error(err))
		return 0, fmt.Errorf("count all users: %w", err)
	}

	return count, nil
}

func (ur *userRepository) ExistsWithRole(ctx context.Context, role entity.UserRole) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE role = $1)`

	var exists bool
	if err := ur.db.QueryRow(ctx, query, role).Scan(&exists); err != nil {
		ur.log.Error("Failed to check role existence", zap.Error(err), zap.String("role", string(role)))
		return false, fmt.Errorf("check users with role %s: %w", role, err)
	}

	return exists, nil
}

// MarkClaimPending is idempotent; it reports false when no normal user has that id.
func (ur *userRepository) MarkClaimPending(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE users
		SET claim_status = $2
		WHERE id = $1 AND role = $3
	`

	result, err := ur.db.Exec(ctx, query, id, entity.ClaimStatusPendingVerification, entity.RoleNormalUser)
	if err != nil {
		ur.log.Error("Failed to mark claim pending",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return false, fmt.Errorf("mark claim pending for user %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

// Delete removes the user; ratings authored by it cascade.
func (ur *userRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM users WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id)
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return false, fmt.Errorf("delete user %s: %w", id.String(), err)
	}

	deleted := result.RowsAffected() > 0
	ur.log.Info("User delete executed", zap.String("id", id.String()), zap.Bool("deleted", deleted))
	return deleted, nil
}
