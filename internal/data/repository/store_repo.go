package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"store-rating/internal/data/entity"
	"store-rating/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	FindByEmail(ctx context.Context, email string) (*entity.Store, error)
	CountAll(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Listings
	ListForViewer(ctx context.Context, viewerID uuid.UUID, search, sortBy, order string) ([]*entity.StoreListing, error)
	ListForAdmin(ctx context.Context, sortBy, order string) ([]*entity.StoreSummary, error)

	WithTx(q database.Querier) StoreRepository
}

type storeRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewStoreRepository(db database.Querier, log *zap.Logger) StoreRepository {
	return &storeRepository{
		db:  db,
		log: log.With(zap.String("repository", "store")),
	}
}

func (sr *storeRepository) WithTx(q database.Querier) StoreRepository {
	return &storeRepository{db: q, log: sr.log}
}

const storeColumns = `id, name, email, password, address, role, created_at`

func scanStore(row pgx.Row) (*entity.Store, error) {
	var store entity.Store
	err := row.Scan(
		&store.ID,
		&store.Name,
		&store.Email,
		&store.PasswordHash,
		&store.Address,
		&store.Role,
		&store.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (sr *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, email, password, address, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := sr.db.Exec(ctx, query,
		store.ID,
		store.Name,
		store.Email,
		store.PasswordHash,
		store.Address,
		store.Role,
		store.CreatedAt,
	)
	if err != nil {
		sr.log.Error("Failed to create store",
			zap.Error(err),
			zap.String("email", store.Email),
		)
		return fmt.Errorf("create store %s: %w", store.Email, err)
	}

	return nil
}

func (sr *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`

	store, err := scanStore(sr.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find store by ID", zap.Error(err), zap.String("store_id", id.String()))
		return nil, fmt.Errorf("find store by ID %s: %w", id.String(), err)
	}

	return store, nil
}

func (sr *storeRepository) FindByEmail(ctx context.Context, email string) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE email = $1`

	store, err := scanStore(sr.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find store by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find store by email %s: %w", email, err)
	}

	return store, nil
}

func (sr *storeRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM stores`

	var count int64
	if err := sr.db.QueryRow(ctx, query).Scan(&count); err != nil {
		sr.log.Error("Database error counting stores", zap.Error(err))
		return 0, fmt.Errorf("count all stores: %w", err)
	}

	return count, nil
}

// Delete removes the store; its ratings cascade.
func (sr *storeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM stores WHERE id = $1`

	result, err := sr.db.Exec(ctx, query, id)
	if err != nil {
		sr.log.Error("Failed to delete store", zap.Error(err), zap.String("store_id", id.String()))
		return false, fmt.Errorf("delete store %s: %w", id.String(), err)
	}

	deleted := result.RowsAffected() > 0
	sr.log.Info("Store delete executed", zap.String("store_id", id.String()), zap.Bool("deleted", deleted))
	return deleted, nil
}

// ListForViewer joins the store-wide average with the viewer's own rating in a single query.
func (sr *storeRepository) ListForViewer(ctx context.Context, viewerID uuid.UUID, search, sortBy, order string) ([]*entity.StoreListing, error) {
	query := `
		SELECT s.id, s.name, s.address,
		       COALESCE(AVG(r.rating), 0)::float8 AS average_rating,
		       vr.rating AS viewer_rating
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id
		LEFT JOIN ratings vr ON vr.store_id = s.id AND vr.user_id = $1
		WHERE s.name ILIKE $2 ESCAPE '\' OR s.address ILIKE $2 ESCAPE '\'
		GROUP BY s.id, vr.rating
		ORDER BY ` + viewerStoreSort.OrderBy(sortBy, order)

	rows, err := sr.db.Query(ctx, query, viewerID, containsPattern(search))
	if err != nil {
		sr.log.Error("Failed to list stores for viewer",
			zap.Error(err),
			zap.String("viewer_id", viewerID.String()),
		)
		return nil, fmt.Errorf("list stores for viewer %s: %w", viewerID.String(), err)
	}
	defer rows.Close()

	stores := make([]*entity.StoreListing, 0)
	for rows.Next() {
		var s entity.StoreListing
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.AverageRating, &s.ViewerRating); err != nil {
			sr.log.Error("Failed to scan store listing row", zap.Error(err))
			return nil, fmt.Errorf("scan store listing row: %w", err)
		}
		stores = append(stores, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate store listing rows: %w", err)
	}

	return stores, nil
}

func (sr *storeRepository) ListForAdmin(ctx context.Context, sortBy, order string) ([]*entity.StoreSummary, error) {
	query := `
		SELECT s.id, s.name, s.email, s.address, s.created_at,
		       COALESCE(AVG(r.rating), 0)::float8 AS average_rating,
		       COUNT(r.id) AS total_ratings
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id
		GROUP BY s.id
		ORDER BY ` + adminStoreSort.OrderBy(sortBy, order)

	rows, err := sr.db.Query(ctx, query)
	if err != nil {
		sr.log.Error("Failed to list stores for admin", zap.Error(err))
		return nil, fmt.Errorf("list stores for admin: %w", err)
	}
	defer rows.Close()

	stores := make([]*entity.StoreSummary, 0)
	for rows.Next() {
		var s entity.StoreSummary
		err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.CreatedAt, &s.AverageRating, &s.TotalRatings)
		if err != nil {
			sr.log.Error("Failed to scan store summary row", zap.Error(err))
			return nil, fmt.Errorf("scan store summary row: %w", err)
		}
		stores = append(stores, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate store summary rows: %w", err)
	}

	return stores, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a literal search term into an ILIKE substring pattern.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(search)) + "%"
}
