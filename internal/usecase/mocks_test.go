package usecase

import (
	"context"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/pkg/database"
	"store-rating/pkg/token"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, sortBy, order string) ([]*entity.User, error) {
	args := m.Called(ctx, sortBy, order)
	users, _ := args.Get(0).([]*entity.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsWithRole(ctx context.Context, role entity.UserRole) (bool, error) {
	args := m.Called(ctx, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) MarkClaimPending(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) WithTx(database.Querier) repository.UserRepository {
	return m
}

// MockStoreRepository mocks the StoreRepository interface
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Create(ctx context.Context, store *entity.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	args := m.Called(ctx, id)
	store, _ := args.Get(0).(*entity.Store)
	return store, args.Error(1)
}

func (m *MockStoreRepository) FindByEmail(ctx context.Context, email string) (*entity.Store, error) {
	args := m.Called(ctx, email)
	store, _ := args.Get(0).(*entity.Store)
	return store, args.Error(1)
}

func (m *MockStoreRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStoreRepository) ListForViewer(ctx context.Context, viewerID uuid.UUID, search, sortBy, order string) ([]*entity.StoreListing, error) {
	args := m.Called(ctx, viewerID, search, sortBy, order)
	stores, _ := args.Get(0).([]*entity.StoreListing)
	return stores, args.Error(1)
}

func (m *MockStoreRepository) ListForAdmin(ctx context.Context, sortBy, order string) ([]*entity.StoreSummary, error) {
	args := m.Called(ctx, sortBy, order)
	stores, _ := args.Get(0).([]*entity.StoreSummary)
	return stores, args.Error(1)
}

func (m *MockStoreRepository) WithTx(database.Querier) repository.StoreRepository {
	return m
}

// MockRatingRepository mocks the RatingRepository interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(ctx context.Context, rating *entity.Rating) (*entity.Rating, error) {
	args := m.Called(ctx, rating)
	saved, _ := args.Get(0).(*entity.Rating)
	return saved, args.Error(1)
}

func (m *MockRatingRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.ReceivedRating, error) {
	args := m.Called(ctx, storeID)
	ratings, _ := args.Get(0).([]*entity.ReceivedRating)
	return ratings, args.Error(1)
}

func (m *MockRatingRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRatingRepository) Stats(ctx context.Context, storeID uuid.UUID) (*entity.RatingStats, error) {
	args := m.Called(ctx, storeID)
	stats, _ := args.Get(0).(*entity.RatingStats)
	return stats, args.Error(1)
}

func (m *MockRatingRepository) WithTx(database.Querier) repository.RatingRepository {
	return m
}

// MockIdentityRepository mocks the IdentityRepository interface
type MockIdentityRepository struct {
	mock.Mock
}

func (m *MockIdentityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	args := m.Called(ctx, email)
	identity, _ := args.Get(0).(*entity.Identity)
	return identity, args.Error(1)
}

func (m *MockIdentityRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdentityRepository) LockEmail(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockIdentityRepository) WithTx(database.Querier) repository.IdentityRepository {
	return m
}

// fakeTxManager runs fn without a database and records the outcome.
type fakeTxManager struct {
	calls int
	err   error
}

func (f *fakeTxManager) RunInTx(_ context.Context, fn func(q database.Querier) error) error {
	f.calls++
	f.err = fn(nil)
	return f.err
}

type mocks struct {
	user     *MockUserRepository
	store    *MockStoreRepository
	rating   *MockRatingRepository
	identity *MockIdentityRepository
	tx       *fakeTxManager
}

func newMocks() *mocks {
	return &mocks{
		user:     &MockUserRepository{},
		store:    &MockStoreRepository{},
		rating:   &MockRatingRepository{},
		identity: &MockIdentityRepository{},
		tx:       &fakeTxManager{},
	}
}

func (m *mocks) repo() *repository.Repository {
	return &repository.Repository{
		User:     m.user,
		Store:    m.store,
		Rating:   m.rating,
		Identity: m.identity,
	}
}

func (m *mocks) assertExpectations(t mock.TestingT) {
	m.user.AssertExpectations(t)
	m.store.AssertExpectations(t)
	m.rating.AssertExpectations(t)
	m.identity.AssertExpectations(t)
}

const testSecret = "test-secret"

func testTokens() token.Manager {
	return token.NewJWT(testSecret, time.Hour)
}

func testConfig() *utils.Config {
	return &utils.Config{
		Security: utils.SecurityConfig{BcryptCost: utils.MinBcryptCost},
		Bootstrap: utils.BootstrapConfig{
			AdminName:     "Default System Administrator",
			AdminEmail:    "admin@storerating.com",
			AdminPassword: "Admin123!",
			AdminAddress:  "123 Admin Street",
		},
	}
}

func nopLogger() *zap.Logger {
	return zap.NewNop()
}

func mustHash(plain string) string {
	hash, err := utils.HashPassword(plain, utils.MinBcryptCost)
	if err != nil {
		panic(err)
	}
	return hash
}
