package usecase

import (
	"context"
	"testing"

	"store-rating/internal/data/entity"
	"store-rating/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetProfile(t *testing.T) {
	id := uuid.New()

	t.Run("normal user from users table", func(t *testing.T) {
		m := newMocks()
		m.user.On("FindByID", mock.Anything, id).Return(&entity.User{
			BaseSimple:   entity.BaseSimple{ID: id},
			Name:         "Jonathan Q. Publicsmith II",
			Email:        "jq@ex.com",
			PasswordHash: "$2a$10$secret",
			Role:         entity.RoleNormalUser,
			ClaimStatus:  entity.ClaimStatusPendingVerification,
		}, nil)

		service := NewUserService(m.repo(), nopLogger())
		profile, err := service.GetProfile(context.Background(), id, entity.RoleNormalUser)

		require.NoError(t, err)
		assert.Equal(t, "jq@ex.com", profile.Email)
		require.NotNil(t, profile.ClaimStatus)
		assert.Equal(t, entity.ClaimStatusPendingVerification, *profile.ClaimStatus)
		m.assertExpectations(t)
	})

	t.Run("store owner from stores table", func(t *testing.T) {
		m := newMocks()
		m.store.On("FindByID", mock.Anything, id).Return(&entity.Store{
			BaseSimple: entity.BaseSimple{ID: id},
			Email:      "n@x.com",
			Role:       entity.RoleStoreOwner,
		}, nil)

		service := NewUserService(m.repo(), nopLogger())
		profile, err := service.GetProfile(context.Background(), id, entity.RoleStoreOwner)

		require.NoError(t, err)
		assert.Equal(t, entity.RoleStoreOwner, profile.Role)
		assert.Nil(t, profile.ClaimStatus)
		m.assertExpectations(t)
	})

	t.Run("subject deleted", func(t *testing.T) {
		m := newMocks()
		m.user.On("FindByID", mock.Anything, id).Return(nil, nil)

		service := NewUserService(m.repo(), nopLogger())
		_, err := service.GetProfile(context.Background(), id, entity.RoleAdmin)

		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestStoreService_List(t *testing.T) {
	viewerID := uuid.New()
	five := 5

	m := newMocks()
	m.store.On("ListForViewer", mock.Anything, viewerID, "corner", "average_rating", "desc").Return([]*entity.StoreListing{
		{ID: uuid.New(), Name: "Corner Shop", Address: "1 Main St", AverageRating: 5, ViewerRating: &five},
		{ID: uuid.New(), Name: "Corner Deli", Address: "2 Main St"},
	}, nil)

	service := NewStoreService(m.store, nopLogger())
	stores, err := service.List(context.Background(), viewerID, request.ListQuery{
		Search:    "corner",
		SortBy:    "average_rating",
		SortOrder: "desc",
	})

	require.NoError(t, err)
	require.Len(t, stores, 2)
	require.NotNil(t, stores[0].ViewerRating)
	assert.Equal(t, 5, *stores[0].ViewerRating)
	assert.Nil(t, stores[1].ViewerRating)
	m.assertExpectations(t)
}
