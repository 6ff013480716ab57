package usecase

import (
	"context"
	"errors"
	"testing"

	"store-rating/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPromotionService_Claim(t *testing.T) {
	userID := uuid.New()

	t.Run("marks pending", func(t *testing.T) {
		m := newMocks()
		m.user.On("MarkClaimPending", mock.Anything, userID).Return(true, nil)

		service := NewPromotionService(m.repo(), m.tx, nopLogger())
		require.NoError(t, service.Claim(context.Background(), userID))
		m.assertExpectations(t)
	})

	t.Run("repeated claim is accepted", func(t *testing.T) {
		m := newMocks()
		m.user.On("MarkClaimPending", mock.Anything, userID).Return(true, nil).Twice()

		service := NewPromotionService(m.repo(), m.tx, nopLogger())
		require.NoError(t, service.Claim(context.Background(), userID))
		require.NoError(t, service.Claim(context.Background(), userID))
		m.assertExpectations(t)
	})

	t.Run("user row gone", func(t *testing.T) {
		m := newMocks()
		m.user.On("MarkClaimPending", mock.Anything, userID).Return(false, nil)

		service := NewPromotionService(m.repo(), m.tx, nopLogger())
		assert.ErrorIs(t, service.Claim(context.Background(), userID), entity.ErrNotFound)
	})
}

func TestPromotionService_Verify(t *testing.T) {
	userID := uuid.New()
	pending := &entity.User{
		BaseSimple:   entity.BaseSimple{ID: userID},
		Name:         "Nora the Shopkeeper Smith",
		Email:        "n@x.com",
		PasswordHash: "$2a$10$hash",
		Address:      "5 Market Rd",
		Role:         entity.RoleNormalUser,
		ClaimStatus:  entity.ClaimStatusPendingVerification,
	}

	tests := []struct {
		name      string
		mockSetup func(m *mocks)
		wantErr   error
		anyErr    bool
	}{
		{
			name: "moves user into stores",
			mockSetup: func(m *mocks) {
				m.user.On("FindByIDForUpdate", mock.Anything, userID).Return(pending, nil)
				m.identity.On("LockEmail", mock.Anything, "n@x.com").Return(nil)
				m.store.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Store) bool {
					return s.Email == pending.Email &&
						s.Name == pending.Name &&
						s.Address == pending.Address &&
						s.PasswordHash == pending.PasswordHash &&
						s.Role == entity.RoleStoreOwner &&
						s.ID != userID
				})).Return(nil)
				m.user.On("Delete", mock.Anything, userID).Return(true, nil)
			},
		},
		{
			name: "user missing",
			mockSetup: func(m *mocks) {
				m.user.On("FindByIDForUpdate", mock.Anything, userID).Return(nil, nil)
			},
			wantErr: entity.ErrNotEligible,
		},
		{
			name: "admin is not eligible",
			mockSetup: func(m *mocks) {
				admin := *pending
				admin.Role = entity.RoleAdmin
				m.user.On("FindByIDForUpdate", mock.Anything, userID).Return(&admin, nil)
			},
			wantErr: entity.ErrNotEligible,
		},
		{
			name: "store email collision rolls back",
			mockSetup: func(m *mocks) {
				m.user.On("FindByIDForUpdate", mock.Anything, userID).Return(pending, nil)
				m.identity.On("LockEmail", mock.Anything, "n@x.com").Return(nil)
				m.store.On("Create", mock.Anything, mock.Anything).
					Return(&pgconn.PgError{Code: "23505", ConstraintName: "stores_email_key"})
			},
			anyErr: true,
		},
		{
			name: "delete failure rolls back",
			mockSetup: func(m *mocks) {
				m.user.On("FindByIDForUpdate", mock.Anything, userID).Return(pending, nil)
				m.identity.On("LockEmail", mock.Anything, "n@x.com").Return(nil)
				m.store.On("Create", mock.Anything, mock.Anything).Return(nil)
				m.user.On("Delete", mock.Anything, userID).Return(false, errors.New("connection reset"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMocks()
			tt.mockSetup(m)

			service := NewPromotionService(m.repo(), m.tx, nopLogger())
			err := service.Verify(context.Background(), userID)

			assert.Equal(t, 1, m.tx.calls)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, err, m.tx.err)
			case tt.anyErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, entity.ErrNotEligible)
				assert.NotErrorIs(t, err, entity.ErrEmailTaken)
				assert.Error(t, m.tx.err)
			default:
				assert.NoError(t, err)
				assert.NoError(t, m.tx.err)
			}

			m.assertExpectations(t)
		})
	}
}
