package response

import (
	"time"

	"store-rating/internal/data/entity"
)

type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	User      ProfileResponse `json:"user"`
}

// ProfileResponse never carries the password hash. ClaimStatus is absent for store owners.
type ProfileResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Address     string              `json:"address"`
	Role        entity.UserRole     `json:"role"`
	ClaimStatus *entity.ClaimStatus `json:"claim_status,omitempty"`
}

type UserResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Address     string             `json:"address"`
	Role        entity.UserRole    `json:"role"`
	ClaimStatus entity.ClaimStatus `json:"claim_status"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Helper converters
func IdentityToProfile(identity *entity.Identity) ProfileResponse {
	return ProfileResponse{
		ID:          identity.ID.String(),
		Name:        identity.Name,
		Email:       identity.Email,
		Address:     identity.Address,
		Role:        identity.Role,
		ClaimStatus: identity.ClaimStatus,
	}
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		Name:        user.Name,
		Email:       user.Email,
		Address:     user.Address,
		Role:        user.Role,
		ClaimStatus: user.ClaimStatus,
		CreatedAt:   user.CreatedAt,
	}
}
