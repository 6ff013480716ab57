package entity

import "github.com/google/uuid"

// Population names the table an identity lives in.
type Population string

const (
	PopulationUsers  Population = "users"
	PopulationStores Population = "stores"
)

// Identity is the login view shared by both populations.
type Identity struct {
	Population   Population
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Address      string
	Role         UserRole
	ClaimStatus  *ClaimStatus
}

func (u *User) Identity() *Identity {
	status := u.ClaimStatus
	return &Identity{
		Population:   PopulationUsers,
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Address:      u.Address,
		Role:         u.Role,
		ClaimStatus:  &status,
	}
}

func (s *Store) Identity() *Identity {
	return &Identity{
		Population:   PopulationStores,
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		PasswordHash: s.PasswordHash,
		Address:      s.Address,
		Role:         s.Role,
	}
}
