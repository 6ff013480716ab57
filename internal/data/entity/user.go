package entity

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleNormalUser UserRole = "normal_user"
	RoleStoreOwner UserRole = "store_owner"
)

type ClaimStatus string

const (
	ClaimStatusNone                ClaimStatus = "none"
	ClaimStatusPendingVerification ClaimStatus = "pending_verification"
)

// User is a row of the users population (admins and normal users).
type User struct {
	BaseSimple
	Name         string      `db:"name"`
	Email        string      `db:"email"`
	PasswordHash string      `db:"password"`
	Address      string      `db:"address"`
	Role         UserRole    `db:"role"`
	ClaimStatus  ClaimStatus `db:"claim_status"`
}
