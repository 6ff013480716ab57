package token

import (
	"errors"
	"fmt"
	"time"

	"store-rating/internal/data/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims binds a login subject to its role.
type Claims struct {
	jwt.RegisteredClaims
	SubjectID uuid.UUID       `json:"userId"`
	Role      entity.UserRole `json:"role"`
}

// Manager issues and verifies bearer tokens.
type Manager interface {
	Issue(subjectID uuid.UUID, role entity.UserRole) (string, time.Time, error)
	Verify(token string) (*Claims, error)
}

// JWT implements Manager with HMAC-SHA256.
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWT(secret string, ttl time.Duration) *JWT {
	return &JWT{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token for subjectID valid for the configured lifetime.
func (j *JWT) Issue(subjectID uuid.UUID, role entity.UserRole) (string, time.Time, error) {
	now := j.now()
	expiresAt := now.Add(j.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		SubjectID: subjectID,
		Role:      role,
	})

	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify rejects expired, tampered or malformed tokens with entity.ErrAuthInvalid.
func (j *JWT) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secret, nil
	},
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, errors.Join(entity.ErrAuthInvalid, err)
	}
	if !token.Valid {
		return nil, entity.ErrAuthInvalid
	}
	if claims.SubjectID == uuid.Nil || !knownRole(claims.Role) {
		return nil, fmt.Errorf("%w: incomplete claims", entity.ErrAuthInvalid)
	}

	return claims, nil
}

func knownRole(role entity.UserRole) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleNormalUser, entity.RoleStoreOwner:
		return true
	}
	return false
}
