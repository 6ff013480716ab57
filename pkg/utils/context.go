package utils

import (
	"context"

	"store-rating/internal/data/entity"

	"github.com/google/uuid"
)

type contextKey string

const (
	SubjectIDKey contextKey = "subject_id"
	RoleKey      contextKey = "role"
)

// SetSubjectContext stores the authenticated subject and its role.
func SetSubjectContext(ctx context.Context, subjectID uuid.UUID, role entity.UserRole) context.Context {
	ctx = context.WithValue(ctx, SubjectIDKey, subjectID)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

func GetSubjectIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(SubjectIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func GetRoleFromContext(ctx context.Context) (entity.UserRole, bool) {
	role, ok := ctx.Value(RoleKey).(entity.UserRole)
	return role, ok && role != ""
}
