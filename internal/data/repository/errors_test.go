package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorClassification(t *testing.T) {
	unique := fmt.Errorf("create store: %w", &pgconn.PgError{Code: "23505", ConstraintName: "stores_email_key"})
	fk := fmt.Errorf("upsert rating: %w", &pgconn.PgError{Code: "23503"})
	other := errors.New("connection reset")

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsUniqueViolation(fk))
	assert.False(t, IsUniqueViolation(other))
	assert.False(t, IsForeignKeyViolation(nil))
}
