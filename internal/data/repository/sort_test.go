package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSortOrder(t *testing.T) {
	assert.Equal(t, "asc", NormalizeSortOrder(""))
	assert.Equal(t, "asc", NormalizeSortOrder("asc"))
	assert.Equal(t, "desc", NormalizeSortOrder("DESC"))
	assert.Equal(t, "desc", NormalizeSortOrder(" desc "))
	assert.Equal(t, "asc", NormalizeSortOrder("desc; DROP TABLE users"))
}

func TestViewerStoreSort_OrderBy(t *testing.T) {
	tests := []struct {
		name   string
		sortBy string
		order  string
		want   string
	}{
		{"default", "", "", "s.name ASC, s.id ASC"},
		{"address desc", "address", "desc", "s.address DESC, s.id ASC"},
		{"average rating", "average_rating", "asc", "average_rating ASC, s.id ASC"},
		{"injection degrades to name", "password;DROP", "asc", "s.name ASC, s.id ASC"},
		{"admin-only column not allowed", "email", "desc", "s.name DESC, s.id ASC"},
		{"bad order degrades to asc", "name", "sideways", "s.name ASC, s.id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, viewerStoreSort.OrderBy(tt.sortBy, tt.order))
		})
	}
}

func TestInjectedSortMatchesDefault(t *testing.T) {
	assert.Equal(t, viewerStoreSort.OrderBy("name", "asc"), viewerStoreSort.OrderBy("password;DROP", "asc"))
	assert.Equal(t, adminStoreSort.OrderBy("name", "asc"), adminStoreSort.OrderBy("1=1--", "asc"))
	assert.Equal(t, userSort.OrderBy("name", "asc"), userSort.OrderBy("password", "asc"))
}

func TestAdminStoreSort_OrderBy(t *testing.T) {
	assert.Equal(t, "total_ratings DESC, s.id ASC", adminStoreSort.OrderBy("total_ratings", "desc"))
	assert.Equal(t, "s.email ASC, s.id ASC", adminStoreSort.OrderBy("email", "asc"))
	assert.Equal(t, "s.name ASC, s.id ASC", adminStoreSort.OrderBy("address", "asc"))
}

func TestUserSort_OrderBy(t *testing.T) {
	assert.Equal(t, "u.claim_status DESC, u.id ASC", userSort.OrderBy("claim_status", "DESC"))
	assert.Equal(t, "u.created_at ASC, u.id ASC", userSort.OrderBy("created_at", ""))
	assert.Equal(t, "u.name ASC, u.id ASC", userSort.OrderBy("average_rating", "asc"))
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%%", containsPattern(""))
	assert.Equal(t, "%coffee%", containsPattern("  coffee "))
	assert.Equal(t, `%100\% real\_deal%`, containsPattern("100% real_deal"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}
