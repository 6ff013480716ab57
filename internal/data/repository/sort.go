package repository

import "strings"

// SortSpec is a closed allowlist mapping public sort keys to constant SQL fragments.
// Nothing from the request is ever copied into the ORDER BY clause.
type SortSpec struct {
	columns  map[string]string
	fallback string
	tieBreak string
}

var (
	viewerStoreSort = SortSpec{
		columns: map[string]string{
			"name":           "s.name",
			"address":        "s.address",
			"average_rating": "average_rating",
		},
		fallback: "name",
		tieBreak: "s.id ASC",
	}

	adminStoreSort = SortSpec{
		columns: map[string]string{
			"name":           "s.name",
			"email":          "s.email",
			"average_rating": "average_rating",
			"total_ratings":  "total_ratings",
		},
		fallback: "name",
		tieBreak: "s.id ASC",
	}

	userSort = SortSpec{
		columns: map[string]string{
			"name":         "u.name",
			"email":        "u.email",
			"role":         "u.role",
			"claim_status": "u.claim_status",
			"created_at":   "u.created_at",
		},
		fallback: "name",
		tieBreak: "u.id ASC",
	}
)

// NormalizeSortOrder returns "desc" for any casing of desc and "asc" for everything else.
func NormalizeSortOrder(order string) string {
	if strings.EqualFold(strings.TrimSpace(order), "desc") {
		return "desc"
	}
	return "asc"
}

// Key returns sortBy if allowed, otherwise the fallback key.
func (s SortSpec) Key(sortBy string) string {
	if _, ok := s.columns[sortBy]; ok {
		return sortBy
	}
	return s.fallback
}

// OrderBy renders the ORDER BY body from allowlisted fragments only.
func (s SortSpec) OrderBy(sortBy, order string) string {
	direction := "ASC"
	if NormalizeSortOrder(order) == "desc" {
		direction = "DESC"
	}
	return s.columns[s.Key(sortBy)] + " " + direction + ", " + s.tieBreak
}
