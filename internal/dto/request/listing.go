package request

import (
	"net/url"
	"strings"
)

// ListQuery carries the search and ordering parameters of a listing.
// SortBy and SortOrder are resolved against an allowlist by the repository.
type ListQuery struct {
	Search    string
	SortBy    string
	SortOrder string
}

func ListQueryFromValues(values url.Values) ListQuery {
	return ListQuery{
		Search:    strings.TrimSpace(values.Get("search")),
		SortBy:    strings.TrimSpace(values.Get("sortBy")),
		SortOrder: strings.TrimSpace(values.Get("sortOrder")),
	}
}
