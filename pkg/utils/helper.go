package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ParseUUID parses an identifier taken from a path or body.
func ParseUUID(value string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(value))
}
