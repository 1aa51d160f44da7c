package services

import (
	"errors"

	"varnix-dashboard/database"
)

// Common service-level errors
var (
	// ErrUnauthenticated is returned before any gateway call when no user is present.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound aliases the gateway's missing-row error for callers that
	// should not import the database package.
	ErrNotFound = database.ErrRowNotFound
)

// IsNotFound reports whether err means the addressed row does not exist for the user.
func IsNotFound(err error) bool {
	return errors.Is(err, database.ErrRowNotFound)
}
