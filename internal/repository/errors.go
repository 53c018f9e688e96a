package repository

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry is returned when an insert violates a unique
	// constraint.
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
)

// isDuplicateEntryError probes the driver error text for a unique
// constraint violation. The sqlite driver exposes no typed error for it.
func isDuplicateEntryError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
