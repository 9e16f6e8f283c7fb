package repository

import (
	"strings"

	apperrors "github.com/patrolbook/patrolbook/internal/errors"
)

// storeError wraps a driver failure as ErrUnavailable. Missing rows never reach
// this path; they are reported with domain not-found sentinels instead.
func storeError(err error, message string) error {
	return apperrors.Wrap(apperrors.ErrUnavailable, message+": "+err.Error())
}

// isUniqueViolation detects a unique constraint violation in a driver-agnostic
// way. PostgreSQL reports SQLSTATE 23505, MySQL error 1062; both drivers include
// the marker in the error text.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	message := err.Error()
	return strings.Contains(message, "23505") ||
		strings.Contains(message, "1062") ||
		strings.Contains(message, "duplicate key") ||
		strings.Contains(message, "Duplicate entry")
}
