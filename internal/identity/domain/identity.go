// Package domain defines the identity, role, and permission entities backing the
// department portal's accounts.
//
// Every account carries a legacy coarse role ("officer" or "admin") directly on
// the identity and inside issued tokens. Fine-grained access is layered on top:
// an optional custom role bundles permission codes, and permissions can also be
// granted directly to an identity. The two systems coexist; admin on the coarse
// field always implies every permission.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/patrolbook/patrolbook/internal/errors"
)

// CoarseRole is the legacy two-valued role carried on the identity and inside tokens.
type CoarseRole string

const (
	// RoleOfficer is the default coarse role for department members.
	RoleOfficer CoarseRole = "officer"

	// RoleAdmin implies every permission that exists in the system.
	RoleAdmin CoarseRole = "admin"
)

// Valid reports whether the coarse role is one of the two known values.
// Anything else is treated as an invalid credential, never as a permissive default.
func (r CoarseRole) Valid() bool {
	return r == RoleOfficer || r == RoleAdmin
}

// Identity represents a portal account. The auth core never creates or deletes
// identities through request flows; it reads the fields needed for verification
// and derives permission sets from them.
type Identity struct {
	ID                  uuid.UUID
	Username            string
	Name                string
	PasswordHash        string // bcrypt, self-describing format
	Role                CoarseRole
	CustomRoleID        *uuid.UUID  // optional fine-grained role (nil if unassigned)
	DirectPermissionIDs []uuid.UUID // permissions granted directly to this identity
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Role is an optional, separately administered named bundle of permission codes.
type Role struct {
	ID            uuid.UUID
	Code          string
	PermissionIDs []uuid.UUID
	CreatedAt     time.Time
}

// Permission is a flat capability tag (e.g. "reports.create"). There is no
// hierarchy; membership is the only relation that matters.
type Permission struct {
	ID        uuid.UUID
	Code      string
	CreatedAt time.Time
}

// NormalizeCode lower-cases and trims a permission code. All membership checks
// compare normalized codes, so "Users.Create" and "users.create" are the same tag.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// Domain-specific errors for identity operations.
var (
	// ErrIdentityNotFound indicates the requested identity does not exist.
	ErrIdentityNotFound = errors.Wrap(errors.ErrNotFound, "identity not found")

	// ErrRoleNotFound indicates the requested fine-grained role does not exist.
	ErrRoleNotFound = errors.Wrap(errors.ErrNotFound, "role not found")

	// ErrUsernameTaken indicates an identity with the same username already exists.
	ErrUsernameTaken = errors.Wrap(errors.ErrConflict, "username already taken")
)
