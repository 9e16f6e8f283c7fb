// Package usecase orchestrates login, password changes, and permission
// resolution on top of the auth services and the identity stores.
package usecase

import (
	"context"

	"github.com/google/uuid"

	activitydomain "github.com/patrolbook/patrolbook/internal/activity/domain"
	"github.com/patrolbook/patrolbook/internal/auth/domain"
	identitydomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

// IdentityRepository is the identity store surface the auth flows depend on.
type IdentityRepository interface {
	Create(ctx context.Context, identity *identitydomain.Identity) error
	GetByUsername(ctx context.Context, username string) (*identitydomain.Identity, error)
	GetByID(ctx context.Context, id uuid.UUID) (*identitydomain.Identity, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// RoleRepository resolves custom roles referenced by identities.
type RoleRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*identitydomain.Role, error)
}

// PermissionRepository resolves permission records by id and lists the
// catalogue.
type PermissionRepository interface {
	Create(ctx context.Context, permission *identitydomain.Permission) error
	FindAll(ctx context.Context) ([]*identitydomain.Permission, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*identitydomain.Permission, error)
}

// ActivityRepository records audit entries for auth events.
type ActivityRepository interface {
	Create(ctx context.Context, entry *activitydomain.Entry) error
}

// LoginUseCase authenticates a username/password pair and issues a session
// token.
type LoginUseCase interface {
	Login(ctx context.Context, username, password string) (*domain.LoginOutput, error)
}

// PasswordUseCase changes an identity's password after verifying the current
// one and vetting the replacement.
type PasswordUseCase interface {
	Change(ctx context.Context, identityID uuid.UUID, currentPassword, newPassword string) error
}

// PermissionResolver computes the effective permission set for an identity:
// the union of its custom role's permissions and its direct grants, with
// admins receiving the full catalogue.
type PermissionResolver interface {
	EffectivePermissions(ctx context.Context, identity *identitydomain.Identity) (domain.PermissionSet, error)
	HasPermission(ctx context.Context, identity *identitydomain.Identity, code string) (bool, error)
	HasAnyPermission(ctx context.Context, identity *identitydomain.Identity, codes ...string) (bool, error)
	HasAllPermissions(ctx context.Context, identity *identitydomain.Identity, codes ...string) (bool, error)
}
