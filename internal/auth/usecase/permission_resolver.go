package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/patrolbook/patrolbook/internal/auth/domain"
	"github.com/patrolbook/patrolbook/internal/errors"
	identitydomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

type permissionResolver struct {
	roleRepository       RoleRepository
	permissionRepository PermissionRepository
}

// NewPermissionResolver creates the effective-permission resolver.
func NewPermissionResolver(
	roleRepository RoleRepository,
	permissionRepository PermissionRepository,
) PermissionResolver {
	return &permissionResolver{
		roleRepository:       roleRepository,
		permissionRepository: permissionRepository,
	}
}

// EffectivePermissions unions the custom role's permissions with the
// identity's direct grants. Admins receive every permission in the catalogue
// on top. A stale custom role reference is skipped rather than treated as an
// error; a failing store propagates.
func (r *permissionResolver) EffectivePermissions(
	ctx context.Context,
	identity *identitydomain.Identity,
) (domain.PermissionSet, error) {
	if identity == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "identity is required")
	}

	set := domain.NewPermissionSet()

	if identity.CustomRoleID != nil {
		role, err := r.roleRepository.GetByID(ctx, *identity.CustomRoleID)
		switch {
		case err == nil:
			if err := r.addByIDs(ctx, set, role.PermissionIDs); err != nil {
				return nil, err
			}
		case errors.Is(err, errors.ErrNotFound):
			// dangling role reference, identity keeps its direct grants
		default:
			return nil, err
		}
	}

	if err := r.addByIDs(ctx, set, identity.DirectPermissionIDs); err != nil {
		return nil, err
	}

	if identity.Role == identitydomain.RoleAdmin {
		all, err := r.permissionRepository.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, permission := range all {
			set.Add(permission.Code)
		}
	}

	return set, nil
}

func (r *permissionResolver) HasPermission(
	ctx context.Context,
	identity *identitydomain.Identity,
	code string,
) (bool, error) {
	set, err := r.EffectivePermissions(ctx, identity)
	if err != nil {
		return false, err
	}
	return set.Contains(code), nil
}

func (r *permissionResolver) HasAnyPermission(
	ctx context.Context,
	identity *identitydomain.Identity,
	codes ...string,
) (bool, error) {
	set, err := r.EffectivePermissions(ctx, identity)
	if err != nil {
		return false, err
	}
	return set.ContainsAny(codes...), nil
}

func (r *permissionResolver) HasAllPermissions(
	ctx context.Context,
	identity *identitydomain.Identity,
	codes ...string,
) (bool, error) {
	set, err := r.EffectivePermissions(ctx, identity)
	if err != nil {
		return false, err
	}
	return set.ContainsAll(codes...), nil
}

func (r *permissionResolver) addByIDs(
	ctx context.Context,
	set domain.PermissionSet,
	ids []uuid.UUID,
) error {
	permissions, err := r.permissionRepository.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, permission := range permissions {
		set.Add(permission.Code)
	}
	return nil
}
