// Package repository provides PostgreSQL and MySQL persistence for identities,
// roles, and permissions. The two implementations differ only in placeholder
// syntax and upsert dialect; both return domain sentinel errors for missing rows
// and wrap driver failures as ErrUnavailable so callers can distinguish bad
// credentials from a backend outage.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/patrolbook/patrolbook/internal/database"
	identityDomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

// PostgreSQLIdentityRepository implements identity persistence for PostgreSQL.
type PostgreSQLIdentityRepository struct {
	db *sql.DB
}

// NewPostgreSQLIdentityRepository creates a new PostgreSQL identity repository.
func NewPostgreSQLIdentityRepository(db *sql.DB) *PostgreSQLIdentityRepository {
	return &PostgreSQLIdentityRepository{db: db}
}

// Create inserts a new identity with its direct permission grants.
func (r *PostgreSQLIdentityRepository) Create(ctx context.Context, identity *identityDomain.Identity) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO identities (id, username, name, password_hash, role, custom_role_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		identity.ID,
		identity.Username,
		identity.Name,
		identity.PasswordHash,
		string(identity.Role),
		identity.CustomRoleID,
		identity.CreatedAt,
		identity.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return identityDomain.ErrUsernameTaken
		}
		return storeError(err, "failed to create identity")
	}

	for _, permissionID := range identity.DirectPermissionIDs {
		grant := `INSERT INTO identity_permissions (identity_id, permission_id) VALUES ($1, $2)`
		if _, err := querier.ExecContext(ctx, grant, identity.ID, permissionID); err != nil {
			return storeError(err, "failed to grant permission")
		}
	}

	return nil
}

// GetByUsername retrieves an identity by username, including direct permission grants.
func (r *PostgreSQLIdentityRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*identityDomain.Identity, error) {
	query := `SELECT id, username, name, password_hash, role, custom_role_id, created_at, updated_at
			  FROM identities WHERE username = $1`

	return r.get(ctx, query, username)
}

// GetByID retrieves an identity by ID, including direct permission grants.
func (r *PostgreSQLIdentityRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*identityDomain.Identity, error) {
	query := `SELECT id, username, name, password_hash, role, custom_role_id, created_at, updated_at
			  FROM identities WHERE id = $1`

	return r.get(ctx, query, id)
}

// UpdatePasswordHash replaces the stored credential hash for an identity.
func (r *PostgreSQLIdentityRepository) UpdatePasswordHash(
	ctx context.Context,
	id uuid.UUID,
	passwordHash string,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE identities SET password_hash = $1, updated_at = NOW() WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return storeError(err, "failed to update password hash")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeError(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return identityDomain.ErrIdentityNotFound
	}

	return nil
}

func (r *PostgreSQLIdentityRepository) get(
	ctx context.Context,
	query string,
	arg any,
) (*identityDomain.Identity, error) {
	querier := database.GetTx(ctx, r.db)

	var identity identityDomain.Identity
	var role string
	var customRoleID sql.NullString

	err := querier.QueryRowContext(ctx, query, arg).Scan(
		&identity.ID,
		&identity.Username,
		&identity.Name,
		&identity.PasswordHash,
		&role,
		&customRoleID,
		&identity.CreatedAt,
		&identity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, identityDomain.ErrIdentityNotFound
		}
		return nil, storeError(err, "failed to get identity")
	}

	identity.Role = identityDomain.CoarseRole(role)
	if customRoleID.Valid {
		parsed, err := uuid.Parse(customRoleID.String)
		if err != nil {
			return nil, storeError(err, "invalid custom role id")
		}
		identity.CustomRoleID = &parsed
	}

	grants, err := r.directPermissionIDs(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	identity.DirectPermissionIDs = grants

	return &identity, nil
}

func (r *PostgreSQLIdentityRepository) directPermissionIDs(
	ctx context.Context,
	identityID uuid.UUID,
) ([]uuid.UUID, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT permission_id FROM identity_permissions WHERE identity_id = $1`

	rows, err := querier.QueryContext(ctx, query, identityID)
	if err != nil {
		return nil, storeError(err, "failed to get direct permissions")
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, storeError(err, "failed to scan permission id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err, "failed to iterate direct permissions")
	}

	return ids, nil
}
