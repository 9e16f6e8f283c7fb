package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/patrolbook/patrolbook/internal/database"
	identityDomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

// MySQLIdentityRepository implements identity persistence for MySQL.
// UUIDs are stored as CHAR(36) strings since MySQL has no native UUID type.
type MySQLIdentityRepository struct {
	db *sql.DB
}

// NewMySQLIdentityRepository creates a new MySQL identity repository.
func NewMySQLIdentityRepository(db *sql.DB) *MySQLIdentityRepository {
	return &MySQLIdentityRepository{db: db}
}

// Create inserts a new identity with its direct permission grants.
func (r *MySQLIdentityRepository) Create(ctx context.Context, identity *identityDomain.Identity) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO identities (id, username, name, password_hash, role, custom_role_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	var customRoleID any
	if identity.CustomRoleID != nil {
		customRoleID = identity.CustomRoleID.String()
	}

	_, err := querier.ExecContext(
		ctx,
		query,
		identity.ID.String(),
		identity.Username,
		identity.Name,
		identity.PasswordHash,
		string(identity.Role),
		customRoleID,
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
		grant := `INSERT INTO identity_permissions (identity_id, permission_id) VALUES (?, ?)`
		if _, err := querier.ExecContext(ctx, grant, identity.ID.String(), permissionID.String()); err != nil {
			return storeError(err, "failed to grant permission")
		}
	}

	return nil
}

// GetByUsername retrieves an identity by username, including direct permission grants.
func (r *MySQLIdentityRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*identityDomain.Identity, error) {
	query := `SELECT id, username, name, password_hash, role, custom_role_id, created_at, updated_at
			  FROM identities WHERE username = ?`

	return r.get(ctx, query, username)
}

// GetByID retrieves an identity by ID, including direct permission grants.
func (r *MySQLIdentityRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*identityDomain.Identity, error) {
	query := `SELECT id, username, name, password_hash, role, custom_role_id, created_at, updated_at
			  FROM identities WHERE id = ?`

	return r.get(ctx, query, id.String())
}

// UpdatePasswordHash replaces the stored credential hash for an identity.
func (r *MySQLIdentityRepository) UpdatePasswordHash(
	ctx context.Context,
	id uuid.UUID,
	passwordHash string,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE identities SET password_hash = ?, updated_at = NOW() WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, passwordHash, id.String())
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

func (r *MySQLIdentityRepository) get(
	ctx context.Context,
	query string,
	arg any,
) (*identityDomain.Identity, error) {
	querier := database.GetTx(ctx, r.db)

	var identity identityDomain.Identity
	var id string
	var role string
	var customRoleID sql.NullString

	err := querier.QueryRowContext(ctx, query, arg).Scan(
		&id,
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

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, storeError(err, "invalid identity id")
	}
	identity.ID = parsedID
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

func (r *MySQLIdentityRepository) directPermissionIDs(
	ctx context.Context,
	identityID uuid.UUID,
) ([]uuid.UUID, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT permission_id FROM identity_permissions WHERE identity_id = ?`

	rows, err := querier.QueryContext(ctx, query, identityID.String())
	if err != nil {
		return nil, storeError(err, "failed to get direct permissions")
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, storeError(err, "failed to scan permission id")
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, storeError(err, "invalid permission id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err, "failed to iterate direct permissions")
	}

	return ids, nil
}
