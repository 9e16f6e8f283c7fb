package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/patrolbook/patrolbook/internal/database"
	identityDomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

// MySQLRoleRepository implements fine-grained role persistence for MySQL.
type MySQLRoleRepository struct {
	db *sql.DB
}

// NewMySQLRoleRepository creates a new MySQL role repository.
func NewMySQLRoleRepository(db *sql.DB) *MySQLRoleRepository {
	return &MySQLRoleRepository{db: db}
}

// GetByID retrieves a role and its permission bindings.
func (r *MySQLRoleRepository) GetByID(ctx context.Context, id uuid.UUID) (*identityDomain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, code, created_at FROM roles WHERE id = ?`

	var role identityDomain.Role
	var rawID string
	err := querier.QueryRowContext(ctx, query, id.String()).Scan(
		&rawID,
		&role.Code,
		&role.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, identityDomain.ErrRoleNotFound
		}
		return nil, storeError(err, "failed to get role")
	}

	parsedID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, storeError(err, "invalid role id")
	}
	role.ID = parsedID

	bindings := `SELECT permission_id FROM role_permissions WHERE role_id = ?`

	rows, err := querier.QueryContext(ctx, bindings, id.String())
	if err != nil {
		return nil, storeError(err, "failed to get role permissions")
	}
	defer rows.Close()

	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, storeError(err, "failed to scan permission id")
		}
		permissionID, err := uuid.Parse(raw)
		if err != nil {
			return nil, storeError(err, "invalid permission id")
		}
		role.PermissionIDs = append(role.PermissionIDs, permissionID)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err, "failed to iterate role permissions")
	}

	return &role, nil
}
