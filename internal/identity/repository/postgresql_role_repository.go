package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/patrolbook/patrolbook/internal/database"
	identityDomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

// PostgreSQLRoleRepository implements fine-grained role persistence for PostgreSQL.
type PostgreSQLRoleRepository struct {
	db *sql.DB
}

// NewPostgreSQLRoleRepository creates a new PostgreSQL role repository.
func NewPostgreSQLRoleRepository(db *sql.DB) *PostgreSQLRoleRepository {
	return &PostgreSQLRoleRepository{db: db}
}

// GetByID retrieves a role and its permission bindings.
func (r *PostgreSQLRoleRepository) GetByID(ctx context.Context, id uuid.UUID) (*identityDomain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, code, created_at FROM roles WHERE id = $1`

	var role identityDomain.Role
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&role.ID,
		&role.Code,
		&role.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, identityDomain.ErrRoleNotFound
		}
		return nil, storeError(err, "failed to get role")
	}

	bindings := `SELECT permission_id FROM role_permissions WHERE role_id = $1`

	rows, err := querier.QueryContext(ctx, bindings, id)
	if err != nil {
		return nil, storeError(err, "failed to get role permissions")
	}
	defer rows.Close()

	for rows.Next() {
		var permissionID uuid.UUID
		if err := rows.Scan(&permissionID); err != nil {
			return nil, storeError(err, "failed to scan permission id")
		}
		role.PermissionIDs = append(role.PermissionIDs, permissionID)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err, "failed to iterate role permissions")
	}

	return &role, nil
}
