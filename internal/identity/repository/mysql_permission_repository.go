package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/patrolbook/patrolbook/internal/database"
	identityDomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

// MySQLPermissionRepository implements permission persistence for MySQL.
type MySQLPermissionRepository struct {
	db *sql.DB
}

// NewMySQLPermissionRepository creates a new MySQL permission repository.
func NewMySQLPermissionRepository(db *sql.DB) *MySQLPermissionRepository {
	return &MySQLPermissionRepository{db: db}
}

// Create inserts a permission, ignoring duplicates by code.
func (r *MySQLPermissionRepository) Create(
	ctx context.Context,
	permission *identityDomain.Permission,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT IGNORE INTO permissions (id, code, created_at) VALUES (?, ?, ?)`

	_, err := querier.ExecContext(ctx, query, permission.ID.String(), permission.Code, permission.CreatedAt)
	if err != nil {
		return storeError(err, "failed to create permission")
	}
	return nil
}

// FindAll returns every permission in the system.
func (r *MySQLPermissionRepository) FindAll(ctx context.Context) ([]*identityDomain.Permission, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, code, created_at FROM permissions ORDER BY code`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, storeError(err, "failed to list permissions")
	}
	defer rows.Close()

	return scanMySQLPermissions(rows)
}

// FindByIDs returns the permissions matching the given IDs.
func (r *MySQLPermissionRepository) FindByIDs(
	ctx context.Context,
	ids []uuid.UUID,
) ([]*identityDomain.Permission, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	querier := database.GetTx(ctx, r.db)

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id.String()
	}

	query := `SELECT id, code, created_at FROM permissions WHERE id IN (` +
		strings.Join(placeholders, ", ") + `)`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, "failed to find permissions")
	}
	defer rows.Close()

	return scanMySQLPermissions(rows)
}

func scanMySQLPermissions(rows *sql.Rows) ([]*identityDomain.Permission, error) {
	var permissions []*identityDomain.Permission
	for rows.Next() {
		var permission identityDomain.Permission
		var raw string
		if err := rows.Scan(&raw, &permission.Code, &permission.CreatedAt); err != nil {
			return nil, storeError(err, "failed to scan permission")
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, storeError(err, "invalid permission id")
		}
		permission.ID = id
		permissions = append(permissions, &permission)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err, "failed to iterate permissions")
	}
	return permissions, nil
}
