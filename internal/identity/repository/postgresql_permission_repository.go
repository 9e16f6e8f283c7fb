package repository

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/patrolbook/patrolbook/internal/database"
	identityDomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

// PostgreSQLPermissionRepository implements permission persistence for PostgreSQL.
type PostgreSQLPermissionRepository struct {
	db *sql.DB
}

// NewPostgreSQLPermissionRepository creates a new PostgreSQL permission repository.
func NewPostgreSQLPermissionRepository(db *sql.DB) *PostgreSQLPermissionRepository {
	return &PostgreSQLPermissionRepository{db: db}
}

// Create inserts a permission, ignoring duplicates by code.
func (r *PostgreSQLPermissionRepository) Create(
	ctx context.Context,
	permission *identityDomain.Permission,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO permissions (id, code, created_at) VALUES ($1, $2, $3)
			  ON CONFLICT (code) DO NOTHING`

	_, err := querier.ExecContext(ctx, query, permission.ID, permission.Code, permission.CreatedAt)
	if err != nil {
		return storeError(err, "failed to create permission")
	}
	return nil
}

// FindAll returns every permission in the system. Used by the resolver to expand
// the admin coarse role into the full permission set.
func (r *PostgreSQLPermissionRepository) FindAll(ctx context.Context) ([]*identityDomain.Permission, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, code, created_at FROM permissions ORDER BY code`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, storeError(err, "failed to list permissions")
	}
	defer rows.Close()

	return scanPermissions(rows)
}

// FindByIDs returns the permissions matching the given IDs. Unknown IDs are
// silently skipped; a stale grant must not fail the whole resolution.
func (r *PostgreSQLPermissionRepository) FindByIDs(
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
		placeholders[i] = "$" + strconv.Itoa(i+1)
		args[i] = id
	}

	query := `SELECT id, code, created_at FROM permissions WHERE id IN (` +
		strings.Join(placeholders, ", ") + `)`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, "failed to find permissions")
	}
	defer rows.Close()

	return scanPermissions(rows)
}

func scanPermissions(rows *sql.Rows) ([]*identityDomain.Permission, error) {
	var permissions []*identityDomain.Permission
	for rows.Next() {
		var permission identityDomain.Permission
		if err := rows.Scan(&permission.ID, &permission.Code, &permission.CreatedAt); err != nil {
			return nil, storeError(err, "failed to scan permission")
		}
		permissions = append(permissions, &permission)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err, "failed to iterate permissions")
	}
	return permissions, nil
}
