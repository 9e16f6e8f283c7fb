// Package repository provides PostgreSQL and MySQL persistence for the activity log.
package repository

import (
	"context"
	"database/sql"

	activityDomain "github.com/patrolbook/patrolbook/internal/activity/domain"
	"github.com/patrolbook/patrolbook/internal/database"
	apperrors "github.com/patrolbook/patrolbook/internal/errors"
)

// PostgreSQLActivityRepository implements activity log persistence for PostgreSQL.
type PostgreSQLActivityRepository struct {
	db *sql.DB
}

// NewPostgreSQLActivityRepository creates a new PostgreSQL activity repository.
func NewPostgreSQLActivityRepository(db *sql.DB) *PostgreSQLActivityRepository {
	return &PostgreSQLActivityRepository{db: db}
}

// Create appends an activity entry.
func (r *PostgreSQLActivityRepository) Create(ctx context.Context, entry *activityDomain.Entry) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO activity_log (id, actor_id, action, detail, occurred_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.ActorID,
		entry.Action,
		entry.Detail,
		entry.OccurredAt,
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrUnavailable, "failed to create activity entry: "+err.Error())
	}
	return nil
}
