package repository

import (
	"context"
	"database/sql"

	activityDomain "github.com/patrolbook/patrolbook/internal/activity/domain"
	"github.com/patrolbook/patrolbook/internal/database"
	apperrors "github.com/patrolbook/patrolbook/internal/errors"
)

// MySQLActivityRepository implements activity log persistence for MySQL.
type MySQLActivityRepository struct {
	db *sql.DB
}

// NewMySQLActivityRepository creates a new MySQL activity repository.
func NewMySQLActivityRepository(db *sql.DB) *MySQLActivityRepository {
	return &MySQLActivityRepository{db: db}
}

// Create appends an activity entry.
func (r *MySQLActivityRepository) Create(ctx context.Context, entry *activityDomain.Entry) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO activity_log (id, actor_id, action, detail, occurred_at)
			  VALUES (?, ?, ?, ?, ?)`

	var actorID any
	if entry.ActorID != nil {
		actorID = entry.ActorID.String()
	}

	_, err := querier.ExecContext(
		ctx,
		query,
		entry.ID.String(),
		actorID,
		entry.Action,
		entry.Detail,
		entry.OccurredAt,
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrUnavailable, "failed to create activity entry: "+err.Error())
	}
	return nil
}
