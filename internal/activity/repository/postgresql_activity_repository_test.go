package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	activityDomain "github.com/patrolbook/patrolbook/internal/activity/domain"
	apperrors "github.com/patrolbook/patrolbook/internal/errors"
)

func TestPostgreSQLActivityRepository_Create(t *testing.T) {
	t.Run("Success_AppendsEntry", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLActivityRepository(db)
		actorID := uuid.Must(uuid.NewV7())
		entry := &activityDomain.Entry{
			ID:         uuid.Must(uuid.NewV7()),
			ActorID:    &actorID,
			Action:     activityDomain.ActionLogin,
			Detail:     "jdoe",
			OccurredAt: time.Now().UTC(),
		}

		mock.ExpectExec("INSERT INTO activity_log").
			WithArgs(entry.ID, &actorID, entry.Action, entry.Detail, entry.OccurredAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(context.Background(), entry))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_DriverFailureIsUnavailable", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLActivityRepository(db)
		entry := &activityDomain.Entry{
			ID:         uuid.Must(uuid.NewV7()),
			Action:     activityDomain.ActionLoginFailed,
			OccurredAt: time.Now().UTC(),
		}

		mock.ExpectExec("INSERT INTO activity_log").
			WillReturnError(apperrors.New("connection refused"))

		err = repo.Create(context.Background(), entry)
		assert.True(t, apperrors.Is(err, apperrors.ErrUnavailable))
	})
}
