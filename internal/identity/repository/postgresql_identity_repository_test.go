package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/patrolbook/patrolbook/internal/errors"
	identityDomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func identityColumns() []string {
	return []string{"id", "username", "name", "password_hash", "role", "custom_role_id", "created_at", "updated_at"}
}

func TestPostgreSQLIdentityRepository_GetByUsername(t *testing.T) {
	t.Run("Success_ReturnsIdentityWithGrants", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLIdentityRepository(db)

		identityID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())
		grantID := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()

		mock.ExpectQuery("SELECT id, username, name, password_hash, role, custom_role_id").
			WithArgs("jdoe").
			WillReturnRows(sqlmock.NewRows(identityColumns()).
				AddRow(identityID.String(), "jdoe", "J. Doe", "$2a$12$hash", "officer", roleID.String(), now, now))

		mock.ExpectQuery("SELECT permission_id FROM identity_permissions").
			WithArgs(identityID).
			WillReturnRows(sqlmock.NewRows([]string{"permission_id"}).AddRow(grantID.String()))

		identity, err := repo.GetByUsername(context.Background(), "jdoe")
		require.NoError(t, err)

		assert.Equal(t, identityID, identity.ID)
		assert.Equal(t, "jdoe", identity.Username)
		assert.Equal(t, identityDomain.RoleOfficer, identity.Role)
		require.NotNil(t, identity.CustomRoleID)
		assert.Equal(t, roleID, *identity.CustomRoleID)
		assert.Equal(t, []uuid.UUID{grantID}, identity.DirectPermissionIDs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_NullCustomRole", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLIdentityRepository(db)

		identityID := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()

		mock.ExpectQuery("SELECT id, username, name, password_hash, role, custom_role_id").
			WithArgs("jdoe").
			WillReturnRows(sqlmock.NewRows(identityColumns()).
				AddRow(identityID.String(), "jdoe", "J. Doe", "$2a$12$hash", "admin", nil, now, now))

		mock.ExpectQuery("SELECT permission_id FROM identity_permissions").
			WithArgs(identityID).
			WillReturnRows(sqlmock.NewRows([]string{"permission_id"}))

		identity, err := repo.GetByUsername(context.Background(), "jdoe")
		require.NoError(t, err)

		assert.Nil(t, identity.CustomRoleID)
		assert.Empty(t, identity.DirectPermissionIDs)
		assert.Equal(t, identityDomain.RoleAdmin, identity.Role)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLIdentityRepository(db)

		mock.ExpectQuery("SELECT id, username, name, password_hash, role, custom_role_id").
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		identity, err := repo.GetByUsername(context.Background(), "ghost")
		assert.Nil(t, identity)
		assert.ErrorIs(t, err, identityDomain.ErrIdentityNotFound)
	})

	t.Run("Error_DriverFailureIsUnavailable", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLIdentityRepository(db)

		mock.ExpectQuery("SELECT id, username, name, password_hash, role, custom_role_id").
			WithArgs("jdoe").
			WillReturnError(apperrors.New("connection refused"))

		identity, err := repo.GetByUsername(context.Background(), "jdoe")
		assert.Nil(t, identity)
		assert.True(t, apperrors.Is(err, apperrors.ErrUnavailable))
	})
}

func TestPostgreSQLIdentityRepository_UpdatePasswordHash(t *testing.T) {
	t.Run("Success_UpdatesRow", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLIdentityRepository(db)

		identityID := uuid.Must(uuid.NewV7())

		mock.ExpectExec("UPDATE identities SET password_hash").
			WithArgs("$2a$12$newhash", identityID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdatePasswordHash(context.Background(), identityID, "$2a$12$newhash")
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NoRowsAffected", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLIdentityRepository(db)

		identityID := uuid.Must(uuid.NewV7())

		mock.ExpectExec("UPDATE identities SET password_hash").
			WithArgs("$2a$12$newhash", identityID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePasswordHash(context.Background(), identityID, "$2a$12$newhash")
		assert.ErrorIs(t, err, identityDomain.ErrIdentityNotFound)
	})
}

func TestPostgreSQLIdentityRepository_Create(t *testing.T) {
	t.Run("Error_DuplicateUsername", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLIdentityRepository(db)

		identity := &identityDomain.Identity{
			ID:       uuid.Must(uuid.NewV7()),
			Username: "jdoe",
			Role:     identityDomain.RoleOfficer,
		}

		mock.ExpectExec("INSERT INTO identities").
			WillReturnError(apperrors.New(`pq: duplicate key value violates unique constraint (SQLSTATE 23505)`))

		err := repo.Create(context.Background(), identity)
		assert.ErrorIs(t, err, identityDomain.ErrUsernameTaken)
	})
}
