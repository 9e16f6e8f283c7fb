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

func TestPostgreSQLPermissionRepository_FindAll(t *testing.T) {
	t.Run("Success_ReturnsAllPermissions", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLPermissionRepository(db)

		now := time.Now().UTC()
		firstID := uuid.Must(uuid.NewV7())
		secondID := uuid.Must(uuid.NewV7())

		mock.ExpectQuery("SELECT id, code, created_at FROM permissions ORDER BY code").
			WillReturnRows(sqlmock.NewRows([]string{"id", "code", "created_at"}).
				AddRow(firstID.String(), "reports.create", now).
				AddRow(secondID.String(), "reports.view", now))

		permissions, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, permissions, 2)
		assert.Equal(t, "reports.create", permissions[0].Code)
		assert.Equal(t, secondID, permissions[1].ID)
	})

	t.Run("Success_EmptyCatalogue", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLPermissionRepository(db)

		mock.ExpectQuery("SELECT id, code, created_at FROM permissions ORDER BY code").
			WillReturnRows(sqlmock.NewRows([]string{"id", "code", "created_at"}))

		permissions, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, permissions)
	})

	t.Run("Error_DriverFailureIsUnavailable", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLPermissionRepository(db)

		mock.ExpectQuery("SELECT id, code, created_at FROM permissions ORDER BY code").
			WillReturnError(apperrors.New("connection reset"))

		permissions, err := repo.FindAll(context.Background())
		assert.Nil(t, permissions)
		assert.True(t, apperrors.Is(err, apperrors.ErrUnavailable))
	})
}

func TestPostgreSQLPermissionRepository_FindByIDs(t *testing.T) {
	t.Run("Success_EmptyInputShortCircuits", func(t *testing.T) {
		db, _ := newMockDB(t)
		repo := NewPostgreSQLPermissionRepository(db)

		permissions, err := repo.FindByIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.Nil(t, permissions)
	})

	t.Run("Success_ReturnsMatchingPermissions", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLPermissionRepository(db)

		now := time.Now().UTC()
		id := uuid.Must(uuid.NewV7())

		mock.ExpectQuery("SELECT id, code, created_at FROM permissions WHERE id IN").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "code", "created_at"}).
				AddRow(id.String(), "users.view", now))

		permissions, err := repo.FindByIDs(context.Background(), []uuid.UUID{id})
		require.NoError(t, err)
		require.Len(t, permissions, 1)
		assert.Equal(t, "users.view", permissions[0].Code)
	})
}

func TestPostgreSQLRoleRepository_GetByID(t *testing.T) {
	t.Run("Success_ReturnsRoleWithBindings", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLRoleRepository(db)

		roleID := uuid.Must(uuid.NewV7())
		permissionID := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()

		mock.ExpectQuery("SELECT id, code, created_at FROM roles").
			WithArgs(roleID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "code", "created_at"}).
				AddRow(roleID.String(), "detective", now))

		mock.ExpectQuery("SELECT permission_id FROM role_permissions").
			WithArgs(roleID).
			WillReturnRows(sqlmock.NewRows([]string{"permission_id"}).AddRow(permissionID.String()))

		role, err := repo.GetByID(context.Background(), roleID)
		require.NoError(t, err)
		assert.Equal(t, "detective", role.Code)
		assert.Equal(t, []uuid.UUID{permissionID}, role.PermissionIDs)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLRoleRepository(db)

		roleID := uuid.Must(uuid.NewV7())

		mock.ExpectQuery("SELECT id, code, created_at FROM roles").
			WithArgs(roleID).
			WillReturnError(sql.ErrNoRows)

		role, err := repo.GetByID(context.Background(), roleID)
		assert.Nil(t, role)
		assert.ErrorIs(t, err, identityDomain.ErrRoleNotFound)
	})
}
