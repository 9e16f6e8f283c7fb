package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	activitydomain "github.com/patrolbook/patrolbook/internal/activity/domain"
	"github.com/patrolbook/patrolbook/internal/auth/domain"
	"github.com/patrolbook/patrolbook/internal/auth/service"
	"github.com/patrolbook/patrolbook/internal/errors"
	identitydomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLoginFixture(t *testing.T) (service.PasswordHasher, service.TokenService) {
	t.Helper()
	hasher, err := service.NewBcryptPasswordHasher(4)
	require.NoError(t, err)
	tokenService, err := service.NewJWTTokenService([]byte("login-test-secret"), time.Hour)
	require.NoError(t, err)
	return hasher, tokenService
}

func TestLoginUseCase_Login(t *testing.T) {
	ctx := context.Background()
	hasher, tokenService := newLoginFixture(t)

	passwordHash, err := hasher.Hash("Sw0rdfish!")
	require.NoError(t, err)

	identity := &identitydomain.Identity{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     "jsmith",
		Name:         "J. Smith",
		PasswordHash: passwordHash,
		Role:         identitydomain.RoleOfficer,
	}

	t.Run("Success", func(t *testing.T) {
		identityRepo := new(mockIdentityRepository)
		activityRepo := new(mockActivityRepository)
		identityRepo.On("GetByUsername", ctx, "jsmith").Return(identity, nil)
		activityRepo.On("Create", ctx, mock.MatchedBy(func(e *activitydomain.Entry) bool {
			return e.Action == activitydomain.ActionLogin && e.ActorID != nil && *e.ActorID == identity.ID
		})).Return(nil)

		useCase := NewLoginUseCase(identityRepo, activityRepo, hasher, tokenService, newTestLogger())
		output, err := useCase.Login(ctx, "jsmith", "Sw0rdfish!")
		require.NoError(t, err)

		payload, err := tokenService.Verify(output.Token)
		require.NoError(t, err)
		assert.Equal(t, identity.ID.String(), payload.SubjectID)
		assert.Equal(t, identitydomain.RoleOfficer, payload.Role)
		assert.WithinDuration(t, time.Now().Add(time.Hour), output.ExpiresAt, time.Minute)
		identityRepo.AssertExpectations(t)
		activityRepo.AssertExpectations(t)
	})

	t.Run("Error_UnknownUsername", func(t *testing.T) {
		identityRepo := new(mockIdentityRepository)
		activityRepo := new(mockActivityRepository)
		identityRepo.On("GetByUsername", ctx, "ghost").Return(nil, identitydomain.ErrIdentityNotFound)
		activityRepo.On("Create", ctx, mock.MatchedBy(func(e *activitydomain.Entry) bool {
			return e.Action == activitydomain.ActionLoginFailed && e.ActorID == nil
		})).Return(nil)

		useCase := NewLoginUseCase(identityRepo, activityRepo, hasher, tokenService, newTestLogger())
		_, err := useCase.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Error_WrongPassword", func(t *testing.T) {
		identityRepo := new(mockIdentityRepository)
		activityRepo := new(mockActivityRepository)
		identityRepo.On("GetByUsername", ctx, "jsmith").Return(identity, nil)
		activityRepo.On("Create", ctx, mock.MatchedBy(func(e *activitydomain.Entry) bool {
			return e.Action == activitydomain.ActionLoginFailed && e.ActorID != nil
		})).Return(nil)

		useCase := NewLoginUseCase(identityRepo, activityRepo, hasher, tokenService, newTestLogger())
		_, err := useCase.Login(ctx, "jsmith", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Error_StoreUnavailableIsNotFoldedIntoCredentials", func(t *testing.T) {
		identityRepo := new(mockIdentityRepository)
		activityRepo := new(mockActivityRepository)
		storeErr := errors.Wrap(errors.ErrUnavailable, "identities: connection refused")
		identityRepo.On("GetByUsername", ctx, "jsmith").Return(nil, storeErr)

		useCase := NewLoginUseCase(identityRepo, activityRepo, hasher, tokenService, newTestLogger())
		_, err := useCase.Login(ctx, "jsmith", "Sw0rdfish!")
		assert.ErrorIs(t, err, errors.ErrUnavailable)
		assert.NotErrorIs(t, err, errors.ErrUnauthorized)
	})

	t.Run("Error_BlankInput", func(t *testing.T) {
		useCase := NewLoginUseCase(new(mockIdentityRepository), new(mockActivityRepository), hasher, tokenService, newTestLogger())
		_, err := useCase.Login(ctx, "  ", "pw")
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
		_, err = useCase.Login(ctx, "jsmith", "")
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})

	t.Run("Success_ActivityWriteFailureDoesNotBlockLogin", func(t *testing.T) {
		identityRepo := new(mockIdentityRepository)
		activityRepo := new(mockActivityRepository)
		identityRepo.On("GetByUsername", ctx, "jsmith").Return(identity, nil)
		activityRepo.On("Create", ctx, mock.Anything).Return(errors.New("activity log down"))

		useCase := NewLoginUseCase(identityRepo, activityRepo, hasher, tokenService, newTestLogger())
		output, err := useCase.Login(ctx, "jsmith", "Sw0rdfish!")
		require.NoError(t, err)
		assert.NotEmpty(t, output.Token)
	})
}
