package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	activitydomain "github.com/patrolbook/patrolbook/internal/activity/domain"
	"github.com/patrolbook/patrolbook/internal/auth/domain"
	"github.com/patrolbook/patrolbook/internal/auth/service"
	"github.com/patrolbook/patrolbook/internal/database"
	"github.com/patrolbook/patrolbook/internal/errors"
	"github.com/patrolbook/patrolbook/internal/validation"
)

// newPasswordRule mirrors the strength requirements enforced at the API
// boundary, so the flow holds even for callers that bypass the DTO layer
// (CLI resets, future admin tooling).
var newPasswordRule = validation.PasswordStrength{
	MinLength:     8,
	RequireUpper:  true,
	RequireLower:  true,
	RequireNumber: true,
}

type passwordUseCase struct {
	identityRepository IdentityRepository
	activityRepository ActivityRepository
	passwordHasher     service.PasswordHasher
	similarityGuard    service.SimilarityGuard
	txManager          database.TxManager
}

// NewPasswordUseCase creates the password-change flow.
func NewPasswordUseCase(
	identityRepository IdentityRepository,
	activityRepository ActivityRepository,
	passwordHasher service.PasswordHasher,
	similarityGuard service.SimilarityGuard,
	txManager database.TxManager,
) PasswordUseCase {
	return &passwordUseCase{
		identityRepository: identityRepository,
		activityRepository: activityRepository,
		passwordHasher:     passwordHasher,
		similarityGuard:    similarityGuard,
		txManager:          txManager,
	}
}

// Change verifies the current password, vets the replacement for strength and
// similarity, then persists the new hash and the audit entry in a single
// transaction.
func (u *passwordUseCase) Change(ctx context.Context, identityID uuid.UUID, currentPassword, newPassword string) error {
	identity, err := u.identityRepository.GetByID(ctx, identityID)
	if err != nil {
		return err
	}

	if !u.passwordHasher.Verify(currentPassword, identity.PasswordHash) {
		return errors.Wrap(domain.ErrInvalidCredentials, "current password does not match")
	}

	if err := newPasswordRule.Validate(newPassword); err != nil {
		return validation.WrapValidationError(err)
	}

	if u.similarityGuard.IsTooSimilar(newPassword, currentPassword) {
		return domain.ErrPasswordTooSimilar
	}

	newHash, err := u.passwordHasher.Hash(newPassword)
	if err != nil {
		return err
	}

	return u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := u.identityRepository.UpdatePasswordHash(txCtx, identity.ID, newHash); err != nil {
			return err
		}
		entry := &activitydomain.Entry{
			ID:         uuid.Must(uuid.NewV7()),
			ActorID:    &identity.ID,
			Action:     activitydomain.ActionPasswordChange,
			OccurredAt: time.Now(),
		}
		return u.activityRepository.Create(txCtx, entry)
	})
}
