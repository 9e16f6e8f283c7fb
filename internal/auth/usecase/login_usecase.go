package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	activitydomain "github.com/patrolbook/patrolbook/internal/activity/domain"
	"github.com/patrolbook/patrolbook/internal/auth/domain"
	"github.com/patrolbook/patrolbook/internal/auth/service"
	"github.com/patrolbook/patrolbook/internal/errors"
)

type loginUseCase struct {
	identityRepository IdentityRepository
	activityRepository ActivityRepository
	passwordHasher     service.PasswordHasher
	tokenService       service.TokenService
	logger             *slog.Logger
}

// NewLoginUseCase creates the login flow.
func NewLoginUseCase(
	identityRepository IdentityRepository,
	activityRepository ActivityRepository,
	passwordHasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) LoginUseCase {
	return &loginUseCase{
		identityRepository: identityRepository,
		activityRepository: activityRepository,
		passwordHasher:     passwordHasher,
		tokenService:       tokenService,
		logger:             logger,
	}
}

// Login authenticates the pair and issues a token. Unknown usernames and wrong
// passwords both come back as ErrInvalidCredentials so the endpoint cannot be
// used to enumerate accounts. Store failures keep their unavailable identity
// and are never folded into the credential error.
func (u *loginUseCase) Login(ctx context.Context, username, password string) (*domain.LoginOutput, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "username and password are required")
	}

	identity, err := u.identityRepository.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			u.recordActivity(ctx, nil, activitydomain.ActionLoginFailed, "unknown username "+username)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.passwordHasher.Verify(password, identity.PasswordHash) {
		u.recordActivity(ctx, &identity.ID, activitydomain.ActionLoginFailed, "wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	if !identity.Role.Valid() {
		return nil, domain.ErrUnknownRole
	}

	token, err := u.tokenService.Issue(identity.ID.String(), string(identity.Role))
	if err != nil {
		return nil, err
	}

	u.recordActivity(ctx, &identity.ID, activitydomain.ActionLogin, "")

	return &domain.LoginOutput{
		Token:     token,
		ExpiresAt: time.Now().Add(u.tokenService.TTL()),
		Identity:  identity,
	}, nil
}

// recordActivity appends an audit entry. Audit writes never change the auth
// outcome; failures are logged and dropped.
func (u *loginUseCase) recordActivity(ctx context.Context, actorID *uuid.UUID, action, detail string) {
	entry := &activitydomain.Entry{
		ID:         uuid.Must(uuid.NewV7()),
		ActorID:    actorID,
		Action:     action,
		Detail:     detail,
		OccurredAt: time.Now(),
	}
	if err := u.activityRepository.Create(ctx, entry); err != nil {
		u.logger.Warn("failed to record activity entry", "action", action, "error", err)
	}
}
