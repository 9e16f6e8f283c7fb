package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/patrolbook/patrolbook/internal/auth/domain"
	"github.com/patrolbook/patrolbook/internal/metrics"
)

const metricsDomain = "auth"

type loginUseCaseWithMetrics struct {
	next    LoginUseCase
	metrics metrics.BusinessMetrics
}

// NewLoginUseCaseWithMetrics decorates a LoginUseCase with operation counters
// and durations.
func NewLoginUseCaseWithMetrics(next LoginUseCase, businessMetrics metrics.BusinessMetrics) LoginUseCase {
	return &loginUseCaseWithMetrics{next: next, metrics: businessMetrics}
}

func (u *loginUseCaseWithMetrics) Login(ctx context.Context, username, password string) (*domain.LoginOutput, error) {
	start := time.Now()
	output, err := u.next.Login(ctx, username, password)
	status := "success"
	if err != nil {
		status = "error"
	}
	u.metrics.RecordOperation(ctx, metricsDomain, "login", status)
	u.metrics.RecordDuration(ctx, metricsDomain, "login", time.Since(start), status)
	return output, err
}

type passwordUseCaseWithMetrics struct {
	next    PasswordUseCase
	metrics metrics.BusinessMetrics
}

// NewPasswordUseCaseWithMetrics decorates a PasswordUseCase with operation
// counters and durations.
func NewPasswordUseCaseWithMetrics(next PasswordUseCase, businessMetrics metrics.BusinessMetrics) PasswordUseCase {
	return &passwordUseCaseWithMetrics{next: next, metrics: businessMetrics}
}

func (u *passwordUseCaseWithMetrics) Change(
	ctx context.Context,
	identityID uuid.UUID,
	currentPassword, newPassword string,
) error {
	start := time.Now()
	err := u.next.Change(ctx, identityID, currentPassword, newPassword)
	status := "success"
	if err != nil {
		status = "error"
	}
	u.metrics.RecordOperation(ctx, metricsDomain, "password_change", status)
	u.metrics.RecordDuration(ctx, metricsDomain, "password_change", time.Since(start), status)
	return err
}
