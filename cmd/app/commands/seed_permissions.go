package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/patrolbook/patrolbook/internal/app"
	"github.com/patrolbook/patrolbook/internal/config"
	identitydomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

// RunSeedPermissions inserts the builtin permission catalogue. Existing codes
// are left untouched, so the command is safe to run repeatedly.
func RunSeedPermissions(ctx context.Context, io IOTuple) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	permissionRepo, err := container.PermissionRepository()
	if err != nil {
		return err
	}

	for _, code := range identitydomain.BuiltinPermissionCodes {
		permission := &identitydomain.Permission{
			ID:        uuid.Must(uuid.NewV7()),
			Code:      code,
			CreatedAt: time.Now(),
		}
		if err := permissionRepo.Create(ctx, permission); err != nil {
			return fmt.Errorf("failed to seed permission %s: %w", code, err)
		}
	}

	fmt.Fprintf(io.Writer, "Seeded %d builtin permissions\n", len(identitydomain.BuiltinPermissionCodes))
	return nil
}
