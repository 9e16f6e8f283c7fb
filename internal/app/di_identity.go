package app

import (
	"fmt"

	activityrepository "github.com/patrolbook/patrolbook/internal/activity/repository"
	"github.com/patrolbook/patrolbook/internal/auth/usecase"
	identityrepository "github.com/patrolbook/patrolbook/internal/identity/repository"
)

// IdentityRepository returns the identity repository for the configured
// database driver.
func (c *Container) IdentityRepository() (usecase.IdentityRepository, error) {
	c.identityRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["identityRepo"] = err
			return
		}
		switch c.config.DBDriver {
		case "mysql":
			c.identityRepo = identityrepository.NewMySQLIdentityRepository(db)
		case "postgres":
			c.identityRepo = identityrepository.NewPostgreSQLIdentityRepository(db)
		default:
			c.initErrors["identityRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["identityRepo"]; exists {
		return nil, err
	}
	return c.identityRepo, nil
}

// RoleRepository returns the role repository for the configured database
// driver.
func (c *Container) RoleRepository() (usecase.RoleRepository, error) {
	c.roleRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["roleRepo"] = err
			return
		}
		switch c.config.DBDriver {
		case "mysql":
			c.roleRepo = identityrepository.NewMySQLRoleRepository(db)
		case "postgres":
			c.roleRepo = identityrepository.NewPostgreSQLRoleRepository(db)
		default:
			c.initErrors["roleRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["roleRepo"]; exists {
		return nil, err
	}
	return c.roleRepo, nil
}

// PermissionRepository returns the permission repository for the configured
// database driver.
func (c *Container) PermissionRepository() (usecase.PermissionRepository, error) {
	c.permissionRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["permissionRepo"] = err
			return
		}
		switch c.config.DBDriver {
		case "mysql":
			c.permissionRepo = identityrepository.NewMySQLPermissionRepository(db)
		case "postgres":
			c.permissionRepo = identityrepository.NewPostgreSQLPermissionRepository(db)
		default:
			c.initErrors["permissionRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["permissionRepo"]; exists {
		return nil, err
	}
	return c.permissionRepo, nil
}

// ActivityRepository returns the activity-log repository for the configured
// database driver.
func (c *Container) ActivityRepository() (usecase.ActivityRepository, error) {
	c.activityRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["activityRepo"] = err
			return
		}
		switch c.config.DBDriver {
		case "mysql":
			c.activityRepo = activityrepository.NewMySQLActivityRepository(db)
		case "postgres":
			c.activityRepo = activityrepository.NewPostgreSQLActivityRepository(db)
		default:
			c.initErrors["activityRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["activityRepo"]; exists {
		return nil, err
	}
	return c.activityRepo, nil
}
