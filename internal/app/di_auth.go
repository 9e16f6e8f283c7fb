package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	authhttp "github.com/patrolbook/patrolbook/internal/auth/http"
	"github.com/patrolbook/patrolbook/internal/auth/service"
	"github.com/patrolbook/patrolbook/internal/auth/usecase"
	"github.com/patrolbook/patrolbook/internal/http"
	identitydomain "github.com/patrolbook/patrolbook/internal/identity/domain"
	"github.com/patrolbook/patrolbook/internal/metrics"
)

// PasswordHasher returns the bcrypt credential hasher.
func (c *Container) PasswordHasher() (service.PasswordHasher, error) {
	c.passwordHasherInit.Do(func() {
		hasher, err := service.NewBcryptPasswordHasher(c.config.BcryptCost)
		if err != nil {
			c.initErrors["passwordHasher"] = fmt.Errorf("failed to create password hasher: %w", err)
			return
		}
		c.passwordHasher = hasher
	})
	if err, exists := c.initErrors["passwordHasher"]; exists {
		return nil, err
	}
	return c.passwordHasher, nil
}

// SimilarityGuard returns the password similarity guard.
func (c *Container) SimilarityGuard() service.SimilarityGuard {
	c.similarityGuardInit.Do(func() {
		c.similarityGuard = service.NewSimilarityGuard()
	})
	return c.similarityGuard
}

// TokenService returns the session token service. The signing secret is
// resolved once, at first access, so a missing or undecryptable secret stops
// startup.
func (c *Container) TokenService(ctx context.Context) (service.TokenService, error) {
	c.tokenServiceInit.Do(func() {
		secret, err := service.ResolveSigningSecret(ctx, c.config)
		if err != nil {
			c.initErrors["tokenService"] = fmt.Errorf("failed to resolve signing secret: %w", err)
			return
		}
		tokenService, err := service.NewJWTTokenService(secret, c.config.TokenExpiration)
		if err != nil {
			c.initErrors["tokenService"] = fmt.Errorf("failed to create token service: %w", err)
			return
		}
		c.tokenService = tokenService
	})
	if err, exists := c.initErrors["tokenService"]; exists {
		return nil, err
	}
	return c.tokenService, nil
}

// LoginUseCase returns the login flow wrapped with business metrics.
func (c *Container) LoginUseCase(ctx context.Context) (usecase.LoginUseCase, error) {
	c.loginUseCaseInit.Do(func() {
		identityRepo, err := c.IdentityRepository()
		if err != nil {
			c.initErrors["loginUseCase"] = err
			return
		}
		activityRepo, err := c.ActivityRepository()
		if err != nil {
			c.initErrors["loginUseCase"] = err
			return
		}
		hasher, err := c.PasswordHasher()
		if err != nil {
			c.initErrors["loginUseCase"] = err
			return
		}
		tokenService, err := c.TokenService(ctx)
		if err != nil {
			c.initErrors["loginUseCase"] = err
			return
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["loginUseCase"] = err
			return
		}

		login := usecase.NewLoginUseCase(identityRepo, activityRepo, hasher, tokenService, c.Logger())
		c.loginUseCase = usecase.NewLoginUseCaseWithMetrics(login, businessMetrics)
	})
	if err, exists := c.initErrors["loginUseCase"]; exists {
		return nil, err
	}
	return c.loginUseCase, nil
}

// PasswordUseCase returns the password-change flow wrapped with business
// metrics.
func (c *Container) PasswordUseCase() (usecase.PasswordUseCase, error) {
	c.passwordUseCaseInit.Do(func() {
		identityRepo, err := c.IdentityRepository()
		if err != nil {
			c.initErrors["passwordUseCase"] = err
			return
		}
		activityRepo, err := c.ActivityRepository()
		if err != nil {
			c.initErrors["passwordUseCase"] = err
			return
		}
		hasher, err := c.PasswordHasher()
		if err != nil {
			c.initErrors["passwordUseCase"] = err
			return
		}
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["passwordUseCase"] = err
			return
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["passwordUseCase"] = err
			return
		}

		password := usecase.NewPasswordUseCase(identityRepo, activityRepo, hasher, c.SimilarityGuard(), txManager)
		c.passwordUseCase = usecase.NewPasswordUseCaseWithMetrics(password, businessMetrics)
	})
	if err, exists := c.initErrors["passwordUseCase"]; exists {
		return nil, err
	}
	return c.passwordUseCase, nil
}

// PermissionResolver returns the effective-permission resolver.
func (c *Container) PermissionResolver() (usecase.PermissionResolver, error) {
	c.permissionResolverInit.Do(func() {
		roleRepo, err := c.RoleRepository()
		if err != nil {
			c.initErrors["permissionResolver"] = err
			return
		}
		permissionRepo, err := c.PermissionRepository()
		if err != nil {
			c.initErrors["permissionResolver"] = err
			return
		}
		c.permissionResolver = usecase.NewPermissionResolver(roleRepo, permissionRepo)
	})
	if err, exists := c.initErrors["permissionResolver"]; exists {
		return nil, err
	}
	return c.permissionResolver, nil
}

// LoginRateLimiter returns the per-IP login rate limiter, or nil when
// disabled.
func (c *Container) LoginRateLimiter() *authhttp.LoginRateLimiter {
	c.loginRateLimiterInit.Do(func() {
		if !c.config.RateLimitLoginEnabled {
			return
		}
		c.loginRateLimiter = authhttp.NewLoginRateLimiter(
			c.config.RateLimitLoginRequestsPerSec,
			c.config.RateLimitLoginBurst,
		)
	})
	return c.loginRateLimiter
}

// HTTPServer returns the fully wired API server.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	c.httpServerInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		loginUseCase, err := c.LoginUseCase(ctx)
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		passwordUseCase, err := c.PasswordUseCase()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		permissionResolver, err := c.PermissionResolver()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		identityRepo, err := c.IdentityRepository()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		permissionRepo, err := c.PermissionRepository()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		tokenService, err := c.TokenService(ctx)
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}

		var httpMetricsMiddleware gin.HandlerFunc
		if provider, err := c.MetricsProvider(); err == nil && provider != nil {
			httpMetricsMiddleware = metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace)
		}

		handler := authhttp.NewAuthHandler(
			loginUseCase,
			passwordUseCase,
			permissionResolver,
			identityRepo,
			permissionRepo,
			c.Logger(),
		)

		c.httpServer = http.NewServer(
			c.config,
			c.Logger(),
			db,
			handler,
			authhttp.RequireAuth(tokenService, c.Logger()),
			authhttp.RequireRole(identitydomain.RoleAdmin, c.Logger()),
			c.LoginRateLimiter(),
			httpMetricsMiddleware,
		)
	})
	if err, exists := c.initErrors["httpServer"]; exists {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus scrape server, or nil when metrics are
// disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		if provider == nil {
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if err, exists := c.initErrors["metricsServer"]; exists {
		return nil, err
	}
	return c.metricsServer, nil
}
