package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/patrolbook/patrolbook/internal/auth/domain"
	"github.com/patrolbook/patrolbook/internal/auth/http/dto"
	"github.com/patrolbook/patrolbook/internal/auth/usecase"
	"github.com/patrolbook/patrolbook/internal/httputil"
)

// AuthHandler exposes the auth endpoints.
type AuthHandler struct {
	loginUseCase         usecase.LoginUseCase
	passwordUseCase      usecase.PasswordUseCase
	permissionResolver   usecase.PermissionResolver
	identityRepository   usecase.IdentityRepository
	permissionRepository usecase.PermissionRepository
	logger               *slog.Logger
}

// NewAuthHandler creates the handler.
func NewAuthHandler(
	loginUseCase usecase.LoginUseCase,
	passwordUseCase usecase.PasswordUseCase,
	permissionResolver usecase.PermissionResolver,
	identityRepository usecase.IdentityRepository,
	permissionRepository usecase.PermissionRepository,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:         loginUseCase,
		passwordUseCase:      passwordUseCase,
		permissionResolver:   permissionResolver,
		identityRepository:   identityRepository,
		permissionRepository: permissionRepository,
		logger:               logger,
	}
}

// LoginHandler handles POST /v1/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := request.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	output, err := h.loginUseCase.Login(c.Request.Context(), request.Username, request.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewLoginResponse(output))
}

// ChangePasswordHandler handles POST /v1/password. Requires RequireAuth.
func (h *AuthHandler) ChangePasswordHandler(c *gin.Context) {
	claims, ok := GetClaims(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var request dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := request.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	identityID, err := uuid.Parse(claims.SubjectID)
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrMalformedToken, h.logger)
		return
	}

	if err := h.passwordUseCase.Change(c.Request.Context(), identityID, request.CurrentPassword, request.NewPassword); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// MeHandler handles GET /v1/me. Requires RequireAuth.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	claims, ok := GetClaims(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	identityID, err := uuid.Parse(claims.SubjectID)
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrMalformedToken, h.logger)
		return
	}

	identity, err := h.identityRepository.GetByID(c.Request.Context(), identityID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	permissions, err := h.permissionResolver.EffectivePermissions(c.Request.Context(), identity)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewMeResponse(identity, permissions))
}

// ListPermissionsHandler handles GET /v1/admin/permissions. Requires
// RequireAuth and RequireRole(admin).
func (h *AuthHandler) ListPermissionsHandler(c *gin.Context) {
	permissions, err := h.permissionRepository.FindAll(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, gin.H{"permissions": dto.NewPermissionListResponse(permissions)})
}
