package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/placementcell/portal/internal/app/models"
	"github.com/placementcell/portal/internal/app/services"
	"github.com/placementcell/portal/internal/pkg/apperrors"
	"github.com/placementcell/portal/internal/pkg/auth"
)

// identityKey is the gin context key the resolved caller lives under.
const identityKey = "identity"

// AuthMiddleware resolves bearer tokens into caller identities.
type AuthMiddleware struct {
	authService *services.AuthService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireAuth rejects the request unless a valid token resolves to a live
// account. The identity is attached to the context for handlers downstream.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, apperrors.ErrUnauthenticated)
			return
		}

		identity, err := m.authService.VerifyToken(c.Request.Context(), token)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// OptionalAuth attaches an identity when a valid token is presented but never
// rejects the request. Invalid or expired tokens leave the caller anonymous.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err == nil {
			if identity, err := m.authService.VerifyToken(c.Request.Context(), token); err == nil {
				c.Set(identityKey, identity)
			}
		}
		c.Next()
	}
}

// RequireRoles allows only callers whose role tag appears in the list.
// Students carry the literal tag "student"; admins carry their specific role.
// It must run after RequireAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			HandleAPIError(c, apperrors.ErrUnauthenticated)
			return
		}

		tag := identity.RoleTag()
		for _, role := range roles {
			if role == tag {
				c.Next()
				return
			}
		}

		HandleAPIError(c, apperrors.ErrPermissionDenied)
	}
}

// RequireAdmin is shorthand for the full admin role list.
func RequireAdmin() gin.HandlerFunc {
	roles := make([]string, 0, len(models.AdminRoles))
	for _, r := range models.AdminRoles {
		roles = append(roles, string(r))
	}
	return RequireRoles(roles...)
}

// GetIdentity returns the caller identity attached by the auth middleware.
func GetIdentity(c *gin.Context) (*models.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*models.Identity)
	return identity, ok
}

// GetStudent returns the caller when it is a student identity.
func GetStudent(c *gin.Context) (*models.Student, bool) {
	identity, ok := GetIdentity(c)
	if !ok || identity.Kind != models.SubjectStudent || identity.Student == nil {
		return nil, false
	}
	return identity.Student, true
}
