package auth

import (
	"net/http"
	"strings"

	"splint-factory-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ApiKeyAuthenticator validates raw API keys for machine clients
type ApiKeyAuthenticator interface {
	Authenticate(rawKey string) (*models.ApiKey, error)
}

// AuthMiddleware provides JWT and API-key authentication middleware
type AuthMiddleware struct {
	service *AuthService
	apiKeys ApiKeyAuthenticator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, apiKeys ApiKeyAuthenticator) *AuthMiddleware {
	return &AuthMiddleware{service: service, apiKeys: apiKeys}
}

// RequireAuth validates JWT tokens and sets user context. The token is read
// from the Authorization header, falling back to the `token` query parameter
// because EventSource cannot set request headers.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
				c.Abort()
				return
			}
		} else {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization is required"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("organization_id", claims.OrganizationID)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// RequireRole restricts an endpoint to the given roles. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		roleStr, ok := role.(string)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid role context"})
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if models.UserRole(roleStr) == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		c.Abort()
	}
}

// RequireAPIKey authenticates the X-API-Key header and enforces a scope.
// Used by the geometry worker and printer client endpoints.
func (m *AuthMiddleware) RequireAPIKey(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawKey := c.GetHeader("X-API-Key")
		if rawKey == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "X-API-Key header is required"})
			c.Abort()
			return
		}

		key, err := m.apiKeys.Authenticate(rawKey)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			c.Abort()
			return
		}

		if !key.HasScope(scope) {
			c.JSON(http.StatusForbidden, gin.H{"error": "API key does not grant the required scope"})
			c.Abort()
			return
		}

		c.Set("api_key_id", key.ID.String())
		c.Set("api_key_name", key.Name)
		c.Set("api_key_organization_id", key.OrganizationID.String())

		c.Next()
	}
}

// GetUserID extracts the authenticated user's ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	idStr := c.GetString("user_id")
	if idStr == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetUserEmail extracts the authenticated user's email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email := c.GetString("email")
	return email, email != ""
}

// GetUserRole extracts the authenticated user's role from context
func GetUserRole(c *gin.Context) (models.UserRole, bool) {
	role := c.GetString("role")
	if role == "" {
		return "", false
	}
	return models.UserRole(role), true
}

// GetOrganizationID extracts the caller's organization from context. For JWT
// callers this is the user's organization; for API-key callers the key's.
func GetOrganizationID(c *gin.Context) (uuid.UUID, bool) {
	idStr := c.GetString("organization_id")
	if idStr == "" {
		idStr = c.GetString("api_key_organization_id")
	}
	if idStr == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// IsSystemAdmin reports whether the caller holds the SYSTEM_ADMIN role
func IsSystemAdmin(c *gin.Context) bool {
	role, ok := GetUserRole(c)
	return ok && role == models.RoleSystemAdmin
}
