package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"splint-factory-backend/internal/database/models"
	apperrors "splint-factory-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError translates service errors into JSON error responses
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err) || isRequestValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvitationExpired) || errors.Is(err, apperrors.ErrInvitationUsed):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidProgress) || errors.Is(err, apperrors.ErrInvalidScope):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case isStateConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": err.Error()})
	}
}

// isRequestValidation reports whether the error came from struct validation
// of a request body
func isRequestValidation(err error) bool {
	return strings.Contains(err.Error(), "validation failed")
}

// isStateConflict reports whether the error is a lifecycle-state violation
func isStateConflict(err error) bool {
	for _, conflict := range []error{
		apperrors.ErrGeometryJobNotCompleted,
		apperrors.ErrGeometryJobInProgress,
		apperrors.ErrPrintNotStarted,
		apperrors.ErrPrintAlreadyStarted,
		apperrors.ErrPrintAlreadyCompleted,
		apperrors.ErrPrintNotCompleted,
		apperrors.ErrDecisionNotAllowed,
		apperrors.ErrDecisionAlreadyMade,
	} {
		if errors.Is(err, conflict) {
			return true
		}
	}
	return false
}

// parseIDParam parses a UUID path parameter, answering 400 on failure
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter", "details": err.Error()})
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads page/page_size query parameters with defaults
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// requireOrganization extracts the caller's organization, answering 403 when
// the caller carries none (a system administrator outside any organization).
func requireOrganization(c *gin.Context) (uuid.UUID, bool) {
	orgID, ok := getOrganizationID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "An organization context is required"})
		return uuid.Nil, false
	}
	return orgID, true
}

// getOrganizationID reads the organization set by the auth middleware,
// for both JWT and API-key callers
func getOrganizationID(c *gin.Context) (uuid.UUID, bool) {
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

// isSystemAdmin reports whether the caller holds the SYSTEM_ADMIN role
func isSystemAdmin(c *gin.Context) bool {
	return models.UserRole(c.GetString("role")) == models.RoleSystemAdmin
}

// canAccessOrganization reports whether the caller may reach the given
// organization. System administrators reach all of them, everyone else only
// their own. Callers answer 404 rather than 403 on a mismatch so foreign
// organization IDs stay unguessable.
func canAccessOrganization(c *gin.Context, orgID uuid.UUID) bool {
	if isSystemAdmin(c) {
		return true
	}
	callerOrg, ok := getOrganizationID(c)
	return ok && callerOrg == orgID
}

// getUserID reads the authenticated user's ID, when a JWT caller
func getUserID(c *gin.Context) *uuid.UUID {
	idStr := c.GetString("user_id")
	if idStr == "" {
		return nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil
	}
	return &id
}
