package handlers

import (
	"net/http"

	"splint-factory-backend/internal/database/models"
	apperrors "splint-factory-backend/internal/errors"
	"splint-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// canAccessUser reports whether the caller may reach the given user record.
// System administrators reach everyone; other callers reach themselves and
// the members of their own organization. Callers answer 404 on a mismatch
// so foreign user IDs stay unguessable.
func canAccessUser(c *gin.Context, user *service.UserResponse) bool {
	if isSystemAdmin(c) {
		return true
	}
	if callerID := getUserID(c); callerID != nil && *callerID == user.ID {
		return true
	}
	if user.OrganizationID == nil {
		return false
	}
	callerOrg, ok := getOrganizationID(c)
	return ok && callerOrg == *user.OrganizationID
}

// Create handles POST /api/v1/users
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User to create"
// @Success 201 {object} service.UserResponse "Created user"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "SYSTEM_ADMIN role reserved for system administrators"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Email already taken"
// @Security BearerAuth
// @Router /api/v1/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if req.Role == models.RoleSystemAdmin && !isSystemAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only system administrators may assign the SYSTEM_ADMIN role"})
		return
	}
	if req.OrganizationID != nil && !canAccessOrganization(c, *req.OrganizationID) {
		respondError(c, apperrors.ErrOrganizationNotFound)
		return
	}

	resp, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetAll handles GET /api/v1/users
// @Summary List all users
// @Description List users across organizations. Restricted to system administrators.
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.UserListResponse "Paginated users"
// @Security BearerAuth
// @Router /api/v1/users [get]
func (h *UserHandler) GetAll(c *gin.Context) {
	page, pageSize := parsePagination(c)

	resp, err := h.service.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetByOrganization handles GET /api/v1/organizations/:id/users
// @Summary List an organization's users
// @Tags users
// @Produce json
// @Param id path string true "Organization ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.UserListResponse "Paginated users"
// @Security BearerAuth
// @Router /api/v1/organizations/{id}/users [get]
func (h *UserHandler) GetByOrganization(c *gin.Context) {
	orgID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canAccessOrganization(c, orgID) {
		respondError(c, apperrors.ErrOrganizationNotFound)
		return
	}
	page, pageSize := parsePagination(c)

	resp, err := h.service.GetByOrganization(orgID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetByID handles GET /api/v1/users/:id
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} service.UserResponse "User"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !canAccessUser(c, resp) {
		respondError(c, apperrors.ErrUserNotFound)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/v1/users/me
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse "Profile"
// @Security BearerAuth
// @Router /api/v1/users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID := getUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.service.GetByID(*userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/v1/users/:id
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body service.UpdateUserRequest true "Fields to update"
// @Success 200 {object} service.UserResponse "Updated user"
// @Failure 403 {object} map[string]interface{} "SYSTEM_ADMIN role reserved for system administrators"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /api/v1/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !canAccessUser(c, existing) {
		respondError(c, apperrors.ErrUserNotFound)
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if req.Role == models.RoleSystemAdmin && !isSystemAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only system administrators may assign the SYSTEM_ADMIN role"})
		return
	}

	resp, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ChangePassword handles PUT /api/v1/users/:id/password
// @Summary Change a user's password
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body service.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]interface{} "Password changed"
// @Failure 401 {object} map[string]interface{} "Current password is wrong"
// @Failure 403 {object} map[string]interface{} "Not the account owner"
// @Security BearerAuth
// @Router /api/v1/users/{id}/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// The current password is verified against the stored hash, so only the
	// account owner can complete the change anyway.
	callerID := getUserID(c)
	if callerID == nil || *callerID != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only change your own password"})
		return
	}

	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.ChangePassword(id, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// Delete handles DELETE /api/v1/users/:id
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !canAccessUser(c, existing) {
		respondError(c, apperrors.ErrUserNotFound)
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
