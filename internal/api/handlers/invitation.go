package handlers

import (
	"net/http"

	"splint-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvitationHandler handles HTTP requests for email invitations. Creation and
// listing are organization-scoped; preview and accept are public, keyed by the
// invitation token.
type InvitationHandler struct {
	service service.InvitationServiceInterface
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(service service.InvitationServiceInterface) *InvitationHandler {
	return &InvitationHandler{service: service}
}

// Create handles POST /api/v1/invitations
// @Summary Invite a person by email
// @Description Issue a single-use invitation token. The token appears in this response only.
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body service.CreateInvitationRequest true "Email and role"
// @Success 201 {object} service.CreatedInvitationResponse "Created invitation with one-time token"
// @Failure 400 {object} map[string]interface{} "Invalid request body or role"
// @Failure 409 {object} map[string]interface{} "A user with this email already exists"
// @Security BearerAuth
// @Router /api/v1/invitations [post]
func (h *InvitationHandler) Create(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}

	var req service.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Create(orgID, getUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/v1/invitations
// @Summary List the organization's invitations
// @Tags invitations
// @Produce json
// @Success 200 {array} service.InvitationResponse "Invitations, tokens never included"
// @Security BearerAuth
// @Router /api/v1/invitations [get]
func (h *InvitationHandler) List(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}

	resp, err := h.service.List(orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/v1/invitations/:id
// @Summary Revoke an invitation
// @Tags invitations
// @Produce json
// @Param id path string true "Invitation ID"
// @Success 200 {object} map[string]interface{} "Revoked"
// @Failure 404 {object} map[string]interface{} "Invitation not found"
// @Security BearerAuth
// @Router /api/v1/invitations/{id} [delete]
func (h *InvitationHandler) Delete(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(orgID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invitation revoked successfully"})
}

// Preview handles GET /api/invitations/:token
// @Summary Preview an invitation
// @Description Public view shown on the accept page: organization, email and role
// @Tags invitations
// @Produce json
// @Param token path string true "Invitation token"
// @Success 200 {object} service.InvitationPreviewResponse "Invitation preview"
// @Failure 404 {object} map[string]interface{} "Unknown token"
// @Failure 410 {object} map[string]interface{} "Invitation expired or already used"
// @Router /api/invitations/{token} [get]
func (h *InvitationHandler) Preview(c *gin.Context) {
	resp, err := h.service.Preview(c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Accept handles POST /api/invitations/:token/accept
// @Summary Accept an invitation
// @Description Complete signup through an invitation token, creating the user account and burning the token
// @Tags invitations
// @Accept json
// @Produce json
// @Param token path string true "Invitation token"
// @Param signup body service.AcceptInvitationRequest true "Name and password"
// @Success 201 {object} service.UserResponse "Created user"
// @Failure 404 {object} map[string]interface{} "Unknown token"
// @Failure 409 {object} map[string]interface{} "A user with this email already exists"
// @Failure 410 {object} map[string]interface{} "Invitation expired or already used"
// @Router /api/invitations/{token}/accept [post]
func (h *InvitationHandler) Accept(c *gin.Context) {
	var req service.AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Accept(c.Param("token"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
