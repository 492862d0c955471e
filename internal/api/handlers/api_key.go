package handlers

import (
	"net/http"

	"splint-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ApiKeyHandler handles HTTP requests for machine-client API keys
type ApiKeyHandler struct {
	service service.ApiKeyServiceInterface
}

// NewApiKeyHandler creates a new API key handler
func NewApiKeyHandler(service service.ApiKeyServiceInterface) *ApiKeyHandler {
	return &ApiKeyHandler{service: service}
}

// Create handles POST /api/v1/api-keys
// @Summary Create an API key
// @Description Issue an API key for the caller's organization. The plaintext key appears in this response only.
// @Tags api-keys
// @Accept json
// @Produce json
// @Param key body service.CreateApiKeyRequest true "Key name and scopes"
// @Success 201 {object} service.CreatedApiKeyResponse "Created key with one-time plaintext"
// @Failure 400 {object} map[string]interface{} "Invalid request body or scope"
// @Security BearerAuth
// @Router /api/v1/api-keys [post]
func (h *ApiKeyHandler) Create(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}

	var req service.CreateApiKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Create(orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/v1/api-keys
// @Summary List the organization's API keys
// @Tags api-keys
// @Produce json
// @Success 200 {array} service.ApiKeyResponse "API keys, plaintext never included"
// @Security BearerAuth
// @Router /api/v1/api-keys [get]
func (h *ApiKeyHandler) List(c *gin.Context) {
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

// Delete handles DELETE /api/v1/api-keys/:id
// @Summary Revoke an API key
// @Tags api-keys
// @Produce json
// @Param id path string true "API key ID"
// @Success 200 {object} map[string]interface{} "Revoked"
// @Failure 404 {object} map[string]interface{} "API key not found"
// @Security BearerAuth
// @Router /api/v1/api-keys/{id} [delete]
func (h *ApiKeyHandler) Delete(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"message": "API key revoked successfully"})
}
