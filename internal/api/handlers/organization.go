package handlers

import (
	"net/http"

	apperrors "splint-factory-backend/internal/errors"
	"splint-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// Create handles POST /api/v1/organizations
// @Summary Create an organization
// @Description Register a new organization. Restricted to system administrators.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization to create"
// @Success 201 {object} service.OrganizationResponse "Created organization"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Name already taken"
// @Security BearerAuth
// @Router /api/v1/organizations [post]
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetAll handles GET /api/v1/organizations
// @Summary List organizations
// @Tags organizations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.OrganizationListResponse "Paginated organizations"
// @Security BearerAuth
// @Router /api/v1/organizations [get]
func (h *OrganizationHandler) GetAll(c *gin.Context) {
	page, pageSize := parsePagination(c)

	resp, err := h.service.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetByID handles GET /api/v1/organizations/:id
// @Summary Get an organization
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} service.OrganizationResponse "Organization"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /api/v1/organizations/{id} [get]
func (h *OrganizationHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canAccessOrganization(c, id) {
		respondError(c, apperrors.ErrOrganizationNotFound)
		return
	}

	resp, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/v1/organizations/:id
// @Summary Update an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param organization body service.UpdateOrganizationRequest true "Fields to update"
// @Success 200 {object} service.OrganizationResponse "Updated organization"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /api/v1/organizations/{id} [put]
func (h *OrganizationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canAccessOrganization(c, id) {
		respondError(c, apperrors.ErrOrganizationNotFound)
		return
	}

	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/v1/organizations/:id
// @Summary Delete an organization
// @Description Remove an organization and everything it owns. Restricted to system administrators.
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /api/v1/organizations/{id} [delete]
func (h *OrganizationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Organization deleted successfully"})
}
