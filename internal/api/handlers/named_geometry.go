package handlers

import (
	"net/http"

	"splint-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NamedGeometryHandler handles HTTP requests for geometry templates
type NamedGeometryHandler struct {
	service service.NamedGeometryServiceInterface
}

// NewNamedGeometryHandler creates a new geometry template handler
func NewNamedGeometryHandler(service service.NamedGeometryServiceInterface) *NamedGeometryHandler {
	return &NamedGeometryHandler{service: service}
}

// Create handles POST /api/v1/geometries
// @Summary Create a geometry template
// @Description Register a named geometry with its parameter schema. Restricted to system administrators.
// @Tags geometries
// @Accept json
// @Produce json
// @Param geometry body service.CreateNamedGeometryRequest true "Template to create"
// @Success 201 {object} service.NamedGeometryResponse "Created template"
// @Failure 400 {object} map[string]interface{} "Invalid request body or schema"
// @Failure 409 {object} map[string]interface{} "Name already taken"
// @Security BearerAuth
// @Router /api/v1/geometries [post]
func (h *NamedGeometryHandler) Create(c *gin.Context) {
	var req service.CreateNamedGeometryRequest
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

// GetAll handles GET /api/v1/geometries
// @Summary List geometry templates
// @Tags geometries
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.NamedGeometryListResponse "Paginated templates"
// @Security BearerAuth
// @Router /api/v1/geometries [get]
func (h *NamedGeometryHandler) GetAll(c *gin.Context) {
	page, pageSize := parsePagination(c)

	resp, err := h.service.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetByID handles GET /api/v1/geometries/:id
// @Summary Get a geometry template
// @Tags geometries
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} service.NamedGeometryResponse "Template with parameter schema"
// @Failure 404 {object} map[string]interface{} "Template not found"
// @Security BearerAuth
// @Router /api/v1/geometries/{id} [get]
func (h *NamedGeometryHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/v1/geometries/:id
// @Summary Update a geometry template
// @Description Update a template. Schema changes bump the template version.
// @Tags geometries
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param geometry body service.UpdateNamedGeometryRequest true "Fields to update"
// @Success 200 {object} service.NamedGeometryResponse "Updated template"
// @Failure 404 {object} map[string]interface{} "Template not found"
// @Security BearerAuth
// @Router /api/v1/geometries/{id} [put]
func (h *NamedGeometryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateNamedGeometryRequest
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

// Delete handles DELETE /api/v1/geometries/:id
// @Summary Delete a geometry template
// @Tags geometries
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "Template not found"
// @Security BearerAuth
// @Router /api/v1/geometries/{id} [delete]
func (h *NamedGeometryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Geometry template deleted successfully"})
}
