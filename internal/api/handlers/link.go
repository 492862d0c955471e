package handlers

import (
	"net/http"

	"splint-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LinkHandler handles HTTP requests for tracked shortlinks
type LinkHandler struct {
	service service.LinkServiceInterface
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(service service.LinkServiceInterface) *LinkHandler {
	return &LinkHandler{service: service}
}

// Create handles POST /api/v1/links
// @Summary Create a shortlink
// @Description Register a tracked shortlink. An omitted slug is generated.
// @Tags links
// @Accept json
// @Produce json
// @Param link body service.CreateLinkRequest true "Slug and target URL"
// @Success 201 {object} service.LinkResponse "Created link"
// @Failure 409 {object} map[string]interface{} "Slug already taken"
// @Security BearerAuth
// @Router /api/v1/links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req service.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Create(getUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetAll handles GET /api/v1/links
// @Summary List shortlinks
// @Tags links
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.LinkListResponse "Paginated links with visit counts"
// @Security BearerAuth
// @Router /api/v1/links [get]
func (h *LinkHandler) GetAll(c *gin.Context) {
	page, pageSize := parsePagination(c)

	resp, err := h.service.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/v1/links/:id
// @Summary Delete a shortlink
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "Link not found"
// @Security BearerAuth
// @Router /api/v1/links/{id} [delete]
func (h *LinkHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Link deleted successfully"})
}

// Resolve handles GET /l/:slug
// @Summary Follow a shortlink
// @Description Record the visit and redirect to the target URL
// @Tags links
// @Param slug path string true "Link slug"
// @Success 302 "Redirect to target"
// @Failure 404 {object} map[string]interface{} "Unknown slug"
// @Router /l/{slug} [get]
func (h *LinkHandler) Resolve(c *gin.Context) {
	target, err := h.service.Resolve(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, target)
}
