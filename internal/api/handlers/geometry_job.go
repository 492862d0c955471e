package handlers

import (
	"errors"
	"net/http"

	"splint-factory-backend/internal/database/models"
	apperrors "splint-factory-backend/internal/errors"
	"splint-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GeometryJobHandler handles HTTP requests for the geometry-processing queue.
// Browser clients enqueue and browse jobs; the geometry worker claims and
// completes them over the API-key endpoints.
type GeometryJobHandler struct {
	service service.GeometryJobServiceInterface
}

// NewGeometryJobHandler creates a new geometry job handler
func NewGeometryJobHandler(service service.GeometryJobServiceInterface) *GeometryJobHandler {
	return &GeometryJobHandler{service: service}
}

// Create handles POST /api/v1/geometry-jobs
// @Summary Enqueue a geometry job
// @Description Validate parameters against the template schema and queue the job for the worker
// @Tags geometry-jobs
// @Accept json
// @Produce json
// @Param job body service.CreateGeometryJobRequest true "Template reference and parameter values"
// @Success 201 {object} service.GeometryJobResponse "Queued job"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Template not found"
// @Security BearerAuth
// @Router /api/v1/geometry-jobs [post]
func (h *GeometryJobHandler) Create(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}

	var req service.CreateGeometryJobRequest
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

// List handles GET /api/v1/geometry-jobs
// @Summary List the organization's geometry jobs
// @Tags geometry-jobs
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, processing, completed, failed)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.GeometryJobListResponse "Paginated jobs"
// @Security BearerAuth
// @Router /api/v1/geometry-jobs [get]
func (h *GeometryJobHandler) List(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)
	status := models.GeometryJobStatus(c.Query("status"))

	resp, err := h.service.List(orgID, status, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetByID handles GET /api/v1/geometry-jobs/:id
// @Summary Get a geometry job
// @Tags geometry-jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} service.GeometryJobResponse "Job"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Security BearerAuth
// @Router /api/v1/geometry-jobs/{id} [get]
func (h *GeometryJobHandler) GetByID(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetByID(orgID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DownloadModel handles GET /api/v1/geometry-jobs/:id/model
// @Summary Download a job's produced model
// @Description Stream the 3MF artifact, or redirect when it lives in external blob storage
// @Tags geometry-jobs
// @Produce octet-stream
// @Param id path string true "Job ID"
// @Success 200 {file} binary "Model file"
// @Failure 404 {object} map[string]interface{} "Job or model not found"
// @Security BearerAuth
// @Router /api/v1/geometry-jobs/{id}/model [get]
func (h *GeometryJobHandler) DownloadModel(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	artifact, err := h.service.DownloadModel(orgID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(artifact.Data) == 0 && artifact.URL != "" {
		c.Redirect(http.StatusFound, artifact.URL)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// Delete handles DELETE /api/v1/geometry-jobs/:id
// @Summary Delete a geometry job
// @Description Remove a job from the queue. Jobs currently being processed cannot be removed.
// @Tags geometry-jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Failure 409 {object} map[string]interface{} "Job is being processed"
// @Security BearerAuth
// @Router /api/v1/geometry-jobs/{id} [delete]
func (h *GeometryJobHandler) Delete(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"message": "Geometry job deleted successfully"})
}

// ClaimNext handles POST /api/worker/geometry-jobs/claim-next
// @Summary Claim the next pending geometry job
// @Description Atomically hand the oldest pending job to the worker, including the template schema. Answers 204 when the queue is empty.
// @Tags worker
// @Produce json
// @Success 200 {object} service.ClaimedGeometryJobResponse "Claimed job"
// @Success 204 "No pending jobs"
// @Failure 401 {object} map[string]interface{} "Invalid API key"
// @Security ApiKeyAuth
// @Router /api/worker/geometry-jobs/claim-next [post]
func (h *GeometryJobHandler) ClaimNext(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}

	resp, err := h.service.ClaimNext(orgID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoPendingJobs) {
			c.Status(http.StatusNoContent)
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Complete handles POST /api/worker/geometry-jobs/:id/complete
// @Summary Report a claimed job's result
// @Description Record success with the produced model (inline base64 or blob URL), or failure with an error message
// @Tags worker
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param result body service.CompleteGeometryJobRequest true "Completion report"
// @Success 200 {object} service.GeometryJobResponse "Updated job"
// @Failure 400 {object} map[string]interface{} "Invalid completion report"
// @Failure 409 {object} map[string]interface{} "Job was not claimed"
// @Security ApiKeyAuth
// @Router /api/worker/geometry-jobs/{id}/complete [post]
func (h *GeometryJobHandler) Complete(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CompleteGeometryJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Complete(orgID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
