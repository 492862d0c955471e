package handlers

import (
	"io"
	"net/http"
	"strings"

	"splint-factory-backend/internal/database/models"
	"splint-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PrintJobHandler handles HTTP requests for the 3D-print queue. Browser
// clients queue and review prints; the printer client pulls ready jobs and
// reports lifecycle events over the API-key endpoints.
type PrintJobHandler struct {
	service service.PrintJobServiceInterface
}

// NewPrintJobHandler creates a new print job handler
func NewPrintJobHandler(service service.PrintJobServiceInterface) *PrintJobHandler {
	return &PrintJobHandler{service: service}
}

// uploadGcodeRequest attaches a toolpath stored in external blob storage
type uploadGcodeRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// Create handles POST /api/v1/print-jobs
// @Summary Queue a print
// @Description Queue the physical printing of a completed geometry job's model
// @Tags print-jobs
// @Accept json
// @Produce json
// @Param job body service.CreatePrintJobRequest true "Geometry job reference"
// @Success 201 {object} service.PrintJobResponse "Queued print"
// @Failure 404 {object} map[string]interface{} "Geometry job not found"
// @Failure 409 {object} map[string]interface{} "Geometry job has not completed"
// @Security BearerAuth
// @Router /api/v1/print-jobs [post]
func (h *PrintJobHandler) Create(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}

	var req service.CreatePrintJobRequest
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

// List handles GET /api/v1/print-jobs
// @Summary List the organization's print jobs
// @Tags print-jobs
// @Produce json
// @Param status query string false "Filter by derived status" Enums(ready, printing, successful, failed, accepted, rejected)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PrintJobListResponse "Paginated print jobs"
// @Security BearerAuth
// @Router /api/v1/print-jobs [get]
func (h *PrintJobHandler) List(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)
	status := models.PrintStatus(c.Query("status"))

	resp, err := h.service.List(orgID, status, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetByID handles GET /api/v1/print-jobs/:id
// @Summary Get a print job
// @Tags print-jobs
// @Produce json
// @Param id path string true "Print job ID"
// @Success 200 {object} service.PrintJobResponse "Print job with derived status"
// @Failure 404 {object} map[string]interface{} "Print job not found"
// @Security BearerAuth
// @Router /api/v1/print-jobs/{id} [get]
func (h *PrintJobHandler) GetByID(c *gin.Context) {
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

// UploadGcode handles PUT /api/v1/print-jobs/:id/gcode and
// POST /api/printer/print-jobs/:id/gcode
// @Summary Attach a sliced toolpath
// @Description Upload the gcode to print. Send the raw file, or a JSON body with a blob-storage URL.
// @Tags print-jobs
// @Accept octet-stream
// @Produce json
// @Param id path string true "Print job ID"
// @Success 200 {object} map[string]interface{} "Attached"
// @Failure 400 {object} map[string]interface{} "Empty upload"
// @Failure 404 {object} map[string]interface{} "Print job not found"
// @Security BearerAuth
// @Router /api/v1/print-jobs/{id}/gcode [put]
// @Router /api/printer/print-jobs/{id}/gcode [post]
func (h *PrintJobHandler) UploadGcode(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var data []byte
	var url string
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req uploadGcodeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
		url = req.URL
	} else {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload", "details": err.Error()})
			return
		}
		data = body
	}

	if err := h.service.UploadGcode(orgID, id, data, url); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gcode attached successfully"})
}

// Delete handles DELETE /api/v1/print-jobs/:id
// @Summary Delete a print-queue entry
// @Tags print-jobs
// @Produce json
// @Param id path string true "Print job ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "Print job not found"
// @Security BearerAuth
// @Router /api/v1/print-jobs/{id} [delete]
func (h *PrintJobHandler) Delete(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"message": "Print job deleted successfully"})
}

// Decide handles POST /api/v1/print-jobs/:id/decision
// @Summary Record an accept/reject decision
// @Description Record the operator's verdict on a successfully completed print
// @Tags print-jobs
// @Accept json
// @Produce json
// @Param id path string true "Print job ID"
// @Param decision body service.DecideRequest true "accepted or rejected"
// @Success 200 {object} service.PrintJobResponse "Updated print job"
// @Failure 409 {object} map[string]interface{} "Print not completed, failed, or already decided"
// @Security BearerAuth
// @Router /api/v1/print-jobs/{id}/decision [post]
func (h *PrintJobHandler) Decide(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Decide(orgID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListReady handles GET /api/printer/print-jobs
// @Summary List prints awaiting pickup
// @Description The printer client's work list: queued prints that have not been started, oldest first
// @Tags printer
// @Produce json
// @Success 200 {array} service.PrintJobResponse "Ready prints"
// @Failure 401 {object} map[string]interface{} "Invalid API key"
// @Security ApiKeyAuth
// @Router /api/printer/print-jobs [get]
func (h *PrintJobHandler) ListReady(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}

	resp, err := h.service.ListReady(orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DownloadGcode handles GET /api/v1/print-jobs/:id/gcode and
// GET /api/printer/print-jobs/:id/gcode
// @Summary Download a print's toolpath
// @Description Stream the gcode, or redirect when it lives in external blob storage
// @Tags print-jobs
// @Produce octet-stream
// @Param id path string true "Print job ID"
// @Success 200 {file} binary "Gcode file"
// @Failure 404 {object} map[string]interface{} "Print job or gcode not found"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /api/v1/print-jobs/{id}/gcode [get]
// @Router /api/printer/print-jobs/{id}/gcode [get]
func (h *PrintJobHandler) DownloadGcode(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	artifact, err := h.service.DownloadGcode(orgID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(artifact.Data) == 0 && artifact.URL != "" {
		c.Redirect(http.StatusFound, artifact.URL)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	c.Data(http.StatusOK, "application/octet-stream", artifact.Data)
}

// Start handles POST /api/printer/print-jobs/:id/start
// @Summary Mark a print as started
// @Tags printer
// @Accept json
// @Produce json
// @Param id path string true "Print job ID"
// @Param request body service.StartPrintRequest false "Printer name"
// @Success 200 {object} service.PrintJobResponse "Updated print job"
// @Failure 409 {object} map[string]interface{} "Print already started"
// @Security ApiKeyAuth
// @Router /api/printer/print-jobs/{id}/start [post]
func (h *PrintJobHandler) Start(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	req := service.StartPrintRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	resp, err := h.service.Start(orgID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ReportProgress handles POST /api/printer/print-jobs/:id/progress
// @Summary Report print progress
// @Description Push a 0-100 progress value. Reports are last-write-wins.
// @Tags printer
// @Accept json
// @Produce json
// @Param id path string true "Print job ID"
// @Param progress body service.ReportProgressRequest true "Progress percentage"
// @Success 200 {object} service.PrintJobResponse "Updated print job"
// @Failure 400 {object} map[string]interface{} "Progress out of range"
// @Failure 409 {object} map[string]interface{} "Print not started or already completed"
// @Security ApiKeyAuth
// @Router /api/printer/print-jobs/{id}/progress [post]
func (h *PrintJobHandler) ReportProgress(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.ReportProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.ReportProgress(orgID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Complete handles POST /api/printer/print-jobs/:id/complete
// @Summary Mark a print as completed
// @Description Record the physical outcome. A successful completion forces progress to 100.
// @Tags printer
// @Accept json
// @Produce json
// @Param id path string true "Print job ID"
// @Param outcome body service.CompletePrintRequest true "Whether the print succeeded"
// @Success 200 {object} service.PrintJobResponse "Updated print job"
// @Failure 409 {object} map[string]interface{} "Print not started or already completed"
// @Security ApiKeyAuth
// @Router /api/printer/print-jobs/{id}/complete [post]
func (h *PrintJobHandler) Complete(c *gin.Context) {
	orgID, ok := requireOrganization(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CompletePrintRequest
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
