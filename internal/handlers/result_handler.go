package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/services"
	"github.com/SAP-F-2025/student-service/internal/utils"
)

type ResultHandler struct {
	BaseHandler
	service services.ResultService
}

func NewResultHandler(service services.ResultService, logger utils.Logger) *ResultHandler {
	return &ResultHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateResult records a student's marks for one subject (teacher or admin)
// @Summary Create result
// @Tags results
// @Accept json
// @Produce json
// @Success 200 {object} models.Result
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Student or subject not found"
// @Router /results [post]
func (h *ResultHandler) CreateResult(c *gin.Context) {
	h.LogRequest(c, "Creating result")

	var result models.Result
	if !h.bindJSON(c, &result) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), &result)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, created)
}

// ListResults returns every result row
// @Summary List results
// @Tags results
// @Produce json
// @Success 200 {array} models.Result
// @Router /results [get]
func (h *ResultHandler) ListResults(c *gin.Context) {
	h.LogRequest(c, "Listing results")

	results, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// ListStudentResults returns a single student's results
// @Summary List results for student
// @Tags results
// @Produce json
// @Success 200 {array} models.Result
// @Router /results/student/{id} [get]
func (h *ResultHandler) ListStudentResults(c *gin.Context) {
	h.LogRequest(c, "Listing student results")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	results, err := h.service.ListByStudent(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// ExportResults streams all results as an xlsx workbook (teacher or admin)
// @Summary Export results
// @Tags results
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /results/export [get]
func (h *ResultHandler) ExportResults(c *gin.Context) {
	h.LogRequest(c, "Exporting results")

	data, err := h.service.Export(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("results_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
