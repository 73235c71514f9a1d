package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/services"
	"github.com/SAP-F-2025/student-service/internal/utils"
)

type ClearanceHandler struct {
	BaseHandler
	service services.ClearanceService
}

func NewClearanceHandler(service services.ClearanceService, logger utils.Logger) *ClearanceHandler {
	return &ClearanceHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// UpsertClearance creates or updates a student's clearance flags (admin only)
// @Summary Upsert clearance
// @Tags clearance
// @Accept json
// @Produce json
// @Success 200 {object} models.ClearanceResponse
// @Failure 400 {object} ErrorResponse
// @Router /clearance [post]
func (h *ClearanceHandler) UpsertClearance(c *gin.Context) {
	h.LogRequest(c, "Upserting clearance")

	var req models.ClearanceUpsertRequest
	if !h.bindJSON(c, &req) {
		return
	}

	clearance, err := h.service.Upsert(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, clearance)
}

// GetStudentClearance returns a student's clearance status
// @Summary Get clearance for student
// @Tags clearance
// @Produce json
// @Success 200 {object} models.ClearanceResponse
// @Failure 404 {object} ErrorResponse "Clearance record not found"
// @Router /clearance/student/{id} [get]
func (h *ClearanceHandler) GetStudentClearance(c *gin.Context) {
	h.LogRequest(c, "Getting student clearance")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	clearance, err := h.service.GetByStudent(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, clearance)
}
