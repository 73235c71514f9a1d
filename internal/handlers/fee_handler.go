package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/services"
	"github.com/SAP-F-2025/student-service/internal/utils"
)

type FeeHandler struct {
	BaseHandler
	service services.FeeService
}

func NewFeeHandler(service services.FeeService, logger utils.Logger) *FeeHandler {
	return &FeeHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateFee opens a fee record for a student (admin only)
// @Summary Create fee record
// @Tags fees
// @Accept json
// @Produce json
// @Success 200 {object} models.Fee
// @Failure 400 {object} ErrorResponse
// @Router /fees [post]
func (h *FeeHandler) CreateFee(c *gin.Context) {
	h.LogRequest(c, "Creating fee record")

	var req models.FeeCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	fee, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, fee)
}

// RecordPayment applies a payment to an existing fee record (admin only)
// @Summary Record fee payment
// @Tags fees
// @Accept json
// @Produce json
// @Success 200 {object} models.Fee
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Fee record not found"
// @Router /fees/{id} [put]
func (h *FeeHandler) RecordPayment(c *gin.Context) {
	h.LogRequest(c, "Recording fee payment")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.FeePaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	fee, err := h.service.RecordPayment(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, fee)
}

// ListStudentFees returns a student's fee records
// @Summary List fees for student
// @Tags fees
// @Produce json
// @Success 200 {array} models.Fee
// @Router /fees/student/{id} [get]
func (h *FeeHandler) ListStudentFees(c *gin.Context) {
	h.LogRequest(c, "Listing student fees")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	fees, err := h.service.ListByStudent(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, fees)
}
