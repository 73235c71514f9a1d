package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/services"
	"github.com/SAP-F-2025/student-service/internal/utils"
)

type DepartmentHandler struct {
	BaseHandler
	service services.DepartmentService
}

func NewDepartmentHandler(service services.DepartmentService, logger utils.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateDepartment creates a department (admin only)
// @Summary Create department
// @Tags departments
// @Accept json
// @Produce json
// @Success 200 {object} models.Department
// @Failure 400 {object} ErrorResponse
// @Router /departments [post]
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	h.LogRequest(c, "Creating department")

	var department models.Department
	if !h.bindJSON(c, &department) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), &department)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, created)
}

// ListDepartments returns all departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {array} models.Department
// @Router /departments [get]
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	h.LogRequest(c, "Listing departments")

	departments, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, departments)
}

// GetDepartment returns one department by ID
// @Summary Get department
// @Tags departments
// @Produce json
// @Success 200 {object} models.Department
// @Failure 404 {object} ErrorResponse "Department not found"
// @Router /departments/{id} [get]
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	h.LogRequest(c, "Getting department")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	department, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, department)
}
