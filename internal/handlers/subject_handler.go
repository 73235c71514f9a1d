package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/services"
	"github.com/SAP-F-2025/student-service/internal/utils"
)

type SubjectHandler struct {
	BaseHandler
	service services.SubjectService
}

func NewSubjectHandler(service services.SubjectService, logger utils.Logger) *SubjectHandler {
	return &SubjectHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateSubject creates a subject (admin only)
// @Summary Create subject
// @Tags subjects
// @Accept json
// @Produce json
// @Success 200 {object} models.Subject
// @Failure 400 {object} ErrorResponse
// @Router /subjects [post]
func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	h.LogRequest(c, "Creating subject")

	var subject models.Subject
	if !h.bindJSON(c, &subject) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), &subject)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, created)
}

// ListSubjects returns all subjects
// @Summary List subjects
// @Tags subjects
// @Produce json
// @Success 200 {array} models.Subject
// @Router /subjects [get]
func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	h.LogRequest(c, "Listing subjects")

	subjects, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subjects)
}

// GetSubject returns one subject by ID
// @Summary Get subject
// @Tags subjects
// @Produce json
// @Success 200 {object} models.Subject
// @Failure 404 {object} ErrorResponse "Subject not found"
// @Router /subjects/{id} [get]
func (h *SubjectHandler) GetSubject(c *gin.Context) {
	h.LogRequest(c, "Getting subject")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	subject, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subject)
}

// ListTeachers returns the distinct teachers across all subjects
// @Summary List teachers
// @Tags subjects
// @Produce json
// @Success 200 {array} models.TeacherSummary
// @Router /teachers [get]
func (h *SubjectHandler) ListTeachers(c *gin.Context) {
	h.LogRequest(c, "Listing teachers")

	teachers, err := h.service.ListTeachers(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, teachers)
}
