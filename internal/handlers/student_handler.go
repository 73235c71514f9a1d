package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/services"
	"github.com/SAP-F-2025/student-service/internal/utils"
)

type StudentHandler struct {
	BaseHandler
	service  services.StudentService
	academic services.AcademicService
}

func NewStudentHandler(service services.StudentService, academic services.AcademicService, logger utils.Logger) *StudentHandler {
	return &StudentHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		academic:    academic,
	}
}

// ===== STUDENT ENDPOINTS =====

// CreateStudent creates a student record (admin only)
// @Summary Create student
// @Tags students
// @Accept json
// @Produce json
// @Success 200 {object} models.Student
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /students [post]
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	h.LogRequest(c, "Creating student")

	var student models.Student
	if !h.bindJSON(c, &student) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), &student)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, created)
}

// ListStudents returns all students
// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {array} models.Student
// @Router /students [get]
func (h *StudentHandler) ListStudents(c *gin.Context) {
	h.LogRequest(c, "Listing students")

	students, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}

// GetStudent returns one student by ID
// @Summary Get student
// @Tags students
// @Produce json
// @Success 200 {object} models.Student
// @Failure 404 {object} ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (h *StudentHandler) GetStudent(c *gin.Context) {
	h.LogRequest(c, "Getting student")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	student, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// ===== ACADEMIC ENDPOINTS =====

// GetGPA computes the GPA for a student in one semester
// @Summary Get semester GPA
// @Tags students
// @Produce json
// @Success 200 {object} map[string]float64
// @Failure 404 {object} ErrorResponse "No results for this semester"
// @Router /students/{id}/gpa/{semester} [get]
func (h *StudentHandler) GetGPA(c *gin.Context) {
	h.LogRequest(c, "Computing GPA")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	semester, err := strconv.Atoi(c.Param("semester"))
	if err != nil || semester < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid semester parameter"})
		return
	}

	gpa, err := h.academic.GPA(c.Request.Context(), id, semester)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"GPA": gpa})
}

// GetCGPA computes the cumulative GPA for a student
// @Summary Get CGPA
// @Tags students
// @Produce json
// @Success 200 {object} map[string]float64
// @Failure 404 {object} ErrorResponse "No results found"
// @Router /students/{id}/cgpa [get]
func (h *StudentHandler) GetCGPA(c *gin.Context) {
	h.LogRequest(c, "Computing CGPA")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	cgpa, err := h.academic.CGPA(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"CGPA": cgpa})
}
