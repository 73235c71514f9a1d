package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/student-service/internal/auth"
	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
	"github.com/SAP-F-2025/student-service/internal/services"
	"github.com/SAP-F-2025/student-service/internal/utils"
)

// HandlerManager wires every HTTP handler to the service layer and owns
// route registration.
type HandlerManager struct {
	authHandler         *AuthHandler
	studentHandler      *StudentHandler
	departmentHandler   *DepartmentHandler
	subjectHandler      *SubjectHandler
	resultHandler       *ResultHandler
	feeHandler          *FeeHandler
	clearanceHandler    *ClearanceHandler
	announcementHandler *AnnouncementHandler
	dashboardHandler    *DashboardHandler

	authMiddleware *JWTAuthMiddleware
	logger         utils.Logger
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	jwtManager *auth.Manager,
	userRepo repositories.UserRepository,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		authHandler:         NewAuthHandler(serviceManager.Auth(), logger),
		studentHandler:      NewStudentHandler(serviceManager.Student(), serviceManager.Academic(), logger),
		departmentHandler:   NewDepartmentHandler(serviceManager.Department(), logger),
		subjectHandler:      NewSubjectHandler(serviceManager.Subject(), logger),
		resultHandler:       NewResultHandler(serviceManager.Result(), logger),
		feeHandler:          NewFeeHandler(serviceManager.Fee(), logger),
		clearanceHandler:    NewClearanceHandler(serviceManager.Clearance(), logger),
		announcementHandler: NewAnnouncementHandler(serviceManager.Announcement(), logger),
		dashboardHandler:    NewDashboardHandler(serviceManager.Dashboard(), logger),
		authMiddleware:      NewJWTAuthMiddleware(jwtManager, userRepo, logger),
		logger:              logger,
	}
}

// SetupRoutes registers every route on the router.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	SetupMiddleware(router, hm.logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "student-service"})
	})

	v1 := router.Group("/api/v1")

	// Public endpoints
	v1.POST("/signup", hm.authHandler.Signup)
	v1.POST("/login", hm.authHandler.Login)

	authed := v1.Group("")
	authed.Use(hm.authMiddleware.AuthMiddleware())
	{
		adminOnly := hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin)
		teacherOrAdmin := hm.authMiddleware.RequireRoleMiddleware(models.RoleTeacher, models.RoleAdmin)

		// Profile
		authed.GET("/profile/me", hm.authHandler.GetProfile)
		authed.PUT("/profile/password", hm.authHandler.ChangePassword)

		// Students
		authed.POST("/students", adminOnly, hm.studentHandler.CreateStudent)
		authed.GET("/students", hm.studentHandler.ListStudents)
		authed.GET("/students/:id", hm.studentHandler.GetStudent)
		authed.GET("/students/:id/gpa/:semester", hm.studentHandler.GetGPA)
		authed.GET("/students/:id/cgpa", hm.studentHandler.GetCGPA)

		// Departments
		authed.POST("/departments", adminOnly, hm.departmentHandler.CreateDepartment)
		authed.GET("/departments", hm.departmentHandler.ListDepartments)
		authed.GET("/departments/:id", hm.departmentHandler.GetDepartment)

		// Subjects and teachers
		authed.POST("/subjects", adminOnly, hm.subjectHandler.CreateSubject)
		authed.GET("/subjects", hm.subjectHandler.ListSubjects)
		authed.GET("/subjects/:id", hm.subjectHandler.GetSubject)
		authed.GET("/teachers", hm.subjectHandler.ListTeachers)

		// Results
		authed.POST("/results", teacherOrAdmin, hm.resultHandler.CreateResult)
		authed.GET("/results", hm.resultHandler.ListResults)
		authed.GET("/results/student/:id", hm.resultHandler.ListStudentResults)
		authed.GET("/results/export", teacherOrAdmin, hm.resultHandler.ExportResults)

		// Fees
		authed.POST("/fees", adminOnly, hm.feeHandler.CreateFee)
		authed.PUT("/fees/:id", adminOnly, hm.feeHandler.RecordPayment)
		authed.GET("/fees/student/:id", hm.feeHandler.ListStudentFees)

		// Clearance
		authed.POST("/clearance", adminOnly, hm.clearanceHandler.UpsertClearance)
		authed.GET("/clearance/student/:id", hm.clearanceHandler.GetStudentClearance)

		// Announcements
		authed.POST("/announcements", adminOnly, hm.announcementHandler.CreateAnnouncement)
		authed.GET("/announcements", hm.announcementHandler.ListAnnouncements)
		authed.DELETE("/announcements/:id", adminOnly, hm.announcementHandler.DeleteAnnouncement)

		// Dashboard
		authed.GET("/dashboard", hm.dashboardHandler.GetSummary)
	}
}
