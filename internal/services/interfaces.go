package services

import (
	"context"

	"github.com/SAP-F-2025/student-service/internal/models"
)

// ===== RESPONSE DTOs =====

type DashboardFeeSplit struct {
	Paid   int64 `json:"paid"`
	Unpaid int64 `json:"unpaid"`
}

type DashboardClearanceSplit struct {
	ClearedStudents    int64 `json:"cleared_students"`
	NotClearedStudents int64 `json:"not_cleared_students"`
}

type DashboardSummaryResponse struct {
	TotalStudents    int64                   `json:"total_students"`
	TotalDepartments int64                   `json:"total_departments"`
	TotalSubjects    int64                   `json:"total_subjects"`
	Fees             DashboardFeeSplit       `json:"fees"`
	Clearance        DashboardClearanceSplit `json:"clearance"`
	AverageGPA       float64                 `json:"average_gpa"`
}

// ===== SERVICE INTERFACES =====

type AuthService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error)
	ChangePassword(ctx context.Context, userID uint, req *models.PasswordChangeRequest) error
}

type StudentService interface {
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	Get(ctx context.Context, id uint) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
}

type DepartmentService interface {
	Create(ctx context.Context, department *models.Department) (*models.Department, error)
	Get(ctx context.Context, id uint) (*models.Department, error)
	List(ctx context.Context) ([]*models.Department, error)
}

type SubjectService interface {
	Create(ctx context.Context, subject *models.Subject) (*models.Subject, error)
	Get(ctx context.Context, id uint) (*models.Subject, error)
	List(ctx context.Context) ([]*models.Subject, error)
	// ListTeachers aggregates the distinct teachers found on subject rows.
	ListTeachers(ctx context.Context) ([]*models.TeacherSummary, error)
}

type ResultService interface {
	Create(ctx context.Context, result *models.Result) (*models.Result, error)
	List(ctx context.Context) ([]*models.Result, error)
	ListByStudent(ctx context.Context, studentID uint) ([]*models.Result, error)
	// Export renders every result row into an xlsx workbook.
	Export(ctx context.Context) ([]byte, error)
}

type AcademicService interface {
	// GPA over one semester's results; NotFoundError when the student has
	// no results in that semester.
	GPA(ctx context.Context, studentID uint, semester int) (float64, error)
	// CGPA over all of the student's results; NotFoundError when empty.
	CGPA(ctx context.Context, studentID uint) (float64, error)
}

type FeeService interface {
	Create(ctx context.Context, req *models.FeeCreateRequest) (*models.Fee, error)
	// RecordPayment adds a payment delta and re-derives due/status inside a
	// single transaction.
	RecordPayment(ctx context.Context, feeID uint, req *models.FeePaymentRequest) (*models.Fee, error)
	ListByStudent(ctx context.Context, studentID uint) ([]*models.Fee, error)
}

type ClearanceService interface {
	Upsert(ctx context.Context, req *models.ClearanceUpsertRequest) (*models.ClearanceResponse, error)
	GetByStudent(ctx context.Context, studentID uint) (*models.ClearanceResponse, error)
}

type AnnouncementService interface {
	Create(ctx context.Context, req *models.AnnouncementCreateRequest, postedBy string) (*models.Announcement, error)
	List(ctx context.Context) ([]*models.Announcement, error)
	Delete(ctx context.Context, id uint) error
}

type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummaryResponse, error)
}

// ServiceManager provides access to all services.
type ServiceManager interface {
	Auth() AuthService
	Student() StudentService
	Department() DepartmentService
	Subject() SubjectService
	Result() ResultService
	Academic() AcademicService
	Fee() FeeService
	Clearance() ClearanceService
	Announcement() AnnouncementService
	Dashboard() DashboardService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
