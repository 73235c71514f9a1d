package repositories

import (
	"context"

	"github.com/SAP-F-2025/student-service/internal/models"
)

// ===== USER =====

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

// ===== CATALOG =====

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uint) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	Count(ctx context.Context) (int64, error)
}

type DepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id uint) (*models.Department, error)
	List(ctx context.Context) ([]*models.Department, error)
	Count(ctx context.Context) (int64, error)
}

type SubjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, id uint) (*models.Subject, error)
	List(ctx context.Context) ([]*models.Subject, error)
	Count(ctx context.Context) (int64, error)
}

// ===== RESULTS =====

type ResultRepository interface {
	Create(ctx context.Context, result *models.Result) error
	List(ctx context.Context) ([]*models.Result, error)
	ListByStudent(ctx context.Context, studentID uint) ([]*models.Result, error)
	// ListByStudentAndSemester joins subjects; the semester lives on the
	// subject row, not on the result.
	ListByStudentAndSemester(ctx context.Context, studentID uint, semester int) ([]*models.Result, error)
}

// ===== FEES =====

type FeeRepository interface {
	Create(ctx context.Context, fee *models.Fee) error
	GetByID(ctx context.Context, id uint) (*models.Fee, error)
	// GetByIDForUpdate takes a row lock; only valid inside WithTransaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*models.Fee, error)
	ListByStudent(ctx context.Context, studentID uint) ([]*models.Fee, error)
	Update(ctx context.Context, fee *models.Fee) error
}

// ===== CLEARANCE =====

type ClearanceRepository interface {
	// Upsert inserts or replaces the one row per student in a single
	// statement, so concurrent first-time upserts cannot race the unique
	// index into an error.
	Upsert(ctx context.Context, clearance *models.Clearance) error
	GetByStudent(ctx context.Context, studentID uint) (*models.Clearance, error)
}

// ===== ANNOUNCEMENTS =====

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	GetByID(ctx context.Context, id uint) (*models.Announcement, error)
	// List returns announcements newest first.
	List(ctx context.Context) ([]*models.Announcement, error)
	Delete(ctx context.Context, id uint) error
}

// ===== DASHBOARD =====

type DashboardRepository interface {
	CountStudents(ctx context.Context) (int64, error)
	CountDepartments(ctx context.Context) (int64, error)
	CountSubjects(ctx context.Context) (int64, error)
	CountFeesPaid(ctx context.Context) (int64, error)
	CountFeesUnpaid(ctx context.Context) (int64, error)
	CountFullyClearedStudents(ctx context.Context) (int64, error)
	// AllResultTotals returns total_marks for every result row in one pass.
	AllResultTotals(ctx context.Context) ([]int, error)
}
