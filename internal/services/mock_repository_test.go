package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
)

// baseMockRepository satisfies repositories.Repository with nil sub-repos;
// tests embed it and override only the accessors they exercise.
type baseMockRepository struct{}

func (baseMockRepository) User() repositories.UserRepository                 { return nil }
func (baseMockRepository) Student() repositories.StudentRepository           { return nil }
func (baseMockRepository) Department() repositories.DepartmentRepository     { return nil }
func (baseMockRepository) Subject() repositories.SubjectRepository           { return nil }
func (baseMockRepository) Result() repositories.ResultRepository             { return nil }
func (baseMockRepository) Fee() repositories.FeeRepository                   { return nil }
func (baseMockRepository) Clearance() repositories.ClearanceRepository       { return nil }
func (baseMockRepository) Announcement() repositories.AnnouncementRepository { return nil }
func (baseMockRepository) Dashboard() repositories.DashboardRepository       { return nil }
func (baseMockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return nil
}
func (baseMockRepository) Ping(ctx context.Context) error { return nil }
func (baseMockRepository) Close() error                   { return nil }

// ===== CATALOG MOCKS =====

type mockStudentRepo struct {
	students map[uint]*models.Student
	nextID   uint
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[uint]*models.Student), nextID: 1}
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	student.ID = m.nextID
	m.nextID++
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (m *mockStudentRepo) List(ctx context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(m.students))
	for _, s := range m.students {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockStudentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.students)), nil
}

type mockDepartmentRepo struct {
	departments map[uint]*models.Department
	nextID      uint
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{departments: make(map[uint]*models.Department), nextID: 1}
}

func (m *mockDepartmentRepo) Create(ctx context.Context, department *models.Department) error {
	department.ID = m.nextID
	m.nextID++
	m.departments[department.ID] = department
	return nil
}

func (m *mockDepartmentRepo) GetByID(ctx context.Context, id uint) (*models.Department, error) {
	d, ok := m.departments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (m *mockDepartmentRepo) List(ctx context.Context) ([]*models.Department, error) {
	out := make([]*models.Department, 0, len(m.departments))
	for _, d := range m.departments {
		out = append(out, d)
	}
	return out, nil
}

func (m *mockDepartmentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.departments)), nil
}

type mockSubjectRepo struct {
	subjects []*models.Subject
}

func (m *mockSubjectRepo) Create(ctx context.Context, subject *models.Subject) error {
	subject.ID = uint(len(m.subjects) + 1)
	m.subjects = append(m.subjects, subject)
	return nil
}

func (m *mockSubjectRepo) GetByID(ctx context.Context, id uint) (*models.Subject, error) {
	for _, s := range m.subjects {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) List(ctx context.Context) ([]*models.Subject, error) {
	return m.subjects, nil
}

func (m *mockSubjectRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.subjects)), nil
}

// ===== RESULT MOCK =====

type mockResultRepo struct {
	results []*models.Result
	// keyed by semester; the join to subjects is stubbed out
	bySemester map[int][]*models.Result
}

func (m *mockResultRepo) Create(ctx context.Context, result *models.Result) error {
	result.ID = uint(len(m.results) + 1)
	m.results = append(m.results, result)
	return nil
}

func (m *mockResultRepo) List(ctx context.Context) ([]*models.Result, error) {
	return m.results, nil
}

func (m *mockResultRepo) ListByStudent(ctx context.Context, studentID uint) ([]*models.Result, error) {
	var out []*models.Result
	for _, r := range m.results {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockResultRepo) ListByStudentAndSemester(ctx context.Context, studentID uint, semester int) ([]*models.Result, error) {
	var out []*models.Result
	for _, r := range m.bySemester[semester] {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ===== FEE MOCK =====

type mockFeeRepo struct {
	fees   map[uint]*models.Fee
	nextID uint

	// read paths are counted so tests can assert the payment cycle uses
	// the locked read
	getByIDCalls   int
	forUpdateCalls int
}

func newMockFeeRepo() *mockFeeRepo {
	return &mockFeeRepo{fees: make(map[uint]*models.Fee), nextID: 1}
}

func (m *mockFeeRepo) Create(ctx context.Context, fee *models.Fee) error {
	fee.ID = m.nextID
	m.nextID++
	m.fees[fee.ID] = fee
	return nil
}

func (m *mockFeeRepo) GetByID(ctx context.Context, id uint) (*models.Fee, error) {
	m.getByIDCalls++
	return m.get(id)
}

func (m *mockFeeRepo) GetByIDForUpdate(ctx context.Context, id uint) (*models.Fee, error) {
	m.forUpdateCalls++
	return m.get(id)
}

func (m *mockFeeRepo) get(id uint) (*models.Fee, error) {
	fee, ok := m.fees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *fee
	return &copied, nil
}

func (m *mockFeeRepo) ListByStudent(ctx context.Context, studentID uint) ([]*models.Fee, error) {
	var out []*models.Fee
	for _, f := range m.fees {
		if f.StudentID == studentID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *mockFeeRepo) Update(ctx context.Context, fee *models.Fee) error {
	if _, ok := m.fees[fee.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *fee
	m.fees[fee.ID] = &copied
	return nil
}

// ===== CLEARANCE MOCK =====

type mockClearanceRepo struct {
	byStudent map[uint]*models.Clearance
	nextID    uint
	getCalls  int
}

func newMockClearanceRepo() *mockClearanceRepo {
	return &mockClearanceRepo{byStudent: make(map[uint]*models.Clearance), nextID: 1}
}

// Upsert mirrors INSERT ... ON CONFLICT (student_id) DO UPDATE: the existing
// row keeps its ID, new flags replace old ones.
func (m *mockClearanceRepo) Upsert(ctx context.Context, clearance *models.Clearance) error {
	if existing, ok := m.byStudent[clearance.StudentID]; ok {
		clearance.ID = existing.ID
	} else {
		clearance.ID = m.nextID
		m.nextID++
	}
	copied := *clearance
	m.byStudent[clearance.StudentID] = &copied
	return nil
}

func (m *mockClearanceRepo) GetByStudent(ctx context.Context, studentID uint) (*models.Clearance, error) {
	m.getCalls++
	c, ok := m.byStudent[studentID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *c
	return &copied, nil
}

// ===== ANNOUNCEMENT MOCK =====

type mockAnnouncementRepo struct {
	announcements map[uint]*models.Announcement
	nextID        uint
}

func newMockAnnouncementRepo() *mockAnnouncementRepo {
	return &mockAnnouncementRepo{announcements: make(map[uint]*models.Announcement), nextID: 1}
}

func (m *mockAnnouncementRepo) Create(ctx context.Context, announcement *models.Announcement) error {
	announcement.ID = m.nextID
	m.nextID++
	m.announcements[announcement.ID] = announcement
	return nil
}

func (m *mockAnnouncementRepo) GetByID(ctx context.Context, id uint) (*models.Announcement, error) {
	a, ok := m.announcements[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (m *mockAnnouncementRepo) List(ctx context.Context) ([]*models.Announcement, error) {
	out := make([]*models.Announcement, 0, len(m.announcements))
	for _, a := range m.announcements {
		out = append(out, a)
	}
	return out, nil
}

func (m *mockAnnouncementRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.announcements[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.announcements, id)
	return nil
}

// ===== DASHBOARD MOCK =====

type mockDashboardRepo struct {
	students     int64
	departments  int64
	subjects     int64
	feesPaid     int64
	feesUnpaid   int64
	cleared      int64
	resultTotals []int
}

func (m *mockDashboardRepo) CountStudents(ctx context.Context) (int64, error) { return m.students, nil }
func (m *mockDashboardRepo) CountDepartments(ctx context.Context) (int64, error) {
	return m.departments, nil
}
func (m *mockDashboardRepo) CountSubjects(ctx context.Context) (int64, error) { return m.subjects, nil }
func (m *mockDashboardRepo) CountFeesPaid(ctx context.Context) (int64, error) { return m.feesPaid, nil }
func (m *mockDashboardRepo) CountFeesUnpaid(ctx context.Context) (int64, error) {
	return m.feesUnpaid, nil
}
func (m *mockDashboardRepo) CountFullyClearedStudents(ctx context.Context) (int64, error) {
	return m.cleared, nil
}
func (m *mockDashboardRepo) AllResultTotals(ctx context.Context) ([]int, error) {
	return m.resultTotals, nil
}
