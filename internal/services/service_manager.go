package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SAP-F-2025/student-service/internal/auth"
	"github.com/SAP-F-2025/student-service/internal/cache"
	"github.com/SAP-F-2025/student-service/internal/events"
	"github.com/SAP-F-2025/student-service/internal/repositories"
	"github.com/SAP-F-2025/student-service/internal/validator"
)

// serviceManager implements ServiceManager
type serviceManager struct {
	// Dependencies
	repo           repositories.Repository
	logger         *slog.Logger
	validator      *validator.Validator
	jwtManager     *auth.Manager
	eventPublisher events.EventPublisher
	statsCache     *cache.CacheHelper

	// Service instances
	authService         AuthService
	studentService      StudentService
	departmentService   DepartmentService
	subjectService      SubjectService
	resultService       ResultService
	academicService     AcademicService
	feeService          FeeService
	clearanceService    ClearanceService
	announcementService AnnouncementService
	dashboardService    DashboardService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a service manager with all dependencies.
func NewServiceManager(
	repo repositories.Repository,
	logger *slog.Logger,
	validator *validator.Validator,
	jwtManager *auth.Manager,
	eventPublisher events.EventPublisher,
	statsCache *cache.CacheHelper,
) ServiceManager {
	return &serviceManager{
		repo:           repo,
		logger:         logger,
		validator:      validator,
		jwtManager:     jwtManager,
		eventPublisher: eventPublisher,
		statsCache:     statsCache,
	}
}

func (m *serviceManager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := m.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository not reachable: %w", err)
	}

	m.authService = NewAuthService(m.repo, m.jwtManager, m.logger, m.validator)
	m.studentService = NewStudentService(m.repo, m.logger, m.validator)
	m.departmentService = NewDepartmentService(m.repo, m.logger, m.validator)
	m.subjectService = NewSubjectService(m.repo, m.logger, m.validator)
	m.resultService = NewResultService(m.repo, m.logger, m.validator)
	m.academicService = NewAcademicService(m.repo, m.logger)
	m.feeService = NewFeeService(m.repo, m.logger, m.validator)
	m.clearanceService = NewClearanceService(m.repo, m.logger, m.validator)
	m.announcementService = NewAnnouncementService(m.repo, m.eventPublisher, m.logger, m.validator)
	m.dashboardService = NewDashboardService(m.repo, m.logger, m.statsCache)

	m.initialized = true
	m.logger.Info("Services initialized")

	return nil
}

func (m *serviceManager) Shutdown(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shutdown {
		return nil
	}
	m.shutdown = true

	if err := m.eventPublisher.Close(); err != nil {
		return fmt.Errorf("failed to close event publisher: %w", err)
	}

	m.logger.Info("Services shut down")
	return nil
}

func (m *serviceManager) Auth() AuthService                 { return m.authService }
func (m *serviceManager) Student() StudentService           { return m.studentService }
func (m *serviceManager) Department() DepartmentService     { return m.departmentService }
func (m *serviceManager) Subject() SubjectService           { return m.subjectService }
func (m *serviceManager) Result() ResultService             { return m.resultService }
func (m *serviceManager) Academic() AcademicService         { return m.academicService }
func (m *serviceManager) Fee() FeeService                   { return m.feeService }
func (m *serviceManager) Clearance() ClearanceService       { return m.clearanceService }
func (m *serviceManager) Announcement() AnnouncementService { return m.announcementService }
func (m *serviceManager) Dashboard() DashboardService       { return m.dashboardService }
