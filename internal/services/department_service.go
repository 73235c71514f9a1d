package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
	"github.com/SAP-F-2025/student-service/internal/validator"
)

type departmentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewDepartmentService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) DepartmentService {
	return &departmentService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *departmentService) Create(ctx context.Context, department *models.Department) (*models.Department, error) {
	if errs := s.validator.Validate(department); errs != nil {
		return nil, errs
	}

	if err := s.repo.Department().Create(ctx, department); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, NewConflictError("department with this name already exists")
		}
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	s.logger.Info("Department created", "department_id", department.ID, "name", department.Name)

	return department, nil
}

func (s *departmentService) Get(ctx context.Context, id uint) (*models.Department, error) {
	department, err := s.repo.Department().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("department")
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return department, nil
}

func (s *departmentService) List(ctx context.Context) ([]*models.Department, error) {
	return s.repo.Department().List(ctx)
}
