package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
	"github.com/SAP-F-2025/student-service/internal/validator"
)

type studentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewStudentService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) StudentService {
	return &studentService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *studentService) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	if errs := s.validator.Validate(student); errs != nil {
		return nil, errs
	}

	if _, err := s.repo.Department().GetByID(ctx, student.DepartmentID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("department")
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	if err := s.repo.Student().Create(ctx, student); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, NewConflictError("student with this email or roll number already exists")
		}
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	s.logger.Info("Student created", "student_id", student.ID, "roll_no", student.RollNo)

	return student, nil
}

func (s *studentService) Get(ctx context.Context, id uint) (*models.Student, error) {
	student, err := s.repo.Student().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("student")
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return student, nil
}

func (s *studentService) List(ctx context.Context) ([]*models.Student, error) {
	return s.repo.Student().List(ctx)
}
