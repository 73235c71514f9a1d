package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
	"github.com/SAP-F-2025/student-service/internal/validator"
)

type subjectService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewSubjectService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) SubjectService {
	return &subjectService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *subjectService) Create(ctx context.Context, subject *models.Subject) (*models.Subject, error) {
	if errs := s.validator.Validate(subject); errs != nil {
		return nil, errs
	}

	if _, err := s.repo.Department().GetByID(ctx, subject.DepartmentID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("department")
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	if err := s.repo.Subject().Create(ctx, subject); err != nil {
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}

	s.logger.Info("Subject created", "subject_id", subject.ID, "name", subject.Name)

	return subject, nil
}

func (s *subjectService) Get(ctx context.Context, id uint) (*models.Subject, error) {
	subject, err := s.repo.Subject().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("subject")
		}
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}
	return subject, nil
}

func (s *subjectService) List(ctx context.Context) ([]*models.Subject, error) {
	return s.repo.Subject().List(ctx)
}

// ListTeachers aggregates distinct teachers from subject rows; teachers are
// an attribute of subjects, not an entity of their own.
func (s *subjectService) ListTeachers(ctx context.Context) ([]*models.TeacherSummary, error) {
	subjects, err := s.repo.Subject().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}

	byName := make(map[string]*models.TeacherSummary)
	var order []string
	for _, subject := range subjects {
		if subject.Teacher == "" {
			continue
		}
		summary, ok := byName[subject.Teacher]
		if !ok {
			summary = &models.TeacherSummary{Name: subject.Teacher}
			byName[subject.Teacher] = summary
			order = append(order, subject.Teacher)
		}
		summary.Subjects = append(summary.Subjects, subject.Name)
		if !containsUint(summary.Departments, subject.DepartmentID) {
			summary.Departments = append(summary.Departments, subject.DepartmentID)
		}
		summary.SubjectCount = len(summary.Subjects)
	}

	teachers := make([]*models.TeacherSummary, 0, len(order))
	for _, name := range order {
		teachers = append(teachers, byName[name])
	}
	return teachers, nil
}

func containsUint(s []uint, v uint) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
