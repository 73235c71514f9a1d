package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/student-service/internal/repositories"
)

type academicService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewAcademicService(repo repositories.Repository, logger *slog.Logger) AcademicService {
	return &academicService{
		repo:   repo,
		logger: logger,
	}
}

func (s *academicService) GPA(ctx context.Context, studentID uint, semester int) (float64, error) {
	results, err := s.repo.Result().ListByStudentAndSemester(ctx, studentID, semester)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch semester results: %w", err)
	}

	if len(results) == 0 {
		return 0, NewNotFoundError("results for this semester")
	}

	gpa := meanGradePoint(resultTotals(results))

	s.logger.Debug("GPA computed",
		"student_id", studentID,
		"semester", semester,
		"result_count", len(results),
		"gpa", gpa)

	return gpa, nil
}

func (s *academicService) CGPA(ctx context.Context, studentID uint) (float64, error) {
	results, err := s.repo.Result().ListByStudent(ctx, studentID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch results: %w", err)
	}

	if len(results) == 0 {
		return 0, NewNotFoundError("results")
	}

	cgpa := meanGradePoint(resultTotals(results))

	s.logger.Debug("CGPA computed",
		"student_id", studentID,
		"result_count", len(results),
		"cgpa", cgpa)

	return cgpa, nil
}
