package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
	"github.com/SAP-F-2025/student-service/internal/validator"
)

type resultService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewResultService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) ResultService {
	return &resultService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *resultService) Create(ctx context.Context, result *models.Result) (*models.Result, error) {
	if errs := s.validator.Validate(result); errs != nil {
		return nil, errs
	}

	if _, err := s.repo.Student().GetByID(ctx, result.StudentID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("student")
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	if _, err := s.repo.Subject().GetByID(ctx, result.SubjectID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("subject")
		}
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}

	if err := s.repo.Result().Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to create result: %w", err)
	}

	s.logger.Info("Result created",
		"result_id", result.ID,
		"student_id", result.StudentID,
		"subject_id", result.SubjectID,
		"total_marks", result.TotalMarks)

	return result, nil
}

func (s *resultService) List(ctx context.Context) ([]*models.Result, error) {
	return s.repo.Result().List(ctx)
}

func (s *resultService) ListByStudent(ctx context.Context, studentID uint) ([]*models.Result, error) {
	return s.repo.Result().ListByStudent(ctx, studentID)
}

// Export writes every result row into an xlsx workbook, one row per result
// with the derived grade point in the last column.
func (s *resultService) Export(ctx context.Context) ([]byte, error) {
	results, err := s.repo.Result().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Results"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Student ID", "Subject ID", "Midterm", "Final", "Sessional", "Total", "Grade Point"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, r := range results {
		values := []interface{}{
			r.ID, r.StudentID, r.SubjectID,
			r.MidtermMarks, r.FinalMarks, r.SessionalMarks,
			r.TotalMarks, GradePoint(r.TotalMarks),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	s.logger.Info("Results exported", "result_count", len(results))

	return buf.Bytes(), nil
}
