package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
	"github.com/SAP-F-2025/student-service/internal/validator"
)

type clearanceService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewClearanceService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) ClearanceService {
	return &clearanceService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

// Upsert creates or replaces the clearance flags for a student; one row per
// student. The write is a single atomic upsert, a get-then-create here
// would let concurrent first-time upserts race the unique index.
func (s *clearanceService) Upsert(ctx context.Context, req *models.ClearanceUpsertRequest) (*models.ClearanceResponse, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	clearance := &models.Clearance{
		StudentID:           req.StudentID,
		LibraryClearance:    req.LibraryClearance,
		FinanceClearance:    req.FinanceClearance,
		HostelClearance:     req.HostelClearance,
		DepartmentClearance: req.DepartmentClearance,
	}
	if err := s.repo.Clearance().Upsert(ctx, clearance); err != nil {
		return nil, fmt.Errorf("failed to upsert clearance: %w", err)
	}

	s.logger.Info("Clearance saved",
		"student_id", clearance.StudentID,
		"is_cleared", clearance.IsCleared())

	return models.NewClearanceResponse(clearance), nil
}

func (s *clearanceService) GetByStudent(ctx context.Context, studentID uint) (*models.ClearanceResponse, error) {
	clearance, err := s.repo.Clearance().GetByStudent(ctx, studentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("clearance record")
		}
		return nil, fmt.Errorf("failed to get clearance: %w", err)
	}

	return models.NewClearanceResponse(clearance), nil
}
