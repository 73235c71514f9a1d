package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
	"github.com/SAP-F-2025/student-service/internal/validator"
)

type feeService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewFeeService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) FeeService {
	return &feeService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *feeService) Create(ctx context.Context, req *models.FeeCreateRequest) (*models.Fee, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	paymentDate := time.Now()
	if req.PaymentDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.PaymentDate)
		if err != nil {
			return nil, NewValidationError("payment_date", "must match format 2006-01-02", *req.PaymentDate)
		}
		paymentDate = parsed
	}

	fee := &models.Fee{
		StudentID:   req.StudentID,
		Semester:    req.Semester,
		TotalFee:    req.TotalFee,
		PaidAmount:  req.PaidAmount,
		PaymentDate: datatypes.Date(paymentDate),
	}
	fee.Recalculate()

	if err := s.repo.Fee().Create(ctx, fee); err != nil {
		return nil, fmt.Errorf("failed to create fee: %w", err)
	}

	s.logger.Info("Fee created",
		"fee_id", fee.ID,
		"student_id", fee.StudentID,
		"status", fee.Status)

	return fee, nil
}

// RecordPayment applies a payment delta inside one transaction. The fee row
// is read with a row lock; a plain read at READ COMMITTED would let two
// concurrent payments both derive from the same starting amount and the
// second commit silently drop the first.
func (s *feeService) RecordPayment(ctx context.Context, feeID uint, req *models.FeePaymentRequest) (*models.Fee, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	var updated *models.Fee
	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		fee, err := txRepo.Fee().GetByIDForUpdate(ctx, feeID)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return NewNotFoundError("fee record")
			}
			return fmt.Errorf("failed to get fee: %w", err)
		}

		fee.PaidAmount += req.PaidAmount
		fee.PaymentDate = datatypes.Date(time.Now())
		fee.Recalculate()

		if err := txRepo.Fee().Update(ctx, fee); err != nil {
			return fmt.Errorf("failed to update fee: %w", err)
		}

		updated = fee
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Fee payment recorded",
		"fee_id", updated.ID,
		"paid_amount", updated.PaidAmount,
		"status", updated.Status)

	return updated, nil
}

func (s *feeService) ListByStudent(ctx context.Context, studentID uint) ([]*models.Fee, error) {
	fees, err := s.repo.Fee().ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fees: %w", err)
	}
	return fees, nil
}
