package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
)

type feeRepository struct {
	db *gorm.DB
}

func NewFeePostgreSQL(db *gorm.DB) repositories.FeeRepository {
	return &feeRepository{db: db}
}

func (r *feeRepository) Create(ctx context.Context, fee *models.Fee) error {
	if err := r.db.WithContext(ctx).Create(fee).Error; err != nil {
		return fmt.Errorf("failed to create fee: %w", err)
	}
	return nil
}

func (r *feeRepository) GetByID(ctx context.Context, id uint) (*models.Fee, error) {
	var fee models.Fee
	if err := r.db.WithContext(ctx).First(&fee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get fee: %w", err)
	}
	return &fee, nil
}

// GetByIDForUpdate locks the row with SELECT ... FOR UPDATE so concurrent
// read-modify-write cycles serialize; READ COMMITTED alone would let a
// second writer overwrite with values derived from a stale read.
func (r *feeRepository) GetByIDForUpdate(ctx context.Context, id uint) (*models.Fee, error) {
	var fee models.Fee
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&fee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get fee for update: %w", err)
	}
	return &fee, nil
}

func (r *feeRepository) ListByStudent(ctx context.Context, studentID uint) ([]*models.Fee, error) {
	var fees []*models.Fee
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("id").
		Find(&fees).Error; err != nil {
		return nil, fmt.Errorf("failed to list fees by student: %w", err)
	}
	return fees, nil
}

func (r *feeRepository) Update(ctx context.Context, fee *models.Fee) error {
	// Save writes every column so derived due_amount/status land together
	if err := r.db.WithContext(ctx).Save(fee).Error; err != nil {
		return fmt.Errorf("failed to update fee: %w", err)
	}
	return nil
}
