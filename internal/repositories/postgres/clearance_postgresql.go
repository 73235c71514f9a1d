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

type clearanceRepository struct {
	db *gorm.DB
}

func NewClearancePostgreSQL(db *gorm.DB) repositories.ClearanceRepository {
	return &clearanceRepository{db: db}
}

// Upsert is one INSERT ... ON CONFLICT (student_id) DO UPDATE; two
// concurrent first-time upserts both succeed instead of the loser tripping
// the unique index.
func (r *clearanceRepository) Upsert(ctx context.Context, clearance *models.Clearance) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"library_clearance", "finance_clearance",
				"hostel_clearance", "department_clearance",
			}),
		}).
		Create(clearance).Error; err != nil {
		return fmt.Errorf("failed to upsert clearance: %w", err)
	}
	return nil
}

func (r *clearanceRepository) GetByStudent(ctx context.Context, studentID uint) (*models.Clearance, error) {
	var clearance models.Clearance
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&clearance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get clearance: %w", err)
	}
	return &clearance, nil
}
