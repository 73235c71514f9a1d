package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
)

type resultRepository struct {
	db *gorm.DB
}

func NewResultPostgreSQL(db *gorm.DB) repositories.ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(ctx context.Context, result *models.Result) error {
	if err := r.db.WithContext(ctx).Create(result).Error; err != nil {
		return fmt.Errorf("failed to create result: %w", err)
	}
	return nil
}

func (r *resultRepository) List(ctx context.Context) ([]*models.Result, error) {
	var results []*models.Result
	if err := r.db.WithContext(ctx).Order("id").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}

func (r *resultRepository) ListByStudent(ctx context.Context, studentID uint) ([]*models.Result, error) {
	var results []*models.Result
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to list results by student: %w", err)
	}
	return results, nil
}

func (r *resultRepository) ListByStudentAndSemester(ctx context.Context, studentID uint, semester int) ([]*models.Result, error) {
	var results []*models.Result
	if err := r.db.WithContext(ctx).
		Joins("JOIN subjects ON subjects.id = results.subject_id").
		Where("results.student_id = ? AND subjects.semester = ?", studentID, semester).
		Order("results.id").
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to list results by student and semester: %w", err)
	}
	return results, nil
}
