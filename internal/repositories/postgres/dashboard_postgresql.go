package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
)

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardPostgreSQL(db *gorm.DB) repositories.DashboardRepository {
	return &dashboardRepository{db: db}
}

// ===== COUNTS =====

func (r *dashboardRepository) CountStudents(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}

func (r *dashboardRepository) CountDepartments(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Department{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count departments: %w", err)
	}
	return count, nil
}

func (r *dashboardRepository) CountSubjects(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Subject{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count subjects: %w", err)
	}
	return count, nil
}

func (r *dashboardRepository) CountFeesPaid(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Fee{}).
		Where("status = ?", models.FeePaid).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count paid fees: %w", err)
	}
	return count, nil
}

// CountFeesUnpaid counts everything that is not fully paid, partial included.
func (r *dashboardRepository) CountFeesUnpaid(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Fee{}).
		Where("status <> ?", models.FeePaid).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unpaid fees: %w", err)
	}
	return count, nil
}

func (r *dashboardRepository) CountFullyClearedStudents(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Clearance{}).
		Where("library_clearance AND finance_clearance AND hostel_clearance AND department_clearance").
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count cleared students: %w", err)
	}
	return count, nil
}

// ===== RESULTS =====

func (r *dashboardRepository) AllResultTotals(ctx context.Context) ([]int, error) {
	var totals []int
	if err := r.db.WithContext(ctx).
		Model(&models.Result{}).
		Pluck("total_marks", &totals).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch result totals: %w", err)
	}
	return totals, nil
}
