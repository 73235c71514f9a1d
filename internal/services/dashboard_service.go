package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/student-service/internal/cache"
	"github.com/SAP-F-2025/student-service/internal/repositories"
)

const dashboardSummaryCacheKey = "summary"

type dashboardService struct {
	repo       repositories.Repository
	logger     *slog.Logger
	statsCache *cache.CacheHelper
}

func NewDashboardService(repo repositories.Repository, logger *slog.Logger, statsCache *cache.CacheHelper) DashboardService {
	return &dashboardService{
		repo:       repo,
		logger:     logger,
		statsCache: statsCache,
	}
}

// Summary aggregates counts, fee and clearance splits, and the average GPA
// over every result row. An empty result table yields 0.0, not an error.
func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummaryResponse, error) {
	var cached DashboardSummaryResponse
	if err := s.statsCache.Get(ctx, dashboardSummaryCacheKey, &cached); err == nil {
		return &cached, nil
	}

	dash := s.repo.Dashboard()

	totalStudents, err := dash.CountStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}

	totalDepartments, err := dash.CountDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count departments: %w", err)
	}

	totalSubjects, err := dash.CountSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count subjects: %w", err)
	}

	paidFees, err := dash.CountFeesPaid(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count paid fees: %w", err)
	}

	unpaidFees, err := dash.CountFeesUnpaid(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count unpaid fees: %w", err)
	}

	clearedStudents, err := dash.CountFullyClearedStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cleared students: %w", err)
	}

	totals, err := dash.AllResultTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch result totals: %w", err)
	}

	summary := &DashboardSummaryResponse{
		TotalStudents:    totalStudents,
		TotalDepartments: totalDepartments,
		TotalSubjects:    totalSubjects,
		Fees: DashboardFeeSplit{
			Paid:   paidFees,
			Unpaid: unpaidFees,
		},
		Clearance: DashboardClearanceSplit{
			ClearedStudents: clearedStudents,
			// Students without a clearance row count as not cleared
			NotClearedStudents: totalStudents - clearedStudents,
		},
		AverageGPA: meanGradePoint(totals),
	}

	if err := s.statsCache.Set(ctx, dashboardSummaryCacheKey, summary, cache.DashboardCacheConfig.TTL); err != nil {
		s.logger.Warn("Failed to cache dashboard summary", "error", err)
	}

	return summary, nil
}
