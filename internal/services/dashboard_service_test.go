package services

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/SAP-F-2025/student-service/internal/cache"
	"github.com/SAP-F-2025/student-service/internal/repositories"
)

type dashboardMockRepo struct {
	baseMockRepository
	dash *mockDashboardRepo
}

func (m *dashboardMockRepo) Dashboard() repositories.DashboardRepository { return m.dash }

func TestDashboardService_Summary(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := context.Background()
	// nil redis client: reads miss, writes no-op
	statsCache := cache.NewCacheHelper(nil, cache.DashboardCacheConfig.Prefix)

	repo := &dashboardMockRepo{
		dash: &mockDashboardRepo{
			students:     120,
			departments:  4,
			subjects:     32,
			feesPaid:     80,
			feesUnpaid:   25,
			cleared:      45,
			resultTotals: []int{90, 70, 50},
		},
	}
	service := NewDashboardService(repo, logger, statsCache)

	summary, err := service.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	if summary.TotalStudents != 120 {
		t.Errorf("TotalStudents = %d, want 120", summary.TotalStudents)
	}
	if summary.TotalDepartments != 4 {
		t.Errorf("TotalDepartments = %d, want 4", summary.TotalDepartments)
	}
	if summary.TotalSubjects != 32 {
		t.Errorf("TotalSubjects = %d, want 32", summary.TotalSubjects)
	}
	if summary.Fees.Paid != 80 || summary.Fees.Unpaid != 25 {
		t.Errorf("Fees = %+v, want paid 80 unpaid 25", summary.Fees)
	}
	if summary.Clearance.ClearedStudents != 45 {
		t.Errorf("ClearedStudents = %d, want 45", summary.Clearance.ClearedStudents)
	}
	// Students with no clearance row count as not cleared
	if summary.Clearance.NotClearedStudents != 75 {
		t.Errorf("NotClearedStudents = %d, want 75", summary.Clearance.NotClearedStudents)
	}
	if summary.AverageGPA != 3.0 {
		t.Errorf("AverageGPA = %v, want 3.0", summary.AverageGPA)
	}
}

func TestDashboardService_Summary_NoResults(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	statsCache := cache.NewCacheHelper(nil, cache.DashboardCacheConfig.Prefix)

	repo := &dashboardMockRepo{dash: &mockDashboardRepo{students: 10}}
	service := NewDashboardService(repo, logger, statsCache)

	summary, err := service.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	// Empty result table is not an error, the average is just 0.0
	if summary.AverageGPA != 0.0 {
		t.Errorf("AverageGPA = %v, want 0.0", summary.AverageGPA)
	}
	if summary.Clearance.NotClearedStudents != 10 {
		t.Errorf("NotClearedStudents = %d, want 10", summary.Clearance.NotClearedStudents)
	}
}
