package services

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
	"github.com/SAP-F-2025/student-service/internal/validator"
)

type clearanceMockRepo struct {
	baseMockRepository
	clearances *mockClearanceRepo
}

func (m *clearanceMockRepo) Clearance() repositories.ClearanceRepository { return m.clearances }

func TestClearanceService_Upsert(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := context.Background()

	clearances := newMockClearanceRepo()
	service := NewClearanceService(&clearanceMockRepo{clearances: clearances}, logger, validator.New())

	t.Run("first upsert creates the row", func(t *testing.T) {
		resp, err := service.Upsert(ctx, &models.ClearanceUpsertRequest{
			StudentID:        5,
			LibraryClearance: true,
		})
		if err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
		if resp.StudentID != 5 || !resp.LibraryClearance {
			t.Errorf("unexpected response: %+v", resp)
		}
		if resp.IsCleared {
			t.Error("IsCleared = true with three flags unset")
		}
	})

	t.Run("second upsert replaces flags, one row per student", func(t *testing.T) {
		first := clearances.byStudent[5].ID

		resp, err := service.Upsert(ctx, &models.ClearanceUpsertRequest{
			StudentID:           5,
			LibraryClearance:    true,
			FinanceClearance:    true,
			HostelClearance:     true,
			DepartmentClearance: true,
		})
		if err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
		if !resp.IsCleared {
			t.Error("IsCleared = false with all flags set")
		}
		if len(clearances.byStudent) != 1 {
			t.Errorf("expected 1 clearance row, got %d", len(clearances.byStudent))
		}
		if resp.ID != first {
			t.Errorf("row ID changed from %d to %d; upsert must keep the existing row", first, resp.ID)
		}
	})

	t.Run("upsert is one write with no prior read", func(t *testing.T) {
		// A get-then-create would let two concurrent first-time upserts
		// both miss the read and race the unique index
		clearances.getCalls = 0
		if _, err := service.Upsert(ctx, &models.ClearanceUpsertRequest{StudentID: 6}); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
		if clearances.getCalls != 0 {
			t.Errorf("reads during upsert = %d, want 0", clearances.getCalls)
		}
	})

	t.Run("flags can be revoked", func(t *testing.T) {
		resp, err := service.Upsert(ctx, &models.ClearanceUpsertRequest{
			StudentID:        5,
			FinanceClearance: true,
		})
		if err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
		if resp.LibraryClearance {
			t.Error("LibraryClearance should have been cleared by the upsert")
		}
		if resp.IsCleared {
			t.Error("IsCleared = true after revoking flags")
		}
	})
}

func TestClearanceService_GetByStudent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := context.Background()

	clearances := newMockClearanceRepo()
	service := NewClearanceService(&clearanceMockRepo{clearances: clearances}, logger, validator.New())

	if _, err := service.Upsert(ctx, &models.ClearanceUpsertRequest{
		StudentID:           9,
		LibraryClearance:    true,
		FinanceClearance:    true,
		HostelClearance:     true,
		DepartmentClearance: true,
	}); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	t.Run("existing record", func(t *testing.T) {
		resp, err := service.GetByStudent(ctx, 9)
		if err != nil {
			t.Fatalf("GetByStudent failed: %v", err)
		}
		if !resp.IsCleared {
			t.Error("IsCleared = false, want true")
		}
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := service.GetByStudent(ctx, 404)
		if !IsNotFound(err) {
			t.Errorf("expected NotFoundError, got %v", err)
		}
	})
}
