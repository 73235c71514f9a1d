package services

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/SAP-F-2025/student-service/internal/events"
	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
	"github.com/SAP-F-2025/student-service/internal/validator"
)

type announcementMockRepo struct {
	baseMockRepository
	announcements *mockAnnouncementRepo
}

func (m *announcementMockRepo) Announcement() repositories.AnnouncementRepository {
	return m.announcements
}

func TestAnnouncementService_Create(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := context.Background()

	publisher := events.NewMockEventPublisher(logger)
	repo := &announcementMockRepo{announcements: newMockAnnouncementRepo()}
	service := NewAnnouncementService(repo, publisher, logger, validator.New())

	t.Run("create publishes an event", func(t *testing.T) {
		announcement, err := service.Create(ctx, &models.AnnouncementCreateRequest{
			Title:    "Exam schedule",
			Content:  "Finals start on Monday",
			Priority: models.PriorityHigh,
		}, "admin@school.test")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if announcement.ID == 0 {
			t.Error("announcement was not persisted")
		}
		if announcement.PostedBy != "admin@school.test" {
			t.Errorf("PostedBy = %q", announcement.PostedBy)
		}

		published := publisher.GetPublishedEvents()
		if len(published) != 1 {
			t.Fatalf("expected 1 published event, got %d", len(published))
		}

		event := published[0]
		if event.Type != EventAnnouncementCreated {
			t.Errorf("event type = %q, want %q", event.Type, EventAnnouncementCreated)
		}
		if event.ID == "" {
			t.Error("event ID should not be empty")
		}
		if event.Source != "student-service" {
			t.Errorf("event source = %q, want student-service", event.Source)
		}
		if event.Version != "1.0" {
			t.Errorf("event version = %q, want 1.0", event.Version)
		}
		if event.Timestamp.IsZero() {
			t.Error("event timestamp should not be zero")
		}

		payload, ok := event.Data.(AnnouncementCreatedEvent)
		if !ok {
			t.Fatalf("event data has type %T", event.Data)
		}
		if payload.AnnouncementID != announcement.ID || payload.Title != "Exam schedule" {
			t.Errorf("unexpected payload: %+v", payload)
		}
	})

	t.Run("empty priority defaults to normal", func(t *testing.T) {
		publisher.ClearEvents()

		announcement, err := service.Create(ctx, &models.AnnouncementCreateRequest{
			Title:   "Library hours",
			Content: "Open until 22:00 during exams",
		}, "admin@school.test")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if announcement.Priority != models.PriorityNormal {
			t.Errorf("Priority = %q, want normal", announcement.Priority)
		}
	})

	t.Run("missing title rejected", func(t *testing.T) {
		_, err := service.Create(ctx, &models.AnnouncementCreateRequest{
			Content: "body without a title",
		}, "admin@school.test")
		if err == nil {
			t.Fatal("expected validation error")
		}
	})
}

func TestAnnouncementService_Delete(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := context.Background()

	publisher := events.NewMockEventPublisher(logger)
	repo := &announcementMockRepo{announcements: newMockAnnouncementRepo()}
	service := NewAnnouncementService(repo, publisher, logger, validator.New())

	created, err := service.Create(ctx, &models.AnnouncementCreateRequest{
		Title:   "Old notice",
		Content: "to be removed",
	}, "admin@school.test")
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := service.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if err := service.Delete(ctx, created.ID); !IsNotFound(err) {
		t.Errorf("expected NotFoundError on second delete, got %v", err)
	}
}
