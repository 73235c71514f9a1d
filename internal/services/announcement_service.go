package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/student-service/internal/events"
	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
	"github.com/SAP-F-2025/student-service/internal/validator"
)

const EventAnnouncementCreated = "announcement.created"

// AnnouncementCreatedEvent is the payload published for downstream
// notification delivery.
type AnnouncementCreatedEvent struct {
	AnnouncementID uint                        `json:"announcement_id"`
	Title          string                      `json:"title"`
	Priority       models.AnnouncementPriority `json:"priority"`
	PostedBy       string                      `json:"posted_by"`
}

type announcementService struct {
	repo           repositories.Repository
	eventPublisher events.EventPublisher
	logger         *slog.Logger
	validator      *validator.Validator
}

func NewAnnouncementService(repo repositories.Repository, eventPublisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) AnnouncementService {
	return &announcementService{
		repo:           repo,
		eventPublisher: eventPublisher,
		logger:         logger,
		validator:      validator,
	}
}

func (s *announcementService) Create(ctx context.Context, req *models.AnnouncementCreateRequest, postedBy string) (*models.Announcement, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}

	announcement := &models.Announcement{
		Title:    req.Title,
		Content:  req.Content,
		Priority: priority,
		PostedBy: postedBy,
	}

	if err := s.repo.Announcement().Create(ctx, announcement); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	// Delivery is best-effort; the announcement itself is already durable
	event := events.NewEvent(EventAnnouncementCreated, AnnouncementCreatedEvent{
		AnnouncementID: announcement.ID,
		Title:          announcement.Title,
		Priority:       announcement.Priority,
		PostedBy:       announcement.PostedBy,
	})
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish announcement event",
			"announcement_id", announcement.ID,
			"error", err)
	}

	s.logger.Info("Announcement created",
		"announcement_id", announcement.ID,
		"priority", announcement.Priority,
		"posted_by", announcement.PostedBy)

	return announcement, nil
}

func (s *announcementService) List(ctx context.Context) ([]*models.Announcement, error) {
	announcements, err := s.repo.Announcement().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return announcements, nil
}

func (s *announcementService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Announcement().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return NewNotFoundError("announcement")
		}
		return fmt.Errorf("failed to delete announcement: %w", err)
	}

	s.logger.Info("Announcement deleted", "announcement_id", id)
	return nil
}
