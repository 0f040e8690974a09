package service

import (
	"context"
	"errors"
	"sync"

	"venuehub/internal/notifications/render"
	"venuehub/internal/notifications/repository"
	"venuehub/pkg/config"
	apperrors "venuehub/pkg/errors"
	"venuehub/pkg/kafka"
	"venuehub/pkg/model"
)

// anonymousKey is the message key of events raised without a signed in user.
const anonymousKey = "anonymous"

type NotificationService interface {
	// Handle is the consumer entry point for one domain event message.
	Handle(ctx context.Context, msg kafka.Message) error
	GetAll(ctx context.Context, userID string, limit int, offset int64) ([]*model.Notification, int64, error)
}

type notificationService struct {
	repo repository.NotificationRepository
	cfg  *config.Config
}

func NewNotificationService(repo repository.NotificationRepository, cfg *config.Config) NotificationService {
	return &notificationService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *notificationService) Handle(ctx context.Context, msg kafka.Message) error {
	eventType := msg.GetEventType()
	userID := msg.Key
	if userID == "" || userID == anonymousKey {
		s.cfg.Log.Debug("Skipping event without a user", "event_id", msg.GetEventID(), "event_type", eventType)
		return nil
	}

	toast, err := render.Render(eventType, msg.DecodeValue)
	if err != nil {
		if errors.Is(err, render.ErrUnknownEvent) {
			s.cfg.Log.Debug("Skipping event without a notification", "event_id", msg.GetEventID(), "event_type", eventType)
			return nil
		}
		return kafka.NewPermanentError("undecodable event payload", err)
	}

	n := &model.Notification{
		UserID:      userID,
		EventID:     msg.GetEventID(),
		EventType:   eventType,
		Title:       toast.Title,
		Description: toast.Description,
		Variant:     toast.Variant,
	}
	created, err := s.repo.Create(ctx, n)
	if err != nil {
		return kafka.NewTransientError("failed to store notification", err)
	}
	if !created {
		s.cfg.Log.Info("Notification already delivered", "event_id", n.EventID, "user_id", userID)
		return nil
	}

	s.cfg.Log.Info("Notification delivered",
		"id", n.ID,
		"event_id", n.EventID,
		"event_type", eventType,
		"user_id", userID,
	)
	return nil
}

func (s *notificationService) GetAll(ctx context.Context, userID string, limit int, offset int64) ([]*model.Notification, int64, error) {
	if userID == "" {
		return nil, 0, apperrors.Unauthorized("Authentication required")
	}
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	var count int64
	var notifications []*model.Notification
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		count, err = s.repo.CountByUser(ctx, userID)
		if err != nil {
			s.cfg.Log.Error("Failed to count notifications", "user_id", userID, "error", err)
			errCount = apperrors.Internal("Failed to count notifications", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		notifications, err = s.repo.FindByUser(ctx, userID, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to get notifications", "user_id", userID, "error", err)
			errFind = apperrors.Internal("Failed to retrieve notifications", err)
		}
	}()
	wg.Wait()

	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}
	return notifications, count, nil
}
