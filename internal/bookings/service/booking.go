package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	bookingserrors "venuehub/internal/bookings/errors"
	"venuehub/internal/bookings/flow"
	"venuehub/internal/bookings/receipt"
	"venuehub/internal/bookings/repository"
	"venuehub/internal/bookings/validator"
	"venuehub/pkg/auth"
	"venuehub/pkg/config"
	apperrors "venuehub/pkg/errors"
	"venuehub/pkg/events"
	"venuehub/pkg/model"
	"venuehub/pkg/sealer"
)

type BookingService interface {
	StartFlow(ctx context.Context, user *auth.Identity, venueID string) (flow.View, error)
	GetFlow(ctx context.Context, user *auth.Identity, token string) (flow.View, error)
	SubmitDetails(ctx context.Context, user *auth.Identity, token string, details flow.Details) (flow.View, error)
	Back(ctx context.Context, user *auth.Identity, token string) (flow.View, error)
	SubmitPayment(ctx context.Context, user *auth.Identity, token string) (flow.View, error)

	GetAll(ctx context.Context, userID string, limit int, offset int64) ([]*model.Booking, int64, error)
	GetByID(ctx context.Context, userID, id string) (*model.Booking, error)
	Cancel(ctx context.Context, userID, id string) error
	Receipt(ctx context.Context, userID, id string) ([]byte, string, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	venues    repository.VenueReader
	flows     *flow.Store
	sealer    *sealer.Sealer
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
	now       func() time.Time
}

func NewBookingService(
	repo repository.BookingRepository,
	venues repository.VenueReader,
	flows *flow.Store,
	sealer *sealer.Sealer,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		venues:    venues,
		flows:     flows,
		sealer:    sealer,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *bookingService) GetAll(ctx context.Context, userID string, limit int, offset int64) ([]*model.Booking, int64, error) {
	if userID == "" {
		return nil, 0, apperrors.Unauthorized("Authentication required")
	}
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		count, err = s.repo.CountByUser(ctx, userID)
		if err != nil {
			s.cfg.Log.Error("Failed to count bookings", "user_id", userID, "error", err)
			errCount = apperrors.Internal("Failed to count bookings", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		bookings, err = s.repo.FindByUser(ctx, userID, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to get bookings",
				"user_id", userID,
				"limit", limit,
				"offset", offset,
				"error", err,
			)
			errFind = apperrors.Internal("Failed to retrieve bookings", err)
		}
	}()
	wg.Wait()

	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

func (s *bookingService) GetByID(ctx context.Context, userID, id string) (*model.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, s.mapRepoError(err, "get", id, userID)
	}
	return booking, nil
}

func (s *bookingService) Cancel(ctx context.Context, userID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.DeleteForUser(ctx, id, userID)
	if err != nil {
		return s.mapRepoError(err, "cancel", id, userID)
	}

	s.cfg.Log.Info("Booking cancelled successfully",
		"id", id,
		"reference", booking.Reference,
		"user_id", userID,
	)

	events.Emit(ctx, s.publisher, s.cfg.Log, events.Event{
		ID:     events.TypeBookingCancelled + ":" + booking.ID,
		Type:   events.TypeBookingCancelled,
		UserID: userID,
		Payload: events.BookingCancelled{
			BookingID: booking.ID,
			Reference: booking.Reference,
			UserID:    userID,
			VenueID:   booking.VenueID,
			VenueName: booking.VenueName,
		},
	})
	return nil
}

func (s *bookingService) Receipt(ctx context.Context, userID, id string) ([]byte, string, error) {
	booking, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}

	doc, err := receipt.Render(booking, s.now())
	if err != nil {
		s.cfg.Log.Error("Failed to render booking receipt",
			"id", id,
			"reference", booking.Reference,
			"error", err,
		)
		return nil, "", apperrors.Internal("Failed to render receipt", err)
	}
	return doc, receipt.Filename(booking), nil
}

func (s *bookingService) mapRepoError(err error, op, id, userID string) error {
	if errors.Is(err, bookingserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Booking", id)
	}
	if errors.Is(err, bookingserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid booking ID format")
	}
	s.cfg.Log.Error("Failed to "+op+" booking",
		"id", id,
		"user_id", userID,
		"error", err,
	)
	return apperrors.Internal("Failed to "+op+" booking", err)
}
