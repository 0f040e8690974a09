package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingserrors "venuehub/internal/bookings/errors"
	"venuehub/internal/bookings/flow"
	"venuehub/pkg/auth"
	apperrors "venuehub/pkg/errors"
	"venuehub/pkg/events"
	"venuehub/pkg/model"
	"venuehub/pkg/sanitizer"
	"venuehub/pkg/validation"

	"github.com/google/uuid"
)

// referenceAttempts bounds how often a colliding booking reference is redrawn.
const referenceAttempts = 3

func (s *bookingService) StartFlow(ctx context.Context, user *auth.Identity, venueID string) (flow.View, error) {
	if user == nil {
		return flow.View{}, apperrors.Unauthorized("Authentication required")
	}
	venueID = sanitizer.Slug(venueID)
	if venueID == "" {
		return flow.View{}, apperrors.InvalidInput("Venue ID cannot be empty")
	}

	venue, err := s.venues.FindByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrVenueNotFound) {
			return flow.View{}, apperrors.NotFoundWithID("Venue", venueID)
		}
		s.cfg.Log.Error("Failed to load venue for booking", "venue_id", venueID, "error", err)
		return flow.View{}, apperrors.Internal("Failed to start booking", err)
	}

	f := flow.New(uuid.NewString(), user.UserID, flow.VenueFrom(venue), flow.Prefill{
		Name:   sanitizer.NormalizeName(user.FullName),
		Email:  sanitizer.NormalizeEmail(user.Email),
		Date:   s.flows.RecallDate(user.UserID, venue.ID),
		Guests: s.cfg.DefaultGuestCount,
	}, s.now())

	token, err := s.sealer.Seal(user.UserID, f.ID())
	if err != nil {
		s.cfg.Log.Error("Failed to seal booking flow token", "user_id", user.UserID, "error", err)
		return flow.View{}, apperrors.Internal("Failed to start booking", err)
	}
	s.flows.Put(f)

	s.cfg.Log.Info("Booking flow started",
		"flow_id", f.ID(),
		"venue_id", venue.ID,
		"user_id", user.UserID,
	)

	view := f.View()
	view.Token = token
	return view, nil
}

func (s *bookingService) GetFlow(ctx context.Context, user *auth.Identity, token string) (flow.View, error) {
	f, err := s.openFlow(user, token)
	if err != nil {
		return flow.View{}, err
	}
	f.Touch(s.now())
	return s.view(f, token), nil
}

func (s *bookingService) SubmitDetails(ctx context.Context, user *auth.Identity, token string, details flow.Details) (flow.View, error) {
	f, err := s.openFlow(user, token)
	if err != nil {
		return flow.View{}, err
	}

	sanitizeDetails(&details)
	venue := f.Venue()
	err = f.SubmitDetails(details, func(d flow.Details) error {
		return s.validator.ValidateDetails(d, venue)
	}, s.now())
	if err != nil {
		s.cfg.Log.Warn("Booking details rejected",
			"flow_id", f.ID(),
			"venue_id", venue.ID,
			"error", err,
		)
		return flow.View{}, flowError(err, f.Step())
	}

	view := s.view(f, token)
	s.flows.RememberDate(user.UserID, venue.ID, view.Details.Date)
	return view, nil
}

func (s *bookingService) Back(ctx context.Context, user *auth.Identity, token string) (flow.View, error) {
	f, err := s.openFlow(user, token)
	if err != nil {
		return flow.View{}, err
	}
	if err := f.Back(s.now()); err != nil {
		return flow.View{}, flowError(err, f.Step())
	}
	return s.view(f, token), nil
}

// SubmitPayment waits out the submission delay, records the confirmed
// booking and moves the flow to confirmation. No money moves.
func (s *bookingService) SubmitPayment(ctx context.Context, user *auth.Identity, token string) (flow.View, error) {
	f, err := s.openFlow(user, token)
	if err != nil {
		return flow.View{}, err
	}

	details, err := f.BeginPayment()
	if err != nil {
		return flow.View{}, flowError(err, f.Step())
	}
	completed := false
	defer func() {
		if !completed {
			f.AbortPayment()
		}
	}()

	if err := wait(ctx, s.cfg.BookingSubmissionDelay); err != nil {
		s.cfg.Log.Warn("Payment submission interrupted", "flow_id", f.ID(), "error", err)
		return flow.View{}, apperrors.Timeout("Payment submission was interrupted")
	}

	booking, err := s.recordBooking(ctx, f, details)
	if err != nil {
		return flow.View{}, err
	}

	f.CompletePayment(booking, s.now())
	completed = true

	s.cfg.Log.Info("Booking confirmed",
		"id", booking.ID,
		"reference", booking.Reference,
		"venue_id", booking.VenueID,
		"user_id", booking.UserID,
	)

	events.Emit(ctx, s.publisher, s.cfg.Log, events.Event{
		ID:     events.TypeBookingConfirmed + ":" + booking.ID,
		Type:   events.TypeBookingConfirmed,
		UserID: booking.UserID,
		Payload: events.BookingConfirmed{
			BookingID:    booking.ID,
			Reference:    booking.Reference,
			UserID:       booking.UserID,
			VenueID:      booking.VenueID,
			VenueName:    booking.VenueName,
			CheckInDate:  booking.CheckInDate,
			Guests:       booking.Guests,
			TotalPrice:   booking.TotalPrice,
			DepositPaid:  booking.DepositPaid,
			ContactEmail: booking.ContactEmail,
		},
	})

	return s.view(f, token), nil
}

func (s *bookingService) recordBooking(ctx context.Context, f *flow.Flow, details flow.Details) (*model.Booking, error) {
	for attempt := 1; ; attempt++ {
		reference, err := flow.NewReference()
		if err != nil {
			return nil, apperrors.Internal("Failed to confirm booking", err)
		}

		booking, err := flow.Confirmed(f.UserID(), f.Venue(), details, s.cfg.BookingDepositRate, reference)
		if err != nil {
			return nil, apperrors.Internal("Failed to confirm booking", err)
		}
		if err := s.validator.ValidateBooking(booking); err != nil {
			s.cfg.Log.Error("Confirmed booking failed validation", "flow_id", f.ID(), "error", err)
			return nil, validation.AppError("Booking validation failed", err)
		}

		err = s.repo.Create(ctx, booking)
		if err == nil {
			return booking, nil
		}
		if errors.Is(err, bookingserrors.ErrDuplicateReference) && attempt < referenceAttempts {
			s.cfg.Log.Warn("Booking reference collision, drawing a new one", "reference", reference, "attempt", attempt)
			continue
		}
		s.cfg.Log.Error("Failed to create booking",
			"flow_id", f.ID(),
			"venue_id", booking.VenueID,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to confirm booking", err)
	}
}

// openFlow resolves a token to a live flow owned by user. Foreign, forged
// and expired tokens all read as a missing flow.
func (s *bookingService) openFlow(user *auth.Identity, token string) (*flow.Flow, error) {
	if user == nil {
		return nil, apperrors.Unauthorized("Authentication required")
	}
	owner, flowID, err := s.sealer.Open(strings.TrimSpace(token))
	if err != nil || owner != user.UserID {
		return nil, apperrors.NotFound("Booking flow")
	}
	f, ok := s.flows.Get(flowID)
	if !ok || f.UserID() != user.UserID {
		return nil, apperrors.NotFound("Booking flow")
	}
	return f, nil
}

func (s *bookingService) view(f *flow.Flow, token string) flow.View {
	v := f.View()
	v.Token = token
	return v
}

func flowError(err error, step flow.Step) error {
	switch {
	case errors.Is(err, flow.ErrDateRequired):
		return apperrors.Validation("Please select a date", map[string]any{
			"description": "You need to select a date before proceeding.",
			"field":       "date",
		})
	case errors.Is(err, flow.ErrPaymentInProgress):
		return apperrors.Conflict("Payment is already being processed")
	case errors.Is(err, flow.ErrInvalidTransition):
		return apperrors.Conflict(fmt.Sprintf("Action not allowed at the %s step", step))
	default:
		return validation.AppError("Booking details validation failed", err)
	}
}

func sanitizeDetails(d *flow.Details) {
	d.Date = strings.TrimSpace(d.Date)
	d.Name = sanitizer.NormalizeName(d.Name)
	d.Email = sanitizer.NormalizeEmail(d.Email)
	d.Phone = sanitizer.NormalizePhone(d.Phone)
	d.SpecialRequests = sanitizer.NormalizeText(d.SpecialRequests)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
