package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	venueserrors "venuehub/internal/venues/errors"
	"venuehub/internal/venues/repository"
	"venuehub/internal/venues/validator"
	"venuehub/pkg/auth"
	"venuehub/pkg/config"
	apperrors "venuehub/pkg/errors"
	"venuehub/pkg/events"
	"venuehub/pkg/model"
	"venuehub/pkg/sanitizer"
	"venuehub/pkg/search"
	"venuehub/pkg/validation"

	"go.mongodb.org/mongo-driver/mongo"
)

type VenueService interface {
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Venue, int64, error)
	GetFeatured(ctx context.Context) ([]*model.Venue, error)
	Search(ctx context.Context, filter model.Filter) ([]*model.Venue, error)
	GetByID(ctx context.Context, id string) (*model.Venue, error)
	Amenities() []string

	GetReviews(ctx context.Context, venueID string) ([]*model.Review, error)
	CreateReview(ctx context.Context, venueID string, author *auth.Identity, input *model.ReviewInput) (*model.Review, error)

	SubmitVenueInquiry(ctx context.Context, venueID string, inquiry *model.Inquiry) error
	SubmitInquiry(ctx context.Context, inquiry *model.Inquiry) error
}

type Repositories struct {
	Venues    repository.VenueRepository
	Reviews   repository.ReviewRepository
	Inquiries repository.InquiryRepository
}

type venueService struct {
	repos     Repositories
	validator *validator.VenueValidator
	publisher events.Publisher
	amenities []string
	cfg       *config.Config
}

func NewVenueService(
	repos Repositories,
	validator *validator.VenueValidator,
	publisher events.Publisher,
	amenities []string,
	cfg *config.Config,
) VenueService {
	return &venueService{
		repos:     repos,
		validator: validator,
		publisher: publisher,
		amenities: amenities,
		cfg:       cfg,
	}
}

func (s *venueService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Venue, int64, error) {
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	var count int64
	var venues []*model.Venue
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		count, err = s.repos.Venues.Count(ctx)
		if err != nil {
			s.cfg.Log.Error("Failed to count venues", "error", err)
			errCount = apperrors.Internal("Failed to count venues", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		venues, err = s.repos.Venues.FindAll(ctx, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to get all venues",
				"limit", limit,
				"offset", offset,
				"error", err,
			)
			errFind = apperrors.Internal("Failed to retrieve venues", err)
		}
	}()
	wg.Wait()

	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return venues, count, nil
}

func (s *venueService) GetFeatured(ctx context.Context) ([]*model.Venue, error) {
	venues, err := s.repos.Venues.FindFeatured(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to get featured venues", "error", err)
		return nil, apperrors.Internal("Failed to retrieve featured venues", err)
	}
	return venues, nil
}

func (s *venueService) Search(ctx context.Context, filter model.Filter) ([]*model.Venue, error) {
	filter.Location = sanitizer.NormalizeLocation(filter.Location)
	filter.Amenities = sanitizer.NormalizeAmenities(filter.Amenities, s.amenities)
	filter.Date = strings.TrimSpace(filter.Date)

	if err := validateFilter(filter); err != nil {
		s.cfg.Log.Warn("Invalid venue search filter",
			"location", filter.Location,
			"min_price", filter.MinPrice,
			"max_price", filter.MaxPrice,
			"guest_count", filter.GuestCount,
			"date", filter.Date,
			"error", err,
		)
		return nil, err
	}

	venues, err := s.repos.Venues.List(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to load venues for search", "error", err)
		return nil, apperrors.Internal("Failed to search venues", err)
	}

	return search.FilterVenues(venues, filter), nil
}

func validateFilter(f model.Filter) error {
	if f.MinPrice < 0 || f.MaxPrice < 0 {
		return apperrors.InvalidInput("Price range cannot be negative")
	}
	if f.MaxPrice > 0 && f.MaxPrice < f.MinPrice {
		return apperrors.InvalidInput("Maximum price cannot be lower than minimum price")
	}
	if f.GuestCount < 0 {
		return apperrors.InvalidInput("Guest count cannot be negative")
	}
	if f.Date != "" {
		if _, err := time.Parse(time.DateOnly, f.Date); err != nil {
			return apperrors.InvalidInput("Date must be in YYYY-MM-DD format")
		}
	}
	return nil
}

func (s *venueService) GetByID(ctx context.Context, id string) (*model.Venue, error) {
	venue, err := s.findVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	stored, err := s.repos.Reviews.FindByVenue(ctx, venue.ID)
	if err != nil {
		s.cfg.Log.Error("Failed to get venue reviews", "venue_id", venue.ID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve venue reviews", err)
	}
	venue.Reviews = mergeReviews(stored, venue.Reviews)

	return venue, nil
}

func (s *venueService) Amenities() []string {
	return append([]string(nil), s.amenities...)
}

func (s *venueService) GetReviews(ctx context.Context, venueID string) ([]*model.Review, error) {
	venue, err := s.findVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	stored, err := s.repos.Reviews.FindByVenue(ctx, venue.ID)
	if err != nil {
		s.cfg.Log.Error("Failed to get venue reviews", "venue_id", venue.ID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve venue reviews", err)
	}

	all := mergeReviews(stored, venue.Reviews)
	out := make([]*model.Review, len(all))
	for i := range all {
		out[i] = &all[i]
	}
	return out, nil
}

// mergeReviews lists stored reviews, newest first, ahead of the catalog ones.
func mergeReviews(stored []*model.Review, embedded []model.Review) []model.Review {
	out := make([]model.Review, 0, len(stored)+len(embedded))
	for _, r := range stored {
		out = append(out, *r)
	}
	return append(out, embedded...)
}

func (s *venueService) CreateReview(ctx context.Context, venueID string, author *auth.Identity, input *model.ReviewInput) (*model.Review, error) {
	if author == nil {
		return nil, apperrors.Unauthorized("Authentication required")
	}
	venue, err := s.findVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	review := &model.Review{
		VenueID:  venue.ID,
		UserID:   author.UserID,
		UserName: displayName(author),
		Rating:   input.Rating,
		Comment:  sanitizer.NormalizeText(input.Comment),
		Date:     time.Now().UTC().Format(time.DateOnly),
	}

	if err := s.validator.ValidateReview(review); err != nil {
		s.cfg.Log.Warn("Review validation failed",
			"venue_id", venue.ID,
			"user_id", author.UserID,
			"error", err,
		)
		return nil, validation.AppError("Review validation failed", err)
	}

	err = s.repos.Venues.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.repos.Reviews.Create(sessCtx, review); err != nil {
			return err
		}
		return s.repos.Venues.AddRating(sessCtx, venue.ID, review.Rating)
	})
	if err != nil {
		if errors.Is(err, venueserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Venue", venue.ID)
		}
		s.cfg.Log.Error("Failed to create review",
			"venue_id", venue.ID,
			"user_id", author.UserID,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to submit review", err)
	}

	s.cfg.Log.Info("Review created successfully",
		"id", review.ID,
		"venue_id", venue.ID,
		"rating", review.Rating,
	)

	events.Emit(ctx, s.publisher, s.cfg.Log, events.Event{
		Type:   events.TypeReviewCreated,
		UserID: author.UserID,
		Payload: events.ReviewCreated{
			ReviewID: review.ID,
			VenueID:  venue.ID,
			UserID:   author.UserID,
			Rating:   review.Rating,
		},
	})

	return review, nil
}

func displayName(id *auth.Identity) string {
	if name := sanitizer.NormalizeName(id.FullName); name != "" {
		return name
	}
	if local, _, ok := strings.Cut(id.Email, "@"); ok && local != "" {
		return local
	}
	return "Guest"
}

func (s *venueService) SubmitVenueInquiry(ctx context.Context, venueID string, inquiry *model.Inquiry) error {
	venue, err := s.findVenue(ctx, venueID)
	if err != nil {
		return err
	}
	inquiry.VenueID = venue.ID
	inquiry.VenueName = venue.Name
	return s.submitInquiry(ctx, inquiry)
}

func (s *venueService) SubmitInquiry(ctx context.Context, inquiry *model.Inquiry) error {
	inquiry.VenueID = ""
	inquiry.VenueName = ""
	return s.submitInquiry(ctx, inquiry)
}

func (s *venueService) submitInquiry(ctx context.Context, inquiry *model.Inquiry) error {
	s.sanitizeInquiry(inquiry)
	inquiry.UserID = auth.UserID(ctx)

	if err := s.validator.ValidateInquiry(inquiry); err != nil {
		s.cfg.Log.Warn("Inquiry validation failed",
			"venue_id", inquiry.VenueID,
			"email", inquiry.Email,
			"error", err,
		)
		return validation.AppError("Inquiry validation failed", err)
	}

	if err := s.repos.Inquiries.Create(ctx, inquiry); err != nil {
		s.cfg.Log.Error("Failed to store inquiry",
			"venue_id", inquiry.VenueID,
			"email", inquiry.Email,
			"error", err,
		)
		return apperrors.Internal("Failed to send message", err)
	}

	s.cfg.Log.Info("Inquiry submitted",
		"id", inquiry.ID,
		"venue_id", inquiry.VenueID,
	)

	events.Emit(ctx, s.publisher, s.cfg.Log, events.Event{
		Type:   events.TypeInquirySubmitted,
		UserID: inquiry.UserID,
		Payload: events.InquirySubmitted{
			InquiryID: inquiry.ID,
			VenueID:   inquiry.VenueID,
			VenueName: inquiry.VenueName,
			UserID:    inquiry.UserID,
			Email:     inquiry.Email,
		},
	})

	return nil
}

func (s *venueService) sanitizeInquiry(inquiry *model.Inquiry) {
	inquiry.Name = sanitizer.NormalizeName(inquiry.Name)
	inquiry.Email = sanitizer.NormalizeEmail(inquiry.Email)
	inquiry.Phone = sanitizer.NormalizePhone(inquiry.Phone)
	inquiry.Date = strings.TrimSpace(inquiry.Date)
	inquiry.Message = sanitizer.NormalizeText(inquiry.Message)
}

func (s *venueService) findVenue(ctx context.Context, id string) (*model.Venue, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperrors.InvalidInput("Venue ID cannot be empty")
	}

	venue, err := s.repos.Venues.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Venue", id)
		}
		s.cfg.Log.Error("Failed to get venue by ID",
			"id", id,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve venue", err)
	}
	return venue, nil
}
