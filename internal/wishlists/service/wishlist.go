package service

import (
	"context"
	"errors"

	wishlisterrors "venuehub/internal/wishlists/errors"
	"venuehub/internal/wishlists/repository"
	"venuehub/internal/wishlists/validator"
	"venuehub/pkg/config"
	apperrors "venuehub/pkg/errors"
	"venuehub/pkg/events"
	"venuehub/pkg/model"
	"venuehub/pkg/sanitizer"
	"venuehub/pkg/validation"
)

type WishlistService interface {
	GetAll(ctx context.Context, userID string) ([]*model.WishlistItem, error)
	Add(ctx context.Context, userID string, input *model.WishlistInput) (*model.WishlistItem, error)
	Remove(ctx context.Context, userID, venueID string) error
}

type wishlistService struct {
	repo      repository.WishlistRepository
	venues    repository.VenueReader
	validator *validator.WishlistValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewWishlistService(
	repo repository.WishlistRepository,
	venues repository.VenueReader,
	validator *validator.WishlistValidator,
	publisher events.Publisher,
	cfg *config.Config,
) WishlistService {
	return &wishlistService{
		repo:      repo,
		venues:    venues,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *wishlistService) GetAll(ctx context.Context, userID string) ([]*model.WishlistItem, error) {
	if userID == "" {
		return nil, apperrors.Unauthorized("Authentication required")
	}

	items, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		s.cfg.Log.Error("Failed to get wishlist", "user_id", userID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve wishlist", err)
	}
	return items, nil
}

// Add saves a venue for the user with a snapshot of its listing fields.
func (s *wishlistService) Add(ctx context.Context, userID string, input *model.WishlistInput) (*model.WishlistItem, error) {
	if userID == "" {
		return nil, apperrors.Unauthorized("Authentication required")
	}

	item := &model.WishlistItem{
		UserID:  userID,
		VenueID: sanitizer.Slug(input.VenueID),
	}
	if err := s.validator.ValidateItem(item); err != nil {
		s.cfg.Log.Warn("Wishlist item validation failed",
			"user_id", userID,
			"venue_id", input.VenueID,
			"error", err,
		)
		return nil, validation.AppError("Wishlist item validation failed", err)
	}

	venue, err := s.venues.FindByID(ctx, item.VenueID)
	if err != nil {
		if errors.Is(err, wishlisterrors.ErrVenueNotFound) {
			return nil, apperrors.NotFoundWithID("Venue", item.VenueID)
		}
		s.cfg.Log.Error("Failed to load venue for wishlist", "venue_id", item.VenueID, "error", err)
		return nil, apperrors.Internal("Failed to add to wishlist", err)
	}
	item.VenueName = venue.Name
	item.VenueImage = venue.Images.Main
	item.VenueCity = venue.City
	item.VenuePrice = venue.Price

	if err := s.repo.Add(ctx, item); err != nil {
		if errors.Is(err, wishlisterrors.ErrAlreadySaved) {
			return nil, apperrors.Conflict("Venue is already in your wishlist").
				WithDetail("venue_id", item.VenueID)
		}
		s.cfg.Log.Error("Failed to add wishlist item",
			"user_id", userID,
			"venue_id", item.VenueID,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to add to wishlist", err)
	}

	s.cfg.Log.Info("Venue added to wishlist", "user_id", userID, "venue_id", item.VenueID)

	events.Emit(ctx, s.publisher, s.cfg.Log, events.Event{
		Type:   events.TypeWishlistAdded,
		UserID: userID,
		Payload: events.WishlistChanged{
			UserID:    userID,
			VenueID:   item.VenueID,
			VenueName: item.VenueName,
		},
	})
	return item, nil
}

func (s *wishlistService) Remove(ctx context.Context, userID, venueID string) error {
	if userID == "" {
		return apperrors.Unauthorized("Authentication required")
	}
	venueID = sanitizer.Slug(venueID)
	if venueID == "" {
		return apperrors.InvalidInput("Venue ID cannot be empty")
	}

	if err := s.repo.Remove(ctx, userID, venueID); err != nil {
		if errors.Is(err, wishlisterrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Wishlist item", venueID)
		}
		s.cfg.Log.Error("Failed to remove wishlist item",
			"user_id", userID,
			"venue_id", venueID,
			"error", err,
		)
		return apperrors.Internal("Failed to remove from wishlist", err)
	}

	s.cfg.Log.Info("Venue removed from wishlist", "user_id", userID, "venue_id", venueID)

	events.Emit(ctx, s.publisher, s.cfg.Log, events.Event{
		Type:   events.TypeWishlistRemoved,
		UserID: userID,
		Payload: events.WishlistChanged{
			UserID:  userID,
			VenueID: venueID,
		},
	})
	return nil
}
