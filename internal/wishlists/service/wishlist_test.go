package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	wishlisterrors "venuehub/internal/wishlists/errors"
	"venuehub/internal/wishlists/validator"
	"venuehub/pkg/config"
	apperrors "venuehub/pkg/errors"
	"venuehub/pkg/events"
	"venuehub/pkg/logger"
	"venuehub/pkg/model"
)

type mockWishlistRepository struct {
	addFunc        func(ctx context.Context, item *model.WishlistItem) error
	findByUserFunc func(ctx context.Context, userID string) ([]*model.WishlistItem, error)
	removeFunc     func(ctx context.Context, userID, venueID string) error
}

func (m *mockWishlistRepository) Add(ctx context.Context, item *model.WishlistItem) error {
	if m.addFunc != nil {
		return m.addFunc(ctx, item)
	}
	item.ID = "665f1c2e9b1e8a0012345678"
	return nil
}

func (m *mockWishlistRepository) FindByUser(ctx context.Context, userID string) ([]*model.WishlistItem, error) {
	if m.findByUserFunc != nil {
		return m.findByUserFunc(ctx, userID)
	}
	return []*model.WishlistItem{}, nil
}

func (m *mockWishlistRepository) Remove(ctx context.Context, userID, venueID string) error {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, userID, venueID)
	}
	return nil
}

type mockVenueReader struct{}

func (mockVenueReader) FindByID(_ context.Context, id string) (*model.Venue, error) {
	if id != "seaside-villa" {
		return nil, fmt.Errorf("%w: %s", wishlisterrors.ErrVenueNotFound, id)
	}
	return &model.Venue{
		ID:     "seaside-villa",
		Name:   "Seaside Villa",
		City:   "Miami",
		Price:  7200,
		Images: model.Images{Main: "https://example.com/sv.jpg"},
	}, nil
}

func newService(repo *mockWishlistRepository, rec *events.Recorder) WishlistService {
	cfg := &config.Config{Log: logger.Discard()}
	return NewWishlistService(repo, mockVenueReader{}, validator.NewWishlistValidator(), rec, cfg)
}

func TestAdd(t *testing.T) {
	rec := &events.Recorder{}
	var stored *model.WishlistItem
	svc := newService(&mockWishlistRepository{
		addFunc: func(_ context.Context, item *model.WishlistItem) error {
			stored = item
			item.ID = "w1"
			return nil
		},
	}, rec)

	item, err := svc.Add(context.Background(), "user-1", &model.WishlistInput{VenueID: " Seaside-Villa "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == nil || stored.VenueID != "seaside-villa" || stored.UserID != "user-1" {
		t.Fatalf("unexpected stored item %+v", stored)
	}
	if item.VenueName != "Seaside Villa" || item.VenueCity != "Miami" || item.VenuePrice != 7200 || item.VenueImage == "" {
		t.Errorf("venue snapshot missing: %+v", item)
	}

	evs := rec.Events()
	if len(evs) != 1 || evs[0].Type != events.TypeWishlistAdded {
		t.Fatalf("unexpected events %v", rec.Types())
	}
	if p := evs[0].Payload.(events.WishlistChanged); p.VenueName != "Seaside Villa" {
		t.Errorf("unexpected payload %+v", p)
	}
}

func TestAdd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		venueID string
		addErr  error
		code    string
	}{
		{name: "anonymous", userID: "", venueID: "seaside-villa", code: apperrors.CodeUnauthorized},
		{name: "empty venue", userID: "user-1", venueID: "  ", code: apperrors.CodeValidation},
		{name: "unknown venue", userID: "user-1", venueID: "atlantis", code: apperrors.CodeNotFound},
		{
			name: "already saved", userID: "user-1", venueID: "seaside-villa",
			addErr: fmt.Errorf("%w: seaside-villa", wishlisterrors.ErrAlreadySaved),
			code:   apperrors.CodeConflict,
		},
		{
			name: "store failure", userID: "user-1", venueID: "seaside-villa",
			addErr: errors.New("connection reset"),
			code:   apperrors.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &events.Recorder{}
			svc := newService(&mockWishlistRepository{
				addFunc: func(context.Context, *model.WishlistItem) error { return tt.addErr },
			}, rec)

			_, err := svc.Add(context.Background(), tt.userID, &model.WishlistInput{VenueID: tt.venueID})
			if apperrors.AsAppError(err).Code != tt.code {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
			if len(rec.Events()) != 0 {
				t.Errorf("no event expected on failure, got %v", rec.Types())
			}
		})
	}
}

func TestRemove(t *testing.T) {
	rec := &events.Recorder{}
	var gotUser, gotVenue string
	svc := newService(&mockWishlistRepository{
		removeFunc: func(_ context.Context, userID, venueID string) error {
			gotUser, gotVenue = userID, venueID
			if venueID == "urban-loft" {
				return fmt.Errorf("%w: %s", wishlisterrors.ErrNotFound, venueID)
			}
			return nil
		},
	}, rec)

	if err := svc.Remove(context.Background(), "user-1", "seaside-villa"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUser != "user-1" || gotVenue != "seaside-villa" {
		t.Errorf("remove scoped to %s/%s", gotUser, gotVenue)
	}
	if got := rec.Types(); len(got) != 1 || got[0] != events.TypeWishlistRemoved {
		t.Errorf("unexpected events %v", got)
	}

	if err := svc.Remove(context.Background(), "user-1", "urban-loft"); apperrors.AsAppError(err).Code != apperrors.CodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
	if err := svc.Remove(context.Background(), "user-1", ""); apperrors.AsAppError(err).Code != apperrors.CodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestGetAll(t *testing.T) {
	svc := newService(&mockWishlistRepository{
		findByUserFunc: func(_ context.Context, userID string) ([]*model.WishlistItem, error) {
			if userID != "user-1" {
				t.Errorf("query scoped to %q", userID)
			}
			return []*model.WishlistItem{{VenueID: "seaside-villa"}}, nil
		},
	}, &events.Recorder{})

	items, err := svc.GetAll(context.Background(), "user-1")
	if err != nil || len(items) != 1 {
		t.Fatalf("items=%v err=%v", items, err)
	}

	if _, err := svc.GetAll(context.Background(), ""); apperrors.AsAppError(err).Code != apperrors.CodeUnauthorized {
		t.Errorf("expected UNAUTHORIZED, got %v", err)
	}
}
