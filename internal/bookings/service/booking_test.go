package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	bookingserrors "venuehub/internal/bookings/errors"
	"venuehub/internal/bookings/flow"
	"venuehub/internal/bookings/validator"
	"venuehub/pkg/auth"
	"venuehub/pkg/config"
	apperrors "venuehub/pkg/errors"
	"venuehub/pkg/events"
	"venuehub/pkg/logger"
	"venuehub/pkg/model"
	"venuehub/pkg/sealer"
)

type mockBookingRepository struct {
	createFunc          func(ctx context.Context, booking *model.Booking) error
	findByIDForUserFunc func(ctx context.Context, id, userID string) (*model.Booking, error)
	findByUserFunc      func(ctx context.Context, userID string, limit int, offset int64) ([]*model.Booking, error)
	countByUserFunc     func(ctx context.Context, userID string) (int64, error)
	deleteForUserFunc   func(ctx context.Context, id, userID string) (*model.Booking, error)
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = "665f1c2e9b1e8a0012345678"
	return nil
}

func (m *mockBookingRepository) FindByIDForUser(ctx context.Context, id, userID string) (*model.Booking, error) {
	if m.findByIDForUserFunc != nil {
		return m.findByIDForUserFunc(ctx, id, userID)
	}
	return nil, fmt.Errorf("%w: %s", bookingserrors.ErrNotFound, id)
}

func (m *mockBookingRepository) FindByUser(ctx context.Context, userID string, limit int, offset int64) ([]*model.Booking, error) {
	if m.findByUserFunc != nil {
		return m.findByUserFunc(ctx, userID, limit, offset)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	if m.countByUserFunc != nil {
		return m.countByUserFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockBookingRepository) DeleteForUser(ctx context.Context, id, userID string) (*model.Booking, error) {
	if m.deleteForUserFunc != nil {
		return m.deleteForUserFunc(ctx, id, userID)
	}
	return nil, fmt.Errorf("%w: %s", bookingserrors.ErrNotFound, id)
}

type mockVenueReader struct {
	findByIDFunc func(ctx context.Context, id string) (*model.Venue, error)
}

func (m *mockVenueReader) FindByID(ctx context.Context, id string) (*model.Venue, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	if id != "grand-palace" {
		return nil, fmt.Errorf("%w: %s", bookingserrors.ErrVenueNotFound, id)
	}
	return &model.Venue{
		ID:           "grand-palace",
		Name:         "The Grand Palace",
		City:         "New York",
		Price:        8500,
		Capacity:     model.Capacity{Min: 150, Max: 500},
		Availability: []string{"2024-06-15", "2024-06-22"},
		Images:       model.Images{Main: "https://example.com/gp.jpg"},
	}, nil
}

var (
	ada   = &auth.Identity{UserID: "user-1", Email: "Ada@Example.com", FullName: "Ada Lovelace"}
	grace = &auth.Identity{UserID: "user-2", Email: "grace@example.com", FullName: "Grace Hopper"}
)

type fixture struct {
	svc   BookingService
	repo  *mockBookingRepository
	store *flow.Store
	rec   *events.Recorder
}

func newFixture(t *testing.T, delay time.Duration) *fixture {
	t.Helper()
	s, err := sealer.New(base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{7}, 32)))
	if err != nil {
		t.Fatalf("sealer.New() error = %v", err)
	}
	cfg := &config.Config{
		Log:                    logger.Discard(),
		ReadTimeout:            5 * time.Second,
		WriteTimeout:           5 * time.Second,
		BookingSubmissionDelay: delay,
		BookingDepositRate:     0.2,
		DefaultGuestCount:      50,
	}
	store := flow.NewStore(time.Hour)
	t.Cleanup(store.Stop)

	f := &fixture{repo: &mockBookingRepository{}, store: store, rec: &events.Recorder{}}
	f.svc = NewBookingService(f.repo, &mockVenueReader{}, store, s, validator.NewBookingValidator(), f.rec, cfg)
	return f
}

func validDetails() flow.Details {
	return flow.Details{Date: "2024-06-15", Guests: 200, Name: "Ada Lovelace", Email: "ada@example.com", Phone: "(650) 253-0000"}
}

func TestStartFlow(t *testing.T) {
	f := newFixture(t, 0)

	t.Run("prefills from identity and defaults", func(t *testing.T) {
		view, err := f.svc.StartFlow(context.Background(), ada, "grand-palace")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Token == "" || view.Step != flow.StepDetails {
			t.Fatalf("unexpected view %+v", view)
		}
		if view.Details.Guests != 50 || view.Details.Name != "Ada Lovelace" || view.Details.Email != "ada@example.com" {
			t.Errorf("unexpected prefill %+v", view.Details)
		}
		if view.Details.Date != "" {
			t.Errorf("no date should be prefilled yet, got %s", view.Details.Date)
		}
	})

	t.Run("unknown venue", func(t *testing.T) {
		_, err := f.svc.StartFlow(context.Background(), ada, "atlantis")
		if apperrors.AsAppError(err).Code != apperrors.CodeNotFound {
			t.Fatalf("expected NOT_FOUND, got %v", err)
		}
	})

	t.Run("anonymous caller", func(t *testing.T) {
		_, err := f.svc.StartFlow(context.Background(), nil, "grand-palace")
		if apperrors.AsAppError(err).Code != apperrors.CodeUnauthorized {
			t.Fatalf("expected UNAUTHORIZED, got %v", err)
		}
	})
}

func TestSubmitDetails_MissingDate(t *testing.T) {
	f := newFixture(t, 0)
	view, _ := f.svc.StartFlow(context.Background(), ada, "grand-palace")

	_, err := f.svc.SubmitDetails(context.Background(), ada, view.Token, flow.Details{Guests: 200, Phone: "+16502530000"})

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation || appErr.Message != "Please select a date" {
		t.Fatalf("expected the select-a-date error, got %v", err)
	}
	if appErr.Details["description"] != "You need to select a date before proceeding." {
		t.Errorf("unexpected details %v", appErr.Details)
	}

	current, err := f.svc.GetFlow(context.Background(), ada, view.Token)
	if err != nil {
		t.Fatalf("GetFlow() error = %v", err)
	}
	if current.Step != flow.StepDetails {
		t.Errorf("step = %s, want details", current.Step)
	}
}

func TestSubmitDetails_ValidationFailures(t *testing.T) {
	f := newFixture(t, 0)
	view, _ := f.svc.StartFlow(context.Background(), ada, "grand-palace")

	tests := []struct {
		name    string
		details flow.Details
	}{
		{"unavailable date", flow.Details{Date: "2024-06-16", Guests: 200, Phone: "+16502530000"}},
		{"over capacity", flow.Details{Date: "2024-06-15", Guests: 900, Phone: "+16502530000"}},
		{"invalid phone", flow.Details{Date: "2024-06-15", Guests: 200, Phone: "12"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.SubmitDetails(context.Background(), ada, view.Token, tt.details)
			if apperrors.AsAppError(err).Code != apperrors.CodeValidation {
				t.Fatalf("expected VALIDATION_ERROR, got %v", err)
			}
		})
	}
}

func TestFullFlow(t *testing.T) {
	f := newFixture(t, 20*time.Millisecond)
	ctx := context.Background()

	view, err := f.svc.StartFlow(ctx, ada, "grand-palace")
	if err != nil {
		t.Fatalf("StartFlow() error = %v", err)
	}

	view, err = f.svc.SubmitDetails(ctx, ada, view.Token, validDetails())
	if err != nil {
		t.Fatalf("SubmitDetails() error = %v", err)
	}
	if view.Step != flow.StepPayment || view.Details.Phone != "+16502530000" {
		t.Fatalf("unexpected view after details %+v", view)
	}

	start := time.Now()
	view, err = f.svc.SubmitPayment(ctx, ada, view.Token)
	if err != nil {
		t.Fatalf("SubmitPayment() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("payment returned after %s, before the submission delay", elapsed)
	}
	if view.Step != flow.StepConfirmation || view.Booking == nil {
		t.Fatalf("unexpected view after payment %+v", view)
	}

	b := view.Booking
	if b.DepositPaid != 1700 || b.TotalPrice != 8500 || b.CheckOutDate != "2024-06-16" {
		t.Errorf("unexpected booking amounts/dates %+v", b)
	}
	if len(b.Reference) != 9 || b.Status != model.BookingStatusConfirmed || b.UserID != "user-1" {
		t.Errorf("unexpected booking %+v", b)
	}
	if got := f.rec.Types(); len(got) != 1 || got[0] != events.TypeBookingConfirmed {
		t.Fatalf("unexpected events %v", got)
	}
	if id := f.rec.Events()[0].ID; id != "booking.confirmed:665f1c2e9b1e8a0012345678" {
		t.Errorf("event id = %q, want one derived from the booking", id)
	}

	if _, err := f.svc.SubmitPayment(ctx, ada, view.Token); apperrors.AsAppError(err).Code != apperrors.CodeConflict {
		t.Errorf("confirmation must be terminal for payment, got %v", err)
	}
	if _, err := f.svc.Back(ctx, ada, view.Token); apperrors.AsAppError(err).Code != apperrors.CodeConflict {
		t.Errorf("confirmation must be terminal for back, got %v", err)
	}
	if _, err := f.svc.SubmitDetails(ctx, ada, view.Token, validDetails()); apperrors.AsAppError(err).Code != apperrors.CodeConflict {
		t.Errorf("confirmation must be terminal for details, got %v", err)
	}

	next, err := f.svc.StartFlow(ctx, ada, "grand-palace")
	if err != nil {
		t.Fatalf("StartFlow() error = %v", err)
	}
	if next.Details.Date != "2024-06-15" {
		t.Errorf("selected date not remembered, got %q", next.Details.Date)
	}
}

func TestBack(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	view, _ := f.svc.StartFlow(ctx, ada, "grand-palace")

	if _, err := f.svc.Back(ctx, ada, view.Token); apperrors.AsAppError(err).Code != apperrors.CodeConflict {
		t.Fatalf("back from details should conflict, got %v", err)
	}
	if _, err := f.svc.SubmitDetails(ctx, ada, view.Token, validDetails()); err != nil {
		t.Fatalf("SubmitDetails() error = %v", err)
	}
	back, err := f.svc.Back(ctx, ada, view.Token)
	if err != nil {
		t.Fatalf("Back() error = %v", err)
	}
	if back.Step != flow.StepDetails {
		t.Errorf("step = %s, want details", back.Step)
	}
}

func TestBack_ResubmitWithoutRequestsClearsThem(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	f.repo.createFunc = func(_ context.Context, b *model.Booking) error {
		b.ID = "665f1c2e9b1e8a0012345678"
		return nil
	}
	view, _ := f.svc.StartFlow(ctx, ada, "grand-palace")

	withRequests := validDetails()
	withRequests.SpecialRequests = "Vegan menu"
	if _, err := f.svc.SubmitDetails(ctx, ada, view.Token, withRequests); err != nil {
		t.Fatalf("SubmitDetails() error = %v", err)
	}
	back, err := f.svc.Back(ctx, ada, view.Token)
	if err != nil {
		t.Fatalf("Back() error = %v", err)
	}
	if back.Details.SpecialRequests != "Vegan menu" {
		t.Errorf("back should show the last submission, got %q", back.Details.SpecialRequests)
	}

	again, err := f.svc.SubmitDetails(ctx, ada, view.Token, validDetails())
	if err != nil {
		t.Fatalf("SubmitDetails() error = %v", err)
	}
	if again.Details.SpecialRequests != "" {
		t.Errorf("special requests = %q, want cleared", again.Details.SpecialRequests)
	}

	done, err := f.svc.SubmitPayment(ctx, ada, view.Token)
	if err != nil {
		t.Fatalf("SubmitPayment() error = %v", err)
	}
	if done.Booking == nil || done.Booking.SpecialRequests != "" {
		t.Errorf("booking carries stale special requests: %+v", done.Booking)
	}
}

func TestSubmitPayment_ConcurrentSubmissionsConflict(t *testing.T) {
	f := newFixture(t, 50*time.Millisecond)
	ctx := context.Background()

	var creates atomic.Int32
	f.repo.createFunc = func(_ context.Context, b *model.Booking) error {
		creates.Add(1)
		b.ID = "665f1c2e9b1e8a0012345678"
		return nil
	}

	view, _ := f.svc.StartFlow(ctx, ada, "grand-palace")
	if _, err := f.svc.SubmitDetails(ctx, ada, view.Token, validDetails()); err != nil {
		t.Fatalf("SubmitDetails() error = %v", err)
	}

	const attempts = 5
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.svc.SubmitPayment(ctx, ada, view.Token)
		}()
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case apperrors.AsAppError(err).Code == apperrors.CodeConflict:
			conflicts++
		default:
			t.Errorf("unexpected error %v", err)
		}
	}
	if ok != 1 || conflicts != attempts-1 {
		t.Errorf("ok=%d conflicts=%d", ok, conflicts)
	}
	if creates.Load() != 1 {
		t.Errorf("booking stored %d times", creates.Load())
	}
}

func TestSubmitPayment_CancelledContextLeavesStep(t *testing.T) {
	f := newFixture(t, time.Second)
	view, _ := f.svc.StartFlow(context.Background(), ada, "grand-palace")
	if _, err := f.svc.SubmitDetails(context.Background(), ada, view.Token, validDetails()); err != nil {
		t.Fatalf("SubmitDetails() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := f.svc.SubmitPayment(ctx, ada, view.Token); apperrors.AsAppError(err).Code != apperrors.CodeTimeout {
		t.Fatalf("expected TIMEOUT, got %v", err)
	}

	current, _ := f.svc.GetFlow(context.Background(), ada, view.Token)
	if current.Step != flow.StepPayment || current.Processing {
		t.Errorf("flow should be back to an idle payment step, got %+v", current)
	}
	if len(f.rec.Events()) != 0 {
		t.Errorf("no event expected")
	}
}

func TestSubmitPayment_RetriesReferenceCollision(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	var calls int
	f.repo.createFunc = func(_ context.Context, b *model.Booking) error {
		calls++
		if calls == 1 {
			return fmt.Errorf("%w: %s", bookingserrors.ErrDuplicateReference, b.Reference)
		}
		b.ID = "665f1c2e9b1e8a0012345678"
		return nil
	}

	view, _ := f.svc.StartFlow(ctx, ada, "grand-palace")
	_, _ = f.svc.SubmitDetails(ctx, ada, view.Token, validDetails())
	if _, err := f.svc.SubmitPayment(ctx, ada, view.Token); err != nil {
		t.Fatalf("SubmitPayment() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("Create called %d times, want 2", calls)
	}
}

func TestSubmitPayment_StoreFailureAllowsRetry(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	f.repo.createFunc = func(context.Context, *model.Booking) error { return errors.New("no primary") }

	view, _ := f.svc.StartFlow(ctx, ada, "grand-palace")
	_, _ = f.svc.SubmitDetails(ctx, ada, view.Token, validDetails())

	if _, err := f.svc.SubmitPayment(ctx, ada, view.Token); apperrors.AsAppError(err).Code != apperrors.CodeInternal {
		t.Fatalf("expected INTERNAL_ERROR, got %v", err)
	}

	f.repo.createFunc = nil
	confirmed, err := f.svc.SubmitPayment(ctx, ada, view.Token)
	if err != nil || confirmed.Step != flow.StepConfirmation {
		t.Fatalf("retry failed: %v %+v", err, confirmed)
	}
}

func TestFlowTokens(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	view, _ := f.svc.StartFlow(ctx, ada, "grand-palace")

	tests := []struct {
		name  string
		user  *auth.Identity
		token string
		code  string
	}{
		{"owner", ada, view.Token, ""},
		{"another user", grace, view.Token, apperrors.CodeNotFound},
		{"forged token", ada, "bm90LWEtdG9rZW4", apperrors.CodeNotFound},
		{"anonymous", nil, view.Token, apperrors.CodeUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.GetFlow(ctx, tt.user, tt.token)
			if tt.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if apperrors.AsAppError(err).Code != tt.code {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestGetAll_ScopedAndNormalized(t *testing.T) {
	f := newFixture(t, 0)
	var gotUser string
	var gotLimit int
	f.repo.findByUserFunc = func(_ context.Context, userID string, limit int, _ int64) ([]*model.Booking, error) {
		gotUser, gotLimit = userID, limit
		return []*model.Booking{{ID: "b2"}, {ID: "b1"}}, nil
	}
	f.repo.countByUserFunc = func(context.Context, string) (int64, error) { return 2, nil }

	bookings, count, err := f.svc.GetAll(context.Background(), "user-1", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUser != "user-1" || gotLimit != 10 || count != 2 || len(bookings) != 2 {
		t.Errorf("user=%s limit=%d count=%d len=%d", gotUser, gotLimit, count, len(bookings))
	}

	if _, _, err := f.svc.GetAll(context.Background(), "", 10, 0); apperrors.AsAppError(err).Code != apperrors.CodeUnauthorized {
		t.Errorf("expected UNAUTHORIZED for anonymous caller, got %v", err)
	}
}

func TestGetByID_ErrorMapping(t *testing.T) {
	f := newFixture(t, 0)

	tests := []struct {
		name    string
		repoErr error
		code    string
	}{
		{"not found", fmt.Errorf("%w: x", bookingserrors.ErrNotFound), apperrors.CodeNotFound},
		{"invalid id", fmt.Errorf("%w: x", bookingserrors.ErrInvalidID), apperrors.CodeInvalidInput},
		{"store failure", errors.New("timeout"), apperrors.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.repo.findByIDForUserFunc = func(context.Context, string, string) (*model.Booking, error) {
				return nil, tt.repoErr
			}
			if _, err := f.svc.GetByID(context.Background(), "user-1", "x"); apperrors.AsAppError(err).Code != tt.code {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	f := newFixture(t, 0)
	var gotID, gotUser string
	f.repo.deleteForUserFunc = func(_ context.Context, id, userID string) (*model.Booking, error) {
		gotID, gotUser = id, userID
		return &model.Booking{ID: id, Reference: "K7Q2ZP41M", VenueID: "grand-palace", VenueName: "The Grand Palace"}, nil
	}

	if err := f.svc.Cancel(context.Background(), "user-1", "665f1c2e9b1e8a0012345678"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "665f1c2e9b1e8a0012345678" || gotUser != "user-1" {
		t.Errorf("delete scoped to %s/%s", gotID, gotUser)
	}
	evs := f.rec.Events()
	if len(evs) != 1 || evs[0].Type != events.TypeBookingCancelled {
		t.Fatalf("unexpected events %v", evs)
	}
	if p := evs[0].Payload.(events.BookingCancelled); p.Reference != "K7Q2ZP41M" {
		t.Errorf("unexpected payload %+v", p)
	}

	f.repo.deleteForUserFunc = nil
	if err := f.svc.Cancel(context.Background(), "user-1", "665f1c2e9b1e8a0012345678"); apperrors.AsAppError(err).Code != apperrors.CodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestReceipt(t *testing.T) {
	f := newFixture(t, 0)
	f.repo.findByIDForUserFunc = func(_ context.Context, id, _ string) (*model.Booking, error) {
		return &model.Booking{
			ID: id, Reference: "K7Q2ZP41M", VenueName: "The Grand Palace",
			CheckInDate: "2024-06-15", CheckOutDate: "2024-06-16", Guests: 200,
			TotalPrice: 8500, DepositPaid: 1700, Status: model.BookingStatusConfirmed,
		}, nil
	}

	doc, name, err := f.svc.Receipt(context.Background(), "user-1", "665f1c2e9b1e8a0012345678")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "booking-K7Q2ZP41M.pdf" || !bytes.HasPrefix(doc, []byte("%PDF-")) {
		t.Errorf("unexpected receipt %s (%d bytes)", name, len(doc))
	}
}
