// Package flow implements the three step booking flow:
// details, then payment, then confirmation. Confirmation is terminal.
package flow

import (
	"errors"
	"strings"
	"sync"
	"time"

	"venuehub/pkg/model"
)

type Step string

const (
	StepDetails      Step = "details"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

var (
	ErrDateRequired      = errors.New("date is required")
	ErrInvalidTransition = errors.New("transition not allowed from the current step")
	ErrPaymentInProgress = errors.New("payment already in progress")
)

// Venue is the part of a venue the flow shows and copies onto the booking.
type Venue struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Image        string         `json:"image"`
	City         string         `json:"city"`
	Price        float64        `json:"price"`
	Capacity     model.Capacity `json:"capacity"`
	Availability []string       `json:"availability"`
}

func VenueFrom(v *model.Venue) Venue {
	return Venue{
		ID:           v.ID,
		Name:         v.Name,
		Image:        v.Images.Main,
		City:         v.City,
		Price:        v.Price,
		Capacity:     v.Capacity,
		Availability: append([]string(nil), v.Availability...),
	}
}

// Details are the fields collected on the first step.
type Details struct {
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Guests          int    `json:"guests" validate:"required,min=1"`
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,e164"`
	SpecialRequests string `json:"special_requests,omitempty" validate:"max=1000"`
}

// Flow is one booking session. Its methods are safe for concurrent use.
type Flow struct {
	mu sync.Mutex

	id        string
	userID    string
	venue     Venue
	step      Step
	details   Details
	paying    bool
	booking   *model.Booking
	createdAt time.Time
	updatedAt time.Time
	seenAt    time.Time
}

// Prefill seeds a new flow's details.
type Prefill struct {
	Name   string
	Email  string
	Date   string
	Guests int
}

func New(id, userID string, venue Venue, prefill Prefill, now time.Time) *Flow {
	return &Flow{
		id:     id,
		userID: userID,
		venue:  venue,
		step:   StepDetails,
		details: Details{
			Date:   prefill.Date,
			Guests: prefill.Guests,
			Name:   prefill.Name,
			Email:  prefill.Email,
		},
		createdAt: now,
		updatedAt: now,
	}
}

func (f *Flow) ID() string { return f.id }

func (f *Flow) UserID() string { return f.userID }

// SubmitDetails replaces the flow's details with in and, when they have a
// date and pass validate, moves the flow to payment. The prefill only seeds
// the first view. On any error the flow is unchanged.
func (f *Flow) SubmitDetails(in Details, validate func(Details) error, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepDetails {
		return ErrInvalidTransition
	}

	if strings.TrimSpace(in.Date) == "" {
		return ErrDateRequired
	}
	if validate != nil {
		if err := validate(in); err != nil {
			return err
		}
	}

	f.details = in
	f.step = StepPayment
	f.updatedAt = now
	return nil
}

// Back returns from payment to details. No other backward move exists.
func (f *Flow) Back(now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepPayment || f.paying {
		return ErrInvalidTransition
	}
	f.step = StepDetails
	f.updatedAt = now
	return nil
}

// BeginPayment claims the flow's single payment slot and returns the details
// to book with. Every successful call must be followed by CompletePayment or
// AbortPayment.
func (f *Flow) BeginPayment() (Details, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepPayment {
		return Details{}, ErrInvalidTransition
	}
	if f.paying {
		return Details{}, ErrPaymentInProgress
	}
	f.paying = true
	return f.details, nil
}

func (f *Flow) CompletePayment(b *model.Booking, now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.paying = false
	f.booking = b
	f.step = StepConfirmation
	f.updatedAt = now
}

func (f *Flow) AbortPayment() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.paying = false
}

// View is the JSON shape of a flow.
type View struct {
	Token      string         `json:"token,omitempty"`
	Step       Step           `json:"step"`
	Processing bool           `json:"processing"`
	Venue      Venue          `json:"venue"`
	Details    Details        `json:"details"`
	TotalPrice float64        `json:"total_price"`
	Booking    *model.Booking `json:"booking,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (f *Flow) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()

	return View{
		Step:       f.step,
		Processing: f.paying,
		Venue:      f.venue,
		Details:    f.details,
		TotalPrice: f.venue.Price,
		Booking:    f.booking,
		CreatedAt:  f.createdAt,
		UpdatedAt:  f.updatedAt,
	}
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

func (f *Flow) Venue() Venue {
	return f.venue
}

// Touch records a read so an open flow is not expired while it is viewed.
func (f *Flow) Touch(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if now.After(f.seenAt) {
		f.seenAt = now
	}
}

func (f *Flow) lastTouched() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seenAt.After(f.updatedAt) {
		return f.seenAt
	}
	return f.updatedAt
}

// busy reports whether a payment is running, which keeps the flow alive
// past its TTL until the payment settles.
func (f *Flow) busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paying
}
