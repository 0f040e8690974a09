package flow

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"time"

	"venuehub/pkg/model"
)

const (
	ReferenceLength   = 9
	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewReference returns a random booking reference such as "K7Q2ZP41M".
func NewReference() (string, error) {
	base := big.NewInt(int64(len(referenceAlphabet)))
	ref := make([]byte, ReferenceLength)
	for i := range ref {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			return "", fmt.Errorf("failed to generate booking reference: %w", err)
		}
		ref[i] = referenceAlphabet[n.Int64()]
	}
	return string(ref), nil
}

// Deposit is the share of total paid up front, rounded to cents.
func Deposit(total, rate float64) float64 {
	return math.Round(total*rate*100) / 100
}

// CheckOut is the day after checkIn. The venue is booked for a single day.
func CheckOut(checkIn string) (string, error) {
	day, err := time.Parse(time.DateOnly, checkIn)
	if err != nil {
		return "", fmt.Errorf("invalid check-in date %q: %w", checkIn, err)
	}
	return day.AddDate(0, 0, 1).Format(time.DateOnly), nil
}

// Confirmed builds the confirmed booking row for a paid flow.
func Confirmed(userID string, venue Venue, d Details, depositRate float64, reference string) (*model.Booking, error) {
	checkOut, err := CheckOut(d.Date)
	if err != nil {
		return nil, err
	}
	return &model.Booking{
		UserID:          userID,
		VenueID:         venue.ID,
		VenueName:       venue.Name,
		VenueImage:      venue.Image,
		VenueCity:       venue.City,
		CheckInDate:     d.Date,
		CheckOutDate:    checkOut,
		Guests:          d.Guests,
		TotalPrice:      venue.Price,
		DepositPaid:     Deposit(venue.Price, depositRate),
		Reference:       reference,
		Status:          model.BookingStatusConfirmed,
		ContactName:     d.Name,
		ContactEmail:    d.Email,
		ContactPhone:    d.Phone,
		SpecialRequests: d.SpecialRequests,
	}, nil
}
