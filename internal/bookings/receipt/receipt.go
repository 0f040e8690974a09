// Package receipt renders the booking confirmation PDF.
package receipt

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"venuehub/pkg/model"

	"github.com/phpdave11/gofpdf"
)

const (
	ContentType = "application/pdf"

	// balanceLeadDays is how long before the event the remaining balance is due.
	balanceLeadDays = 30
)

// Filename is the download name of a booking's receipt.
func Filename(b *model.Booking) string {
	return "booking-" + b.Reference + ".pdf"
}

// Render produces the confirmation document for b. issued is printed as the
// document date.
func Render(b *model.Booking, issued time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking confirmation "+b.Reference, false)
	pdf.SetCreator("venuehub", false)
	pdf.SetCreationDate(issued)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Reference : "+b.Reference)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued    : "+issued.UTC().Format("2006-01-02 15:04 MST"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Status    : "+strings.ToUpper(b.Status))
	pdf.Ln(10)

	section(pdf, "Venue")
	line(pdf, tr(b.VenueName))
	if b.VenueCity != "" {
		line(pdf, tr(b.VenueCity))
	}
	pdf.Ln(3)

	section(pdf, "Event")
	line(pdf, "Check-in  : "+formatDate(b.CheckInDate))
	line(pdf, "Check-out : "+formatDate(b.CheckOutDate))
	line(pdf, fmt.Sprintf("Guests    : %d", b.Guests))
	pdf.Ln(3)

	section(pdf, "Contact")
	line(pdf, tr(b.ContactName))
	line(pdf, b.ContactEmail)
	line(pdf, b.ContactPhone)
	if b.SpecialRequests != "" {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 6, tr("Special requests: "+b.SpecialRequests), "", "", false)
	}
	pdf.Ln(3)

	section(pdf, "Payment")
	balance := b.TotalPrice - b.DepositPaid
	line(pdf, "Venue price  : "+FormatUSD(b.TotalPrice))
	line(pdf, "Deposit paid : "+FormatUSD(b.DepositPaid))
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Balance due  : "+FormatUSD(balance))
	pdf.Ln(10)

	if due, ok := BalanceDueDate(b.CheckInDate); ok && balance > 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, fmt.Sprintf("The remaining balance is due by %s, %d days before your event.", due.Format("January 2, 2006"), balanceLeadDays), "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func line(pdf *gofpdf.Fpdf, s string) {
	pdf.Cell(0, 6, s)
	pdf.Ln(6)
}

// BalanceDueDate is the day the balance falls due for an event on checkIn.
func BalanceDueDate(checkIn string) (time.Time, bool) {
	day, err := time.Parse(time.DateOnly, checkIn)
	if err != nil {
		return time.Time{}, false
	}
	return day.AddDate(0, 0, -balanceLeadDays), true
}

func formatDate(date string) string {
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return day.Format("Monday, January 2, 2006")
}

// FormatUSD renders an amount as "$8,500.00".
func FormatUSD(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole, cents, _ := strings.Cut(strconv.FormatFloat(amount, 'f', 2, 64), ".")

	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}
	return sign + "$" + grouped.String() + "." + cents
}
