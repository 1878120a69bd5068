package models

import (
	"math"
	"regexp"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ymdPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Booking struct {
	ID        string `json:"id"`
	RoomID    string `json:"roomId"`
	GuestName string `json:"guestName"`
	Phone     string `json:"phone,omitempty"`

	// Calendar dates in YYYY-MM-DD form, no time component.
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`

	TotalAmount float64 `json:"totalAmount"`
	PaidAmount  float64 `json:"paidAmount"`
	Notes       string  `json:"notes,omitempty"`

	// Most-recently-added first.
	PhotoURIs []string `json:"photoUris,omitempty"`

	// Opaque token of an externally scheduled checkout reminder. Stored and
	// cleared at the caller's direction only; never validated here.
	CheckoutNotificationID string `json:"checkoutNotificationId,omitempty"`
}

// ParseDate parses a YYYY-MM-DD calendar date. Longer strings are accepted
// by taking the first ten characters, so full ISO timestamps degrade to
// their date part.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		s = s[:10]
	}
	if !ymdPattern.MatchString(s) {
		return time.Time{}, &ValidationError{Field: "date", Message: "expected YYYY-MM-DD"}
	}
	return time.Parse(DateLayout, s)
}

func ValidateBooking(b Booking) error {
	if strings.TrimSpace(b.GuestName) == "" {
		return &ValidationError{Field: "guestName", Message: "guest name is required"}
	}
	checkIn, err := ParseDate(b.CheckIn)
	if err != nil {
		return &ValidationError{Field: "checkIn", Message: "invalid check-in date, expected YYYY-MM-DD"}
	}
	checkOut, err := ParseDate(b.CheckOut)
	if err != nil {
		return &ValidationError{Field: "checkOut", Message: "invalid check-out date, expected YYYY-MM-DD"}
	}
	if !checkOut.After(checkIn) {
		return &ValidationError{Field: "checkOut", Message: "check-out must be later than check-in"}
	}
	if err := validateAmount("totalAmount", b.TotalAmount); err != nil {
		return err
	}
	if err := validateAmount("paidAmount", b.PaidAmount); err != nil {
		return err
	}
	if b.PaidAmount > b.TotalAmount {
		return &ValidationError{Field: "paidAmount", Message: "paid amount cannot exceed total amount"}
	}
	return nil
}

func validateAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Message: "amount must be a finite number"}
	}
	if v < 0 {
		return &ValidationError{Field: field, Message: "amount cannot be negative"}
	}
	return nil
}

type PaymentStatus string

const (
	PaymentNoAmountDue PaymentStatus = "NO_AMOUNT_DUE"
	PaymentUnpaid      PaymentStatus = "UNPAID"
	PaymentFullyPaid   PaymentStatus = "FULLY_PAID"
	PaymentPartial     PaymentStatus = "PARTIAL"
)

// ClassifyPayment derives the payment label from the two stored amounts.
// It is never persisted.
func ClassifyPayment(total, paid float64) PaymentStatus {
	switch {
	case total == 0:
		return PaymentNoAmountDue
	case paid <= 0:
		return PaymentUnpaid
	case paid >= total:
		return PaymentFullyPaid
	default:
		return PaymentPartial
	}
}

// PaymentStatus reports the derived payment label for the booking.
func (b Booking) PaymentStatus() PaymentStatus {
	return ClassifyPayment(b.TotalAmount, b.PaidAmount)
}

var phoneKeep = regexp.MustCompile(`[^\d+]`)

// NormalizePhone keeps digits and a leading plus, dropping separators and
// anything else a contact picker may hand over.
func NormalizePhone(raw string) string {
	return phoneKeep.ReplaceAllString(strings.TrimSpace(raw), "")
}
