package services

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// Messenger is the external SMS collaborator. The core composes the text
// and hands it over; delivery, retries and user prompts are not its
// business.
type Messenger interface {
	Send(ctx context.Context, to, message string) error
}

var ErrNoPhone = errors.New("booking has no phone number")

// LogMessenger logs instead of sending. Default until a real transport is
// plugged in.
type LogMessenger struct{}

func (LogMessenger) Send(_ context.Context, to, message string) error {
	log.Printf("sms to %s: %s", to, message)
	return nil
}

// SMSService sends a payment summary for a booking to its guest.
type SMSService struct {
	Rooms     *RoomService
	Bookings  *BookingService
	Messenger Messenger
}

func NewSMSService(rooms *RoomService, bookings *BookingService, messenger Messenger) *SMSService {
	return &SMSService{Rooms: rooms, Bookings: bookings, Messenger: messenger}
}

// SendPaymentSummary texts the booking's guest the stay dates and derived
// payment status. Returns (false, nil) when the booking is absent and
// ErrNoPhone when it has no phone on file.
func (s *SMSService) SendPaymentSummary(ctx context.Context, bookingID string) (bool, error) {
	booking := s.Bookings.GetByID(ctx, bookingID)
	if booking == nil {
		return false, nil
	}
	if booking.Phone == "" {
		return true, ErrNoPhone
	}

	roomNumber := booking.RoomID
	if room := s.Rooms.GetByID(ctx, booking.RoomID); room != nil {
		roomNumber = room.Number
	}

	message := fmt.Sprintf("Room %s: %s to %s, paid %.2f of %.2f (%s)",
		roomNumber, booking.CheckIn, booking.CheckOut,
		booking.PaidAmount, booking.TotalAmount, booking.PaymentStatus(),
	)
	if err := s.Messenger.Send(ctx, booking.Phone, message); err != nil {
		return true, fmt.Errorf("send sms: %w", err)
	}
	return true, nil
}
