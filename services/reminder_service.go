package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"frontdesk/models"
)

// ReminderScheduler is the external checkout-reminder collaborator (the
// OS notification scheduler in the mobile app). The core only stores the
// returned token; it never owns or validates the scheduled resource.
type ReminderScheduler interface {
	// Schedule books a reminder on the checkout day and returns an opaque
	// token usable with Cancel. checkOutDate is YYYY-MM-DD.
	Schedule(ctx context.Context, roomNumber, checkOutDate string) (string, error)
	Cancel(ctx context.Context, notificationID string) error
}

var ErrReminderInPast = errors.New("reminder trigger is in the past")

// LogReminderScheduler is the default scheduler: it validates the trigger,
// logs, and hands back a fresh token. Actual delivery belongs to the
// platform collaborator that replaces it.
type LogReminderScheduler struct {
	Hour   int // local trigger time on the checkout day
	Minute int
	Now    func() time.Time // nil means time.Now
}

func (s *LogReminderScheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *LogReminderScheduler) Schedule(_ context.Context, roomNumber, checkOutDate string) (string, error) {
	day, err := models.ParseDate(checkOutDate)
	if err != nil {
		return "", fmt.Errorf("invalid checkout date %q: %w", checkOutDate, err)
	}
	trigger := time.Date(day.Year(), day.Month(), day.Day(), s.Hour, s.Minute, 0, 0, time.Local)
	if !trigger.After(s.now()) {
		return "", ErrReminderInPast
	}

	id := uuid.NewString()
	log.Printf("reminder %s: room %s checkout at %s", id, roomNumber, trigger.Format(time.RFC3339))
	return id, nil
}

func (s *LogReminderScheduler) Cancel(_ context.Context, notificationID string) error {
	log.Printf("reminder %s: cancelled", notificationID)
	return nil
}

// CheckoutReminderService ties a booking to its checkout reminder: it asks
// the scheduler for a token and stores it on the booking, and clears the
// token when the reminder is cancelled. It exists because the repositories
// themselves never talk to collaborators.
type CheckoutReminderService struct {
	Rooms     *RoomService
	Bookings  *BookingService
	Scheduler ReminderScheduler
}

func NewCheckoutReminderService(rooms *RoomService, bookings *BookingService, scheduler ReminderScheduler) *CheckoutReminderService {
	return &CheckoutReminderService{Rooms: rooms, Bookings: bookings, Scheduler: scheduler}
}

// Schedule books a reminder for the booking's checkout date and stores the
// token. An already-stored reminder is cancelled first so the booking
// never references two. Returns nil when the booking is absent.
func (s *CheckoutReminderService) Schedule(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking := s.Bookings.GetByID(ctx, bookingID)
	if booking == nil {
		return nil, nil
	}

	if booking.CheckoutNotificationID != "" {
		if err := s.Scheduler.Cancel(ctx, booking.CheckoutNotificationID); err != nil {
			log.Printf("warning: failed to cancel reminder %s: %v", booking.CheckoutNotificationID, err)
		}
	}

	roomNumber := booking.RoomID
	if room := s.Rooms.GetByID(ctx, booking.RoomID); room != nil {
		roomNumber = room.Number
	}

	notificationID, err := s.Scheduler.Schedule(ctx, roomNumber, booking.CheckOut)
	if err != nil {
		return nil, err
	}
	return s.Bookings.SetReminder(ctx, bookingID, notificationID)
}

// Cancel cancels the booking's reminder, if any, and clears the token.
// Cancel failures at the collaborator are logged, not propagated: the
// token is cleared either way so the booking does not keep pointing at a
// reminder the user asked to drop.
func (s *CheckoutReminderService) Cancel(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking := s.Bookings.GetByID(ctx, bookingID)
	if booking == nil {
		return nil, nil
	}
	if booking.CheckoutNotificationID == "" {
		return booking, nil
	}
	if err := s.Scheduler.Cancel(ctx, booking.CheckoutNotificationID); err != nil {
		log.Printf("warning: failed to cancel reminder %s: %v", booking.CheckoutNotificationID, err)
	}
	return s.Bookings.ClearReminder(ctx, bookingID)
}
