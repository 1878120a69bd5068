package services

import (
	"context"
	"strconv"

	"frontdesk/models"
	"frontdesk/storage"
)

// BookingService persists bookings as one JSON collection, same
// read-full/modify/write-full discipline as RoomService. The roomId on a
// booking is a weak reference: nothing here checks that the room exists.
type BookingService struct {
	Store storage.Store
}

func NewBookingService(store storage.Store) *BookingService {
	return &BookingService{Store: store}
}

func (s *BookingService) ListAll(ctx context.Context) []models.Booking {
	return storage.LoadList[models.Booking](ctx, s.Store, storage.BookingsKey)
}

func (s *BookingService) GetByID(ctx context.Context, id string) *models.Booking {
	for _, b := range s.ListAll(ctx) {
		if b.ID == id {
			booking := b
			return &booking
		}
	}
	return nil
}

func (s *BookingService) Upsert(ctx context.Context, booking models.Booking) error {
	bookings := s.ListAll(ctx)
	replaced := false
	for i := range bookings {
		if bookings[i].ID == booking.ID {
			bookings[i] = booking
			replaced = true
			break
		}
	}
	if !replaced {
		bookings = append(bookings, booking)
	}
	return storage.SaveList(ctx, s.Store, storage.BookingsKey, bookings)
}

// Delete removes the booking. A scheduled checkout reminder is NOT
// cancelled here; that is the caller's obligation (see
// CheckoutReminderService).
func (s *BookingService) Delete(ctx context.Context, id string) error {
	bookings := s.ListAll(ctx)
	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID != id {
			filtered = append(filtered, b)
		}
	}
	return storage.SaveList(ctx, s.Store, storage.BookingsKey, filtered)
}

// ActiveBookingForRoom returns the most recently created booking for the
// room, or nil when the room has none. "Most recently created" means the
// numerically greatest id (ids are unix-milli creation timestamps), not
// the booking whose date range contains today. Ids that do not parse as
// integers are skipped rather than compared lexicographically.
func (s *BookingService) ActiveBookingForRoom(ctx context.Context, roomID string) *models.Booking {
	var (
		best   *models.Booking
		bestID int64
	)
	for _, b := range s.ListAll(ctx) {
		if b.RoomID != roomID {
			continue
		}
		n, err := strconv.ParseInt(b.ID, 10, 64)
		if err != nil {
			continue
		}
		if best == nil || n > bestID {
			booking := b
			best = &booking
			bestID = n
		}
	}
	return best
}

// AddPhoto prepends uri to the booking's photo list and persists the
// booking. Returns the updated booking, or nil when the booking is absent.
// URIs are opaque; no deduplication or validation happens here.
func (s *BookingService) AddPhoto(ctx context.Context, bookingID, uri string) (*models.Booking, error) {
	booking := s.GetByID(ctx, bookingID)
	if booking == nil {
		return nil, nil
	}
	booking.PhotoURIs = append([]string{uri}, booking.PhotoURIs...)
	if err := s.Upsert(ctx, *booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// RemovePhoto filters uri out of the booking's photo list, preserving the
// order of the rest, and persists the booking. Returns the updated
// booking, or nil when the booking is absent.
func (s *BookingService) RemovePhoto(ctx context.Context, bookingID, uri string) (*models.Booking, error) {
	booking := s.GetByID(ctx, bookingID)
	if booking == nil {
		return nil, nil
	}
	filtered := make([]string, 0, len(booking.PhotoURIs))
	for _, u := range booking.PhotoURIs {
		if u != uri {
			filtered = append(filtered, u)
		}
	}
	booking.PhotoURIs = filtered
	if err := s.Upsert(ctx, *booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// SetReminder stores the opaque reminder token on the booking. Returns the
// updated booking, or nil when the booking is absent.
func (s *BookingService) SetReminder(ctx context.Context, bookingID, notificationID string) (*models.Booking, error) {
	booking := s.GetByID(ctx, bookingID)
	if booking == nil {
		return nil, nil
	}
	booking.CheckoutNotificationID = notificationID
	if err := s.Upsert(ctx, *booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ClearReminder drops the stored reminder token.
func (s *BookingService) ClearReminder(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.SetReminder(ctx, bookingID, "")
}
