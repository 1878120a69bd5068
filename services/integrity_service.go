package services

import (
	"context"

	"frontdesk/models"
)

// IntegrityService audits the weak reference from bookings to rooms.
// Booking.RoomID is never enforced — deleting a room leaves its bookings
// dangling — so callers who care can ask for the orphans and warn.
// Read-only; it never repairs anything.
type IntegrityService struct {
	Rooms    *RoomService
	Bookings *BookingService
}

func NewIntegrityService(rooms *RoomService, bookings *BookingService) *IntegrityService {
	return &IntegrityService{Rooms: rooms, Bookings: bookings}
}

// OrphanedBookings returns the bookings whose roomId matches no existing
// room, in stored order.
func (s *IntegrityService) OrphanedBookings(ctx context.Context) []models.Booking {
	roomIDs := make(map[string]struct{})
	for _, r := range s.Rooms.ListAll(ctx) {
		roomIDs[r.ID] = struct{}{}
	}

	orphans := []models.Booking{}
	for _, b := range s.Bookings.ListAll(ctx) {
		if _, ok := roomIDs[b.RoomID]; !ok {
			orphans = append(orphans, b)
		}
	}
	return orphans
}
