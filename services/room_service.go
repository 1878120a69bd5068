package services

import (
	"context"

	"frontdesk/models"
	"frontdesk/storage"
)

// RoomService persists rooms as one JSON collection under a single key.
// Every mutation is read-full, modify in memory, write-full; callers must
// not overlap mutations on the same collection (see BookingService too).
type RoomService struct {
	Store storage.Store
}

func NewRoomService(store storage.Store) *RoomService {
	return &RoomService{Store: store}
}

// ListAll returns all rooms in insertion order as stored.
func (s *RoomService) ListAll(ctx context.Context) []models.Room {
	return storage.LoadList[models.Room](ctx, s.Store, storage.RoomsKey)
}

// GetByID returns the room with the given id, or nil when absent.
func (s *RoomService) GetByID(ctx context.Context, id string) *models.Room {
	for _, r := range s.ListAll(ctx) {
		if r.ID == id {
			room := r
			return &room
		}
	}
	return nil
}

// Upsert replaces the room with the same id in place, or appends it.
// Uniqueness of the room number is a caller obligation: check
// IsNumberTaken before creating or renaming, Upsert itself does not.
func (s *RoomService) Upsert(ctx context.Context, room models.Room) error {
	rooms := s.ListAll(ctx)
	replaced := false
	for i := range rooms {
		if rooms[i].ID == room.ID {
			rooms[i] = room
			replaced = true
			break
		}
	}
	if !replaced {
		rooms = append(rooms, room)
	}
	return storage.SaveList(ctx, s.Store, storage.RoomsKey, rooms)
}

// Delete removes the room with the given id. Absent ids are a no-op.
// Bookings referencing the room are left dangling; there is no cascading
// delete.
func (s *RoomService) Delete(ctx context.Context, id string) error {
	rooms := s.ListAll(ctx)
	filtered := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	return storage.SaveList(ctx, s.Store, storage.RoomsKey, filtered)
}

// IsNumberTaken reports whether any room other than excludeID already uses
// the number, compared trimmed and case-folded. Pass excludeID "" on
// create.
func (s *RoomService) IsNumberTaken(ctx context.Context, number, excludeID string) bool {
	normalized := models.NormalizeRoomNumber(number)
	for _, r := range s.ListAll(ctx) {
		if excludeID != "" && r.ID == excludeID {
			continue
		}
		if models.NormalizeRoomNumber(r.Number) == normalized {
			return true
		}
	}
	return false
}

// UpdateStatus sets the status of one room. A missing room is a silent
// no-op, nothing is written.
func (s *RoomService) UpdateStatus(ctx context.Context, id string, status models.RoomStatus) error {
	rooms := s.ListAll(ctx)
	for i := range rooms {
		if rooms[i].ID == id {
			rooms[i].Status = status
			return storage.SaveList(ctx, s.Store, storage.RoomsKey, rooms)
		}
	}
	return nil
}

// SeedIfEmpty populates the starter set when the collection is empty and
// returns the resulting collection. Idempotent: a non-empty collection is
// returned unchanged.
func (s *RoomService) SeedIfEmpty(ctx context.Context) ([]models.Room, error) {
	current := s.ListAll(ctx)
	if len(current) > 0 {
		return current, nil
	}

	seeded := []models.Room{
		{ID: "1", Number: "1", Capacity: 2, PricePerNight: 150, Status: models.RoomStatusFree},
		{ID: "2", Number: "2", Capacity: 3, PricePerNight: 180, Status: models.RoomStatusFree},
		{ID: "3", Number: "3", Capacity: 1, PricePerNight: 120, Status: models.RoomStatusCleaning},
		{ID: "4", Number: "4", Capacity: 2, PricePerNight: 160, Status: models.RoomStatusOccupied},
		{ID: "5", Number: "5", Capacity: 4, PricePerNight: 220, Status: models.RoomStatusFree},
	}

	if err := storage.SaveList(ctx, s.Store, storage.RoomsKey, seeded); err != nil {
		return nil, err
	}
	return seeded, nil
}
