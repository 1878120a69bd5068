package models

import "strings"

type RoomStatus string

const (
	RoomStatusFree     RoomStatus = "FREE"
	RoomStatusOccupied RoomStatus = "OCCUPIED"
	RoomStatusCleaning RoomStatus = "CLEANING"
)

// ValidRoomStatus reports whether s is one of the known statuses. The
// status set is flat: any status may follow any other, transitions happen
// only by explicit user action.
func ValidRoomStatus(s RoomStatus) bool {
	switch s {
	case RoomStatusFree, RoomStatusOccupied, RoomStatusCleaning:
		return true
	}
	return false
}

type Room struct {
	ID            string     `json:"id"`
	Number        string     `json:"number"`
	Capacity      int        `json:"capacity"`
	PricePerNight float64    `json:"pricePerNight"`
	Status        RoomStatus `json:"status"`
}

// NormalizeRoomNumber is the canonical form used for uniqueness checks:
// trimmed and case-folded.
func NormalizeRoomNumber(number string) string {
	return strings.ToLower(strings.TrimSpace(number))
}

func ValidateRoom(r Room) error {
	if strings.TrimSpace(r.Number) == "" {
		return &ValidationError{Field: "number", Message: "room number is required"}
	}
	if r.Capacity <= 0 {
		return &ValidationError{Field: "capacity", Message: "capacity must be greater than zero"}
	}
	if r.PricePerNight < 0 {
		return &ValidationError{Field: "pricePerNight", Message: "price per night cannot be negative"}
	}
	if !ValidRoomStatus(r.Status) {
		return &ValidationError{Field: "status", Message: "unknown room status"}
	}
	return nil
}
