package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// Keys of the two persisted collections.
const (
	RoomsKey    = "rooms_v1"
	BookingsKey = "bookings_v1"
)

// Store is the persisted key-value port the repositories are built on.
// Load returns nil with no error when nothing is stored under key. Save
// replaces the whole value; substrates must provide whole-value put
// atomicity per key. The port does no locking — callers serialize their
// own read-modify-write sequences.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
}

// LoadList decodes the JSON array stored under key. A missing key, a
// storage read failure, and a payload that does not decode as an array all
// yield an empty slice: corrupt local state must never make the
// application unusable.
func LoadList[T any](ctx context.Context, s Store, key string) []T {
	raw, err := s.Load(ctx, key)
	if err != nil {
		log.Printf("storage: load %q failed, treating as empty: %v", key, err)
		return []T{}
	}
	if len(raw) == 0 {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("storage: corrupt payload under %q, treating as empty: %v", key, err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// SaveList serializes items as a JSON array and replaces the value under
// key. Save failures propagate, unlike load failures.
func SaveList[T any](ctx context.Context, s Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := s.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}
