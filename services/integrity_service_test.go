package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/storage"
)

func TestOrphanedBookings(t *testing.T) {
	store := storage.NewMemoryStore()
	rooms := NewRoomService(store)
	bookings := NewBookingService(store)
	svc := NewIntegrityService(rooms, bookings)
	ctx := context.Background()

	require.NoError(t, rooms.Upsert(ctx, room("r1", "101")))
	require.NoError(t, bookings.Upsert(ctx, booking("1", "r1")))
	require.NoError(t, bookings.Upsert(ctx, booking("2", "r-deleted")))
	require.NoError(t, bookings.Upsert(ctx, booking("3", "r1")))

	orphans := svc.OrphanedBookings(ctx)
	require.Len(t, orphans, 1)
	assert.Equal(t, "2", orphans[0].ID)
}

func TestOrphanedBookingsAfterRoomDelete(t *testing.T) {
	store := storage.NewMemoryStore()
	rooms := NewRoomService(store)
	bookings := NewBookingService(store)
	svc := NewIntegrityService(rooms, bookings)
	ctx := context.Background()

	require.NoError(t, rooms.Upsert(ctx, room("r1", "101")))
	require.NoError(t, bookings.Upsert(ctx, booking("1", "r1")))
	assert.Empty(t, svc.OrphanedBookings(ctx))

	// No cascading delete: the booking stays and goes orphaned.
	require.NoError(t, rooms.Delete(ctx, "r1"))
	orphans := svc.OrphanedBookings(ctx)
	require.Len(t, orphans, 1)
	assert.Equal(t, "1", orphans[0].ID)
}
