package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/models"
	"frontdesk/storage"
)

func newBookingService() *BookingService {
	return NewBookingService(storage.NewMemoryStore())
}

func booking(id, roomID string) models.Booking {
	return models.Booking{
		ID:          id,
		RoomID:      roomID,
		GuestName:   "Jan Nowak",
		CheckIn:     "2024-05-10",
		CheckOut:    "2024-05-12",
		TotalAmount: 300,
		PaidAmount:  100,
	}
}

func TestBookingUpsertThenGetByID(t *testing.T) {
	svc := newBookingService()
	ctx := context.Background()
	b := booking("1700000000001", "1")

	require.NoError(t, svc.Upsert(ctx, b))

	got := svc.GetByID(ctx, b.ID)
	require.NotNil(t, got)
	assert.Equal(t, b, *got)
}

func TestBookingDelete(t *testing.T) {
	svc := newBookingService()
	ctx := context.Background()
	require.NoError(t, svc.Upsert(ctx, booking("1", "r1")))
	require.NoError(t, svc.Upsert(ctx, booking("2", "r1")))

	require.NoError(t, svc.Delete(ctx, "1"))
	remaining := svc.ListAll(ctx)
	require.Len(t, remaining, 1)
	assert.Equal(t, "2", remaining[0].ID)
}

func TestActiveBookingForRoomPicksGreatestID(t *testing.T) {
	svc := newBookingService()
	ctx := context.Background()

	// Later-created booking wins even with earlier dates.
	older := booking("1700000000001", "r1")
	newer := booking("1700000000002", "r1")
	newer.CheckIn, newer.CheckOut = "2024-01-01", "2024-01-02"
	elsewhere := booking("1700000000003", "r2")

	require.NoError(t, svc.Upsert(ctx, newer))
	require.NoError(t, svc.Upsert(ctx, older))
	require.NoError(t, svc.Upsert(ctx, elsewhere))

	active := svc.ActiveBookingForRoom(ctx, "r1")
	require.NotNil(t, active)
	assert.Equal(t, newer.ID, active.ID)
}

func TestActiveBookingForRoomNone(t *testing.T) {
	svc := newBookingService()
	assert.Nil(t, svc.ActiveBookingForRoom(context.Background(), "empty-room"))
}

func TestActiveBookingForRoomSkipsUnparseableIDs(t *testing.T) {
	svc := newBookingService()
	ctx := context.Background()

	weird := booking("not-a-number", "r1")
	normal := booking("1700000000001", "r1")
	require.NoError(t, svc.Upsert(ctx, weird))
	require.NoError(t, svc.Upsert(ctx, normal))

	active := svc.ActiveBookingForRoom(ctx, "r1")
	require.NotNil(t, active)
	assert.Equal(t, normal.ID, active.ID)
}

func TestAddPhotoPrepends(t *testing.T) {
	svc := newBookingService()
	ctx := context.Background()
	require.NoError(t, svc.Upsert(ctx, booking("1", "r1")))

	_, err := svc.AddPhoto(ctx, "1", "a")
	require.NoError(t, err)
	_, err = svc.AddPhoto(ctx, "1", "b")
	require.NoError(t, err)
	updated, err := svc.AddPhoto(ctx, "1", "c")
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, []string{"c", "b", "a"}, updated.PhotoURIs, "most recently added first")
}

func TestRemovePhotoKeepsOrder(t *testing.T) {
	svc := newBookingService()
	ctx := context.Background()
	b := booking("1", "r1")
	b.PhotoURIs = []string{"c", "b", "a"}
	require.NoError(t, svc.Upsert(ctx, b))

	updated, err := svc.RemovePhoto(ctx, "1", "b")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, []string{"c", "a"}, updated.PhotoURIs)
}

func TestPhotoMutationOnMissingBooking(t *testing.T) {
	svc := newBookingService()
	ctx := context.Background()

	b, err := svc.AddPhoto(ctx, "missing", "x")
	require.NoError(t, err)
	assert.Nil(t, b)

	b, err = svc.RemovePhoto(ctx, "missing", "x")
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestSetAndClearReminder(t *testing.T) {
	svc := newBookingService()
	ctx := context.Background()
	require.NoError(t, svc.Upsert(ctx, booking("1", "r1")))

	updated, err := svc.SetReminder(ctx, "1", "notif-123")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "notif-123", updated.CheckoutNotificationID)

	cleared, err := svc.ClearReminder(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.CheckoutNotificationID)
}

// Two awaited upserts both survive; two interleaved read-modify-write
// cycles lose the first writer's booking. Known behavior, not a bug to
// fix here: callers serialize mutations per collection.
func TestOverlappingUpsertsLoseFirstWrite(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	// sequential: both survive
	svc := NewBookingService(store)
	require.NoError(t, svc.Upsert(ctx, booking("1", "r1")))
	require.NoError(t, svc.Upsert(ctx, booking("2", "r1")))
	assert.Len(t, svc.ListAll(ctx), 2)

	// interleaved: both writers snapshot before either saves
	first := svc.ListAll(ctx)
	second := svc.ListAll(ctx)
	require.NoError(t, storage.SaveList(ctx, store, storage.BookingsKey, append(first, booking("3", "r1"))))
	require.NoError(t, storage.SaveList(ctx, store, storage.BookingsKey, append(second, booking("4", "r1"))))

	ids := []string{}
	for _, b := range svc.ListAll(ctx) {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"1", "2", "4"}, ids, "booking 3 is lost to the second snapshot")
}
