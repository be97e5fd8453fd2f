package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Freeeeeet/slot_booking/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotAt(hour, minute int) model.Slot {
	start := time.Date(2024, 6, 3, hour, minute, 0, 0, time.UTC)
	return model.NewSlot(start, start.Add(30*time.Minute))
}

func TestStore_CreateSlotIfAbsent(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	created, err := s.CreateSlotIfAbsent(ctx, slotAt(9, 0))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.CreateSlotIfAbsent(ctx, slotAt(9, 0))
	require.NoError(t, err)
	assert.False(t, created)

	inserted, err := s.CreateSlotsIfAbsent(ctx, []model.Slot{slotAt(9, 0), slotAt(9, 30), slotAt(10, 0)})
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
}

func TestStore_ListSlotsHalfOpenRange(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_, err := s.CreateSlotsIfAbsent(ctx, []model.Slot{slotAt(10, 0), slotAt(9, 0), slotAt(9, 30)})
	require.NoError(t, err)

	slots, err := s.ListSlots(ctx,
		time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, slotAt(9, 0).ID, slots[0].ID)
	assert.Equal(t, slotAt(9, 30).ID, slots[1].ID)
}

func TestStore_TryClaim(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	slot := slotAt(9, 0)
	_, err := s.CreateSlotIfAbsent(ctx, slot)
	require.NoError(t, err)

	booking, err := s.TryClaim(ctx, slot.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, slot.ID, booking.SlotID)
	assert.Equal(t, &model.SubjectProfile{ID: "alice"}, booking.Subject)

	_, err = s.TryClaim(ctx, slot.ID, "bob")
	assert.ErrorIs(t, err, model.ErrSlotAlreadyBooked)

	_, err = s.TryClaim(ctx, "missing", "bob")
	assert.ErrorIs(t, err, model.ErrSlotNotFound)
}

func TestStore_BookingsOrderedByCreationDesc(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	_, err := s.CreateSlotsIfAbsent(ctx, []model.Slot{slotAt(9, 0), slotAt(9, 30), slotAt(10, 0)})
	require.NoError(t, err)

	// одинаковое время создания: порядок по последовательности вставки
	first, err := s.TryClaim(ctx, slotAt(10, 0).ID, "alice")
	require.NoError(t, err)
	second, err := s.TryClaim(ctx, slotAt(9, 0).ID, "bob")
	require.NoError(t, err)
	third, err := s.TryClaim(ctx, slotAt(9, 30).ID, "alice")
	require.NoError(t, err)

	all, err := s.ListAllBookings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{third.ID, second.ID, first.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	alice, err := s.ListBookingsBySubject(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, alice, 2)
	assert.Equal(t, third.ID, alice[0].ID)
	assert.Equal(t, first.ID, alice[1].ID)
}

func TestStore_Subjects(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	subject := &model.Subject{ID: "42", DisplayName: "Alice"}
	require.NoError(t, s.Upsert(ctx, subject))
	assert.False(t, subject.CreatedAt.IsZero())

	// изменение переданной структуры не влияет на хранилище
	subject.DisplayName = "changed"

	got, err := s.GetByID(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.DisplayName)

	missing, err := s.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewStore()
	_, err := s.TryClaim(ctx, "any", "alice")
	assert.ErrorIs(t, err, context.Canceled)
}
