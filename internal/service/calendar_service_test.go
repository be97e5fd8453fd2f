package service

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/Freeeeeet/slot_booking/internal/model"
	"github.com/Freeeeeet/slot_booking/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateSlots_SingleDay(t *testing.T) {
	slots, err := GenerateSlots(monday(), 1, workday, 30, time.UTC)
	require.NoError(t, err)
	require.Len(t, slots, 16)

	assert.Equal(t, time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), slots[0].StartAt)
	assert.Equal(t, time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC), slots[0].EndAt)
	assert.Equal(t, time.Date(2024, 6, 3, 16, 30, 0, 0, time.UTC), slots[15].StartAt)
	assert.Equal(t, time.Date(2024, 6, 3, 17, 0, 0, 0, time.UTC), slots[15].EndAt)

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].EndAt, slots[i].StartAt, "slots must be contiguous")
		assert.Equal(t, 30*time.Minute, slots[i].Duration())
	}
}

func TestGenerateSlots_Week(t *testing.T) {
	slots, err := GenerateSlots(monday(), 7, workday, 30, time.UTC)
	require.NoError(t, err)
	require.Len(t, slots, 112)

	ids := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		ids[s.ID] = struct{}{}
	}
	assert.Len(t, ids, 112)

	last := slots[len(slots)-1]
	assert.Equal(t, time.Date(2024, 6, 9, 16, 30, 0, 0, time.UTC), last.StartAt)
}

func TestGenerateSlots_DurationNotDividingDay(t *testing.T) {
	slots, err := GenerateSlots(monday(), 1, workday, 45, time.UTC)
	require.NoError(t, err)
	require.Len(t, slots, 10)

	dayEnd := time.Date(2024, 6, 3, 17, 0, 0, 0, time.UTC)
	for _, s := range slots {
		assert.False(t, s.EndAt.After(dayEnd), "slot %s ends after business hours", s.StartAt)
	}

	last := slots[len(slots)-1]
	assert.Equal(t, time.Date(2024, 6, 3, 15, 45, 0, 0, time.UTC), last.StartAt)
	assert.Equal(t, time.Date(2024, 6, 3, 16, 30, 0, 0, time.UTC), last.EndAt)
}

func TestGenerateSlots_IgnoresTimeOfDay(t *testing.T) {
	midnight, err := GenerateSlots(monday(), 2, workday, 30, time.UTC)
	require.NoError(t, err)

	afternoon, err := GenerateSlots(monday().Add(15*time.Hour+37*time.Minute), 2, workday, 30, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, midnight, afternoon)
}

func TestGenerateSlots_Location(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)

	slots, err := GenerateSlots(monday(), 1, workday, 30, moscow)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	assert.Equal(t, time.Date(2024, 6, 3, 6, 0, 0, 0, time.UTC), slots[0].StartAt)
	assert.Equal(t, time.UTC, slots[0].StartAt.Location())
}

func TestGenerateSlots_DaylightSavingTransitions(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	night := model.BusinessHours{StartHour: 1, EndHour: 5}

	tests := []struct {
		name      string
		date      time.Time
		wantCount int
		wantFirst time.Time
		wantLast  time.Time
	}{
		{
			name:      "spring forward",
			date:      time.Date(2024, 3, 31, 0, 0, 0, 0, berlin),
			wantCount: 6,
			wantFirst: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2024, 3, 31, 3, 0, 0, 0, time.UTC),
		},
		{
			name:      "fall back",
			date:      time.Date(2024, 10, 27, 0, 0, 0, 0, berlin),
			wantCount: 10,
			wantFirst: time.Date(2024, 10, 26, 23, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2024, 10, 27, 4, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateSlots(tt.date, 1, night, 30, berlin)
			require.NoError(t, err)
			require.Len(t, slots, tt.wantCount)

			assert.Equal(t, tt.wantFirst, slots[0].StartAt)
			assert.Equal(t, tt.wantLast, slots[len(slots)-1].EndAt)

			ids := make(map[string]struct{}, len(slots))
			for i, s := range slots {
				assert.Equal(t, 30*time.Minute, s.Duration(), "slot %s", s.StartAt)
				if i > 0 {
					assert.Equal(t, slots[i-1].EndAt, s.StartAt, "slots must not overlap")
				}
				ids[s.ID] = struct{}{}
			}
			assert.Len(t, ids, len(slots))
		})
	}
}

func TestGenerateSlots_InvalidParameters(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		hours    model.BusinessHours
		duration int
	}{
		{"zero days", 0, workday, 30},
		{"negative days", -1, workday, 30},
		{"zero duration", 1, workday, 0},
		{"negative duration", 1, workday, -30},
		{"end before start", 1, model.BusinessHours{StartHour: 17, EndHour: 9}, 30},
		{"empty day", 1, model.BusinessHours{StartHour: 9, EndHour: 9}, 30},
		{"hour out of range", 1, model.BusinessHours{StartHour: 9, EndHour: 25}, 30},
		{"negative hour", 1, model.BusinessHours{StartHour: -1, EndHour: 17}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateSlots(monday(), tt.days, tt.hours, tt.duration, time.UTC)
			assert.Nil(t, slots)
			assert.ErrorIs(t, err, model.ErrInvalidGenerationParameters)
		})
	}
}

func TestGenerateSlots_LongerThanDayYieldsNothing(t *testing.T) {
	slots, err := GenerateSlots(monday(), 1, workday, 9*60, time.UTC)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func newCalendar(store SlotStore, recorder MetricsRecorder) *CalendarService {
	return NewCalendarService(store, CalendarSettings{
		Hours:               workday,
		SlotDurationMinutes: 30,
		Location:            time.UTC,
	}, recorder, zap.NewNop())
}

func TestCalendarService_GenerateWindowIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	recorder := newFakeRecorder()
	calendar := newCalendar(store, recorder)

	created, err := calendar.GenerateWindow(ctx, monday(), 7)
	require.NoError(t, err)
	assert.Equal(t, 112, created)

	created, err = calendar.GenerateWindow(ctx, monday(), 7)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	// окно сдвинуто на 3 дня: новыми будут только 3 последних дня
	created, err = calendar.GenerateWindow(ctx, monday().AddDate(0, 0, 3), 7)
	require.NoError(t, err)
	assert.Equal(t, 48, created)

	slots, err := store.ListSlots(ctx, monday(), monday().AddDate(0, 0, 10))
	require.NoError(t, err)
	assert.Len(t, slots, 160)
	assert.Equal(t, 160, recorder.generated)
}

func TestCalendarService_RegenerationKeepsBookings(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	calendar := newCalendar(store, nil)

	_, err := calendar.GenerateWindow(ctx, monday(), 1)
	require.NoError(t, err)

	slotID := model.SlotID(
		time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 3, 10, 30, 0, 0, time.UTC),
	)
	_, err = store.TryClaim(ctx, slotID, "patient")
	require.NoError(t, err)

	_, err = calendar.GenerateWindow(ctx, monday(), 1)
	require.NoError(t, err)

	items, err := store.ListAvailability(ctx, monday(), monday().AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, items, 16)

	booked := 0
	for _, item := range items {
		if item.IsBooked {
			booked++
			assert.Equal(t, slotID, item.Slot.ID)
		}
	}
	assert.Equal(t, 1, booked)
}

func TestCalendarService_InvalidWindow(t *testing.T) {
	recorder := newFakeRecorder()
	calendar := newCalendar(memory.NewStore(), recorder)

	_, err := calendar.GenerateWindow(context.Background(), monday(), 0)
	assert.ErrorIs(t, err, model.ErrInvalidGenerationParameters)
	assert.Equal(t, 1, recorder.genErrors)
}

type failingSlotStore struct {
	*memory.Store
	err error
}

func (s *failingSlotStore) CreateSlotsIfAbsent(context.Context, []model.Slot) (int, error) {
	return 0, s.err
}

func (s *failingSlotStore) TryClaim(context.Context, string, string) (*model.Booking, error) {
	return nil, s.err
}

func TestCalendarService_StorageFailure(t *testing.T) {
	storageErr := errors.Join(model.ErrStorageUnavailable, errors.New("connection reset"))
	calendar := newCalendar(&failingSlotStore{Store: memory.NewStore(), err: storageErr}, nil)

	_, err := calendar.GenerateWindow(context.Background(), monday(), 1)
	assert.ErrorIs(t, err, model.ErrStorageUnavailable)
}
