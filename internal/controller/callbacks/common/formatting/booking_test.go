package formatting

import (
	"testing"
	"time"

	"github.com/Freeeeeet/slot_booking/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatSubject(t *testing.T) {
	assert.Equal(t, "Alice (@alice)", FormatSubject(&model.SubjectProfile{ID: "1", DisplayName: "Alice", Contact: "@alice"}))
	assert.Equal(t, "ID 42", FormatSubject(&model.SubjectProfile{ID: "42"}))
	assert.Equal(t, "неизвестно", FormatSubject(nil))
}

func TestFormatAvailability(t *testing.T) {
	start := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	items := []model.SlotAvailability{
		{Slot: model.NewSlot(start, start.Add(30*time.Minute))},
		{
			Slot:     model.NewSlot(start.Add(30*time.Minute), start.Add(time.Hour)),
			IsBooked: true,
			BookedBy: &model.SubjectProfile{ID: "42", DisplayName: "Alice"},
		},
	}

	public := FormatAvailability(items, time.UTC, false)
	assert.Contains(t, public, "03.06.2024 (Понедельник)")
	assert.Contains(t, public, "🟢 09:00-09:30 свободно")
	assert.Contains(t, public, "🔴 09:30-10:00 занято\n")
	assert.NotContains(t, public, "Alice")
	assert.Contains(t, public, "Свободно: 1 из 2")

	admin := FormatAvailability(items, time.UTC, true)
	assert.Contains(t, admin, "🔴 09:30-10:00 занято: Alice")

	assert.Equal(t, "📭 В выбранные даты слотов нет.", FormatAvailability(nil, time.UTC, false))
}

func TestFormatAvailability_Location(t *testing.T) {
	start := time.Date(2024, 6, 3, 6, 0, 0, 0, time.UTC)
	items := []model.SlotAvailability{{Slot: model.NewSlot(start, start.Add(30*time.Minute))}}

	text := FormatAvailability(items, time.FixedZone("MSK", 3*60*60), false)
	assert.Contains(t, text, "09:00-09:30")
}

func TestFormatBookings(t *testing.T) {
	start := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	slot := model.NewSlot(start, start.Add(30*time.Minute))
	bookings := []*model.Booking{{
		ID:        "b1",
		SubjectID: "42",
		SlotID:    slot.ID,
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Slot:      &slot,
		Subject:   &model.SubjectProfile{ID: "42", DisplayName: "Alice"},
	}}

	text := FormatBookings("Все записи:", bookings, time.UTC, true)
	assert.Contains(t, text, "📅 03.06.2024 09:00-09:30")
	assert.Contains(t, text, "👤 Alice")
	assert.Contains(t, text, "Создана: 01.06.2024 12:00")

	assert.Contains(t, FormatBookings("Мои записи:", nil, time.UTC, false), "Записей пока нет.")
}
