package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/slot_booking/internal/model"
)

// SlotStore хранилище слотов и броней. Единственный владелец обеих записей.
// Диапазоны времени полуоткрытые: [from, to).
type SlotStore interface {
	GetSlot(ctx context.Context, id string) (*model.Slot, error)
	ListSlots(ctx context.Context, from, to time.Time) ([]model.Slot, error)
	CreateSlotIfAbsent(ctx context.Context, slot model.Slot) (bool, error)
	CreateSlotsIfAbsent(ctx context.Context, slots []model.Slot) (int, error)

	// TryClaim единственный путь создания брони: проверка и захват одной операцией
	TryClaim(ctx context.Context, slotID, subjectID string) (*model.Booking, error)

	ListAvailability(ctx context.Context, from, to time.Time) ([]model.SlotAvailability, error)
	ListBookingsBySubject(ctx context.Context, subjectID string) ([]*model.Booking, error)
	ListAllBookings(ctx context.Context) ([]*model.Booking, error)
}

// SubjectDirectory справочник субъектов
type SubjectDirectory interface {
	Upsert(ctx context.Context, subject *model.Subject) error
	GetByID(ctx context.Context, id string) (*model.Subject, error)
}

// MetricsRecorder метрики бронирования и генерации
type MetricsRecorder interface {
	RecordBooking(outcome string)
	RecordClaimLatency(d time.Duration)
	RecordGeneration(created int, err error)
}
