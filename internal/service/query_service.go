package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/slot_booking/internal/model"
	"go.uber.org/zap"
)

// QueryService проекции только для чтения
type QueryService struct {
	store  SlotStore
	logger *zap.Logger
}

func NewQueryService(store SlotStore, logger *zap.Logger) *QueryService {
	return &QueryService{
		store:  store,
		logger: logger,
	}
}

// AvailableSlots слоты с fromDate 00:00:00 UTC по toDate 23:59:59 UTC включительно,
// по возрастанию начала. Используются только календарные даты аргументов.
func (s *QueryService) AvailableSlots(ctx context.Context, fromDate, toDate time.Time) ([]model.SlotAvailability, error) {
	from := utcDay(fromDate)
	to := utcDay(toDate).AddDate(0, 0, 1)

	if !to.After(from) {
		return []model.SlotAvailability{}, nil
	}

	slots, err := s.store.ListAvailability(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}

	s.logger.Debug("Availability listed",
		zap.Time("from", from),
		zap.Time("to", to),
		zap.Int("count", len(slots)),
	)

	return slots, nil
}

// BookingsFor брони субъекта, новые первыми
func (s *QueryService) BookingsFor(ctx context.Context, subjectID string) ([]*model.Booking, error) {
	if subjectID == "" {
		return nil, model.ErrEmptySubject
	}

	bookings, err := s.store.ListBookingsBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list subject bookings: %w", err)
	}

	return bookings, nil
}

// AllBookings все брони, новые первыми. Проверка прав на стороне вызывающего.
func (s *QueryService) AllBookings(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.store.ListAllBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all bookings: %w", err)
	}

	return bookings, nil
}

// GetSlot получает слот по ID
func (s *QueryService) GetSlot(ctx context.Context, slotID string) (*model.Slot, error) {
	return s.store.GetSlot(ctx, slotID)
}

func utcDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
