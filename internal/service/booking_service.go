package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/slot_booking/internal/metrics"
	"github.com/Freeeeeet/slot_booking/internal/model"
	"go.uber.org/zap"
)

type BookingService struct {
	store   SlotStore
	metrics MetricsRecorder
	logger  *zap.Logger
}

func NewBookingService(store SlotStore, recorder MetricsRecorder, logger *zap.Logger) *BookingService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &BookingService{
		store:   store,
		metrics: recorder,
		logger:  logger,
	}
}

// Book бронирует слот для субъекта.
// model.ErrSlotNotFound и model.ErrSlotAlreadyBooked окончательные исходы запроса,
// повторять их бессмысленно. Повтор после model.ErrStorageUnavailable безопасен.
func (s *BookingService) Book(ctx context.Context, subjectID, slotID string) (*model.Booking, error) {
	if subjectID == "" {
		s.metrics.RecordBooking(metrics.OutcomeInvalid)
		return nil, model.ErrEmptySubject
	}

	if slotID == "" {
		s.metrics.RecordBooking(metrics.OutcomeSlotNotFound)
		return nil, fmt.Errorf("empty slot id: %w", model.ErrSlotNotFound)
	}

	started := time.Now()
	booking, err := s.store.TryClaim(ctx, slotID, subjectID)
	s.metrics.RecordClaimLatency(time.Since(started))

	switch {
	case err == nil:
	case errors.Is(err, model.ErrSlotNotFound):
		s.metrics.RecordBooking(metrics.OutcomeSlotNotFound)
		s.logger.Info("Booking rejected: slot not found",
			zap.String("subject_id", subjectID),
			zap.String("slot_id", slotID),
		)
		return nil, err
	case errors.Is(err, model.ErrSlotAlreadyBooked):
		s.metrics.RecordBooking(metrics.OutcomeAlreadyBooked)
		s.logger.Info("Booking rejected: slot already booked",
			zap.String("subject_id", subjectID),
			zap.String("slot_id", slotID),
		)
		return nil, err
	default:
		s.metrics.RecordBooking(metrics.OutcomeError)
		s.logger.Error("Failed to claim slot",
			zap.String("subject_id", subjectID),
			zap.String("slot_id", slotID),
			zap.Bool("storage_unavailable", errors.Is(err, model.ErrStorageUnavailable)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("try claim: %w", err)
	}

	s.metrics.RecordBooking(metrics.OutcomeBooked)
	s.logger.Info("Slot booked",
		zap.String("booking_id", booking.ID),
		zap.String("subject_id", subjectID),
		zap.String("slot_id", slotID),
	)

	return booking, nil
}
