package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/slot_booking/internal/metrics"
	"github.com/Freeeeeet/slot_booking/internal/model"
	"go.uber.org/zap"
)

// GenerateSlots строит канонический набор слотов на days дней, начиная с даты windowStart.
// Время суток windowStart игнорируется: генерация идёт от полуночи этой даты в loc
// (nil означает часовой пояс самого windowStart). Слоты идут подряд от StartHour с шагом
// durationMinutes (по реальному времени); слот, который не помещается целиком до EndHour:00, отбрасывается.
func GenerateSlots(windowStart time.Time, days int, hours model.BusinessHours, durationMinutes int, loc *time.Location) ([]model.Slot, error) {
	if err := validateGeneration(days, hours, durationMinutes); err != nil {
		return nil, err
	}

	if loc == nil {
		loc = windowStart.Location()
	}
	year, month, day := windowStart.In(loc).Date()

	perDay := (hours.EndHour - hours.StartHour) * 60 / durationMinutes
	slots := make([]model.Slot, 0, days*perDay)

	duration := time.Duration(durationMinutes) * time.Minute

	for d := 0; d < days; d++ {
		// Границы дня по местным часам, шаг внутри дня по реальному времени:
		// в дни перехода на летнее/зимнее время слоты не растягиваются и не пересекаются.
		dayStart := time.Date(year, month, day+d, hours.StartHour, 0, 0, 0, loc)
		dayEnd := time.Date(year, month, day+d, hours.EndHour, 0, 0, 0, loc)

		for start := dayStart; ; start = start.Add(duration) {
			end := start.Add(duration)
			if end.After(dayEnd) {
				break
			}
			slots = append(slots, model.NewSlot(start, end))
		}
	}

	return slots, nil
}

func validateGeneration(days int, hours model.BusinessHours, durationMinutes int) error {
	switch {
	case days <= 0:
		return fmt.Errorf("%w: days must be positive, got %d", model.ErrInvalidGenerationParameters, days)
	case durationMinutes <= 0:
		return fmt.Errorf("%w: slot duration must be positive, got %d", model.ErrInvalidGenerationParameters, durationMinutes)
	case hours.StartHour < 0 || hours.EndHour > 24:
		return fmt.Errorf("%w: hours must be within 0..24, got %d..%d", model.ErrInvalidGenerationParameters, hours.StartHour, hours.EndHour)
	case hours.EndHour <= hours.StartHour:
		return fmt.Errorf("%w: end hour %d must be after start hour %d", model.ErrInvalidGenerationParameters, hours.EndHour, hours.StartHour)
	}
	return nil
}

// CalendarSettings фиксированные параметры календаря
type CalendarSettings struct {
	Hours               model.BusinessHours
	SlotDurationMinutes int
	Location            *time.Location
}

// CalendarService наполняет хранилище слотами
type CalendarService struct {
	store    SlotStore
	settings CalendarSettings
	metrics  MetricsRecorder
	logger   *zap.Logger
}

func NewCalendarService(store SlotStore, settings CalendarSettings, recorder MetricsRecorder, logger *zap.Logger) *CalendarService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if settings.Location == nil {
		settings.Location = time.UTC
	}

	return &CalendarService{
		store:    store,
		settings: settings,
		metrics:  recorder,
		logger:   logger,
	}
}

// GenerateWindow создаёт недостающие слоты на days дней начиная с даты windowStart.
// Повторный вызов для пересекающегося окна ничего не дублирует и не трогает брони.
// Возвращает число реально созданных слотов.
func (s *CalendarService) GenerateWindow(ctx context.Context, windowStart time.Time, days int) (int, error) {
	slots, err := GenerateSlots(windowStart, days, s.settings.Hours, s.settings.SlotDurationMinutes, s.settings.Location)
	if err != nil {
		s.metrics.RecordGeneration(0, err)
		return 0, err
	}

	created, err := s.store.CreateSlotsIfAbsent(ctx, slots)
	s.metrics.RecordGeneration(created, err)
	if err != nil {
		return 0, fmt.Errorf("create slots: %w", err)
	}

	s.logger.Info("Calendar window generated",
		zap.Time("window_start", windowStart),
		zap.Int("days", days),
		zap.Int("total_slots", len(slots)),
		zap.Int("created", created),
	)

	return created, nil
}
