package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// WindowGenerator генерирует окно слотов начиная с даты windowStart
type WindowGenerator interface {
	GenerateWindow(ctx context.Context, windowStart time.Time, days int) (int, error)
}

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	generator  WindowGenerator
	windowDays int
	interval   time.Duration
	now        func() time.Time
	logger     *zap.Logger
	stopChan   chan struct{}
	done       chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(generator WindowGenerator, windowDays int, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		generator:  generator,
		windowDays: windowDays,
		interval:   interval,
		now:        time.Now,
		logger:     logger,
		stopChan:   make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler",
		zap.Int("window_days", s.windowDays),
		zap.Duration("interval", s.interval),
	)

	go s.runSlotGenerationTask(ctx)
}

// Stop останавливает фоновые задачи и ждёт завершения текущего запуска
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
	<-s.done
}

// runSlotGenerationTask поддерживает скользящее окно слотов: сегодня + windowDays-1
func (s *Scheduler) runSlotGenerationTask(ctx context.Context) {
	defer close(s.done)

	// Первый запуск сразу при старте
	s.generateSlots(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.generateSlots(ctx)
		case <-s.stopChan:
			s.logger.Info("Slot generation task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Slot generation task cancelled")
			return
		}
	}
}

func (s *Scheduler) generateSlots(ctx context.Context) {
	created, err := s.generator.GenerateWindow(ctx, s.now(), s.windowDays)
	if err != nil {
		s.logger.Error("Failed to generate slots", zap.Error(err))
		return
	}

	s.logger.Info("Automatic slot generation completed", zap.Int("created", created))
}
