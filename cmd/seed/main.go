package main

import (
	"context"
	"log"
	"time"

	"github.com/Freeeeeet/slot_booking/internal/app"
	"github.com/Freeeeeet/slot_booking/internal/config"
	"github.com/Freeeeeet/slot_booking/internal/model"
	"github.com/Freeeeeet/slot_booking/internal/repository"
	"github.com/Freeeeeet/slot_booking/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Демо-данные: администратор, тестовый пациент и слоты на неделю вперёд
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := app.NewLogger(app.LogSettings{
		Env:     cfg.Environment,
		Level:   cfg.LogLevel,
		Outputs: cfg.LogOutputs,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := seed(ctx, cfg, logger); err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}

	logger.Info("Database seeding completed")
}

func seed(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, logger)
	if err != nil {
		return err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		return err
	}

	subjectService := service.NewSubjectService(repository.NewSubjectRepository(pool), logger)

	if _, err := subjectService.RegisterSubject(ctx, "admin", "Admin User", "admin@example.com", true); err != nil {
		return err
	}
	if _, err := subjectService.RegisterSubject(ctx, "patient", "Test Patient", "patient@example.com", false); err != nil {
		return err
	}

	calendarService := service.NewCalendarService(repository.NewSlotRepository(pool), service.CalendarSettings{
		Hours: model.BusinessHours{
			StartHour: cfg.BusinessStartHour,
			EndHour:   cfg.BusinessEndHour,
		},
		SlotDurationMinutes: cfg.SlotDurationMinutes,
		Location:            cfg.Location,
	}, nil, logger)

	created, err := calendarService.GenerateWindow(ctx, time.Now(), cfg.WindowDays)
	if err != nil {
		return err
	}

	logger.Info("Slots generated", zap.Int("created", created), zap.Int("days", cfg.WindowDays))
	return nil
}
