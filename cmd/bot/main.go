package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/slot_booking/internal/app"
	"github.com/Freeeeeet/slot_booking/internal/config"
	"github.com/Freeeeeet/slot_booking/internal/controller"
	"github.com/Freeeeeet/slot_booking/internal/controller/ratelimit"
	"github.com/Freeeeeet/slot_booking/internal/metrics"
	"github.com/Freeeeeet/slot_booking/internal/model"
	"github.com/Freeeeeet/slot_booking/internal/repository"
	"github.com/Freeeeeet/slot_booking/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

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

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Service stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting slot booking service",
		zap.String("environment", cfg.Environment),
		zap.Bool("env_file", cfg.EnvFileLoaded),
		zap.Bool("bot_enabled", cfg.BotEnabled()),
		zap.String("timezone", cfg.Location.String()),
	)

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}
	logger.Info("Connected to PostgreSQL")

	migrator, err := app.NewMigrator(pool, logger)
	if err != nil {
		return err
	}
	if err := migrator.Run(ctx); err != nil {
		migrator.Close()
		return err
	}
	migrator.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	slotRepo := repository.NewSlotRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)

	calendarService := service.NewCalendarService(slotRepo, service.CalendarSettings{
		Hours: model.BusinessHours{
			StartHour: cfg.BusinessStartHour,
			EndHour:   cfg.BusinessEndHour,
		},
		SlotDurationMinutes: cfg.SlotDurationMinutes,
		Location:            cfg.Location,
	}, collector, logger)
	bookingService := service.NewBookingService(slotRepo, collector, logger)
	queryService := service.NewQueryService(slotRepo, logger)
	subjectService := service.NewSubjectService(subjectRepo, logger)

	scheduler := app.NewScheduler(calendarService, cfg.WindowDays, cfg.GenerationInterval, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	ops := app.NewOpsServer(cfg.OpsAddr, app.NewOpsRouter(pool, registry, logger), logger)
	ops.Start()

	if cfg.BotEnabled() {
		limiter := ratelimit.New(ratelimit.DefaultConfig(cfg.BookingRatePerMinute))
		defer limiter.Stop()

		botInstance, err := bot.New(cfg.TelegramToken)
		if err != nil {
			return err
		}

		botController := controller.NewBotController(
			botInstance,
			subjectService,
			bookingService,
			queryService,
			limiter,
			controller.Settings{
				IsAdmin:    cfg.IsAdmin,
				Location:   cfg.Location,
				WindowDays: cfg.WindowDays,
			},
			logger,
		)

		if err := botController.RegisterHandlers(ctx); err != nil {
			logger.Warn("Bot commands menu not set", zap.Error(err))
		}

		go botController.Start(ctx)
	} else {
		logger.Warn("TELEGRAM_TOKEN is empty, bot is disabled")
	}

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ops.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ops server shutdown failed", zap.Error(err))
	}

	logger.Info("Service stopped")
	return nil
}
