package controller

import (
	"context"
	"time"

	"github.com/Freeeeeet/slot_booking/internal/controller/callbacks"
	"github.com/Freeeeeet/slot_booking/internal/controller/handlers"
	"github.com/Freeeeeet/slot_booking/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Settings параметры отображения и доступа
type Settings struct {
	IsAdmin    func(telegramID int64) bool
	Location   *time.Location
	WindowDays int
}

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	subjectService *service.SubjectService,
	bookingService *service.BookingService,
	queryService *service.QueryService,
	limiter callbacks.BookingLimiter,
	settings Settings,
	logger *zap.Logger,
) *BotController {
	isAdmin := settings.IsAdmin
	if isAdmin == nil {
		isAdmin = func(int64) bool { return false }
	}

	cmdHandlers := handlers.NewHandlers(
		subjectService,
		queryService,
		isAdmin,
		settings.Location,
		settings.WindowDays,
		logger,
	)

	callbackHandler := callbacks.NewHandler(
		bookingService,
		subjectService,
		limiter,
		isAdmin,
		settings.Location,
		logger,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/slots", bot.MatchTypePrefix, c.handlers.HandleSlots)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/mybookings", bot.MatchTypeExact, c.handlers.HandleMyBookings)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/allbookings", bot.MatchTypeExact, c.handlers.HandleAllBookings)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "slots", Description: "🗓 Свободное время"},
		{Command: "mybookings", Description: "📅 Мои записи"},
		{Command: "help", Description: "❓ Справка по командам"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start запускает бота, блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) {
	c.logger.Info("Starting bot")
	c.bot.Start(ctx)
}
