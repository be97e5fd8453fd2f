package handlers

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/slot_booking/internal/controller/callbacks/common"
	"github.com/Freeeeeet/slot_booking/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/slot_booking/internal/controller/callbacks/common/keyboard"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const helpText = "📚 Справка по командам:\n\n" +
	"/slots - Свободное время на ближайшую неделю\n" +
	"/slots 2024-06-03 - Слоты на дату\n" +
	"/slots 2024-06-03 2024-06-09 - Слоты за период\n" +
	"/mybookings - Мои записи\n" +
	"/help - Показать эту справку\n\n" +
	"Для записи нажмите на кнопку со временем под списком /slots"

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	user := update.Message.From

	subject, err := h.subjectService.RegisterSubject(
		ctx,
		common.SubjectID(user.ID),
		common.DisplayName(user),
		common.Contact(user),
		h.isAdmin(user.ID),
	)
	if err != nil {
		h.logger.Error("Failed to register subject", zap.Int64("telegram_id", user.ID), zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Произошла ошибка при регистрации. Попробуйте позже.")
		return
	}

	welcomeText := fmt.Sprintf("👋 Привет, %s!\n\nЗдесь можно записаться на приём.\n\n%s", user.FirstName, helpText)
	if subject.IsAdmin {
		welcomeText += "\n\nДля администраторов:\n/allbookings - Все записи"
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, welcomeText, nil)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText, nil)
}

// HandleSlots обрабатывает /slots [from] [to]
func (h *Handlers) HandleSlots(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	chatID := update.Message.Chat.ID

	from, to, err := ParseSlotsCommand(update.Message.Text, h.now().In(h.location), h.windowDays)
	if err != nil {
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	items, err := h.queryService.AvailableSlots(ctx, from, to)
	if err != nil {
		h.logger.Error("Failed to list availability",
			zap.Time("from", from),
			zap.Time("to", to),
			zap.Error(err),
		)
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	text := formatting.FormatAvailability(items, h.location, h.isAdmin(update.Message.From.ID))
	h.sendMessage(ctx, b, chatID, text, keyboard.FreeSlots(items, h.location))
}

// HandleMyBookings обрабатывает команду /mybookings
func (h *Handlers) HandleMyBookings(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	subjectID := common.SubjectID(update.Message.From.ID)
	bookings, err := h.queryService.BookingsFor(ctx, subjectID)
	if err != nil {
		h.logger.Error("Failed to list subject bookings", zap.String("subject_id", subjectID), zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return
	}

	text := formatting.FormatBookings("📅 Мои записи:", bookings, h.location, false)
	h.sendMessage(ctx, b, update.Message.Chat.ID, text, nil)
}

// HandleAllBookings обрабатывает команду /allbookings (только администраторы)
func (h *Handlers) HandleAllBookings(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	bookings, err := h.queryService.AllBookings(ctx)
	if err != nil {
		h.logger.Error("Failed to list all bookings", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return
	}

	text := formatting.FormatBookings("📋 Все записи:", bookings, h.location, true)
	h.sendMessage(ctx, b, update.Message.Chat.ID, text, nil)
}
