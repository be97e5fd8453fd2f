package callbacks

import (
	"context"
	"errors"

	"github.com/Freeeeeet/slot_booking/internal/controller/callbacks/common"
	"github.com/Freeeeeet/slot_booking/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/slot_booking/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/slot_booking/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handleBookSlot обрабатывает book:<slot_id>
func (h *Handler) handleBookSlot(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	slotID, err := common.ParseValueFromCallback(callback.Data, keyboard.BookSlotPrefix)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	subjectID := common.SubjectID(callback.From.ID)

	if !h.limiter.Allow(subjectID) {
		h.logger.Warn("Booking rate limit exceeded", zap.String("subject_id", subjectID))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrRateLimited))
		return
	}

	h.ensureSubject(ctx, &callback.From)

	booking, err := h.bookingService.Book(ctx, subjectID, slotID)
	if err != nil {
		if !errors.Is(err, model.ErrSlotAlreadyBooked) && !errors.Is(err, model.ErrSlotNotFound) {
			h.logger.Error("Failed to book slot",
				zap.String("subject_id", subjectID),
				zap.String("slot_id", slotID),
				zap.Error(err),
			)
		}
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "✅ Вы записаны")

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		return
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text:   "✅ Запись подтверждена!\n\n" + formatting.FormatBooking(booking, h.location, false),
	})
	if err != nil {
		h.logger.Error("Failed to send booking confirmation",
			zap.Int64("chat_id", msg.Chat.ID),
			zap.Error(err),
		)
	}
}

// ensureSubject регистрирует пользователя, если он бронирует без /start
func (h *Handler) ensureSubject(ctx context.Context, user *models.User) {
	subjectID := common.SubjectID(user.ID)

	existing, err := h.subjectService.GetByID(ctx, subjectID)
	if err != nil {
		h.logger.Warn("Failed to load subject", zap.String("subject_id", subjectID), zap.Error(err))
		return
	}
	if existing != nil {
		return
	}

	_, err = h.subjectService.RegisterSubject(ctx, subjectID, common.DisplayName(user), common.Contact(user), h.isAdmin(user.ID))
	if err != nil {
		h.logger.Warn("Failed to register subject on booking", zap.String("subject_id", subjectID), zap.Error(err))
	}
}
