package callbacks

import (
	"context"
	"strings"
	"time"

	"github.com/Freeeeeet/slot_booking/internal/controller/callbacks/common"
	"github.com/Freeeeeet/slot_booking/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/slot_booking/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// BookingLimiter ограничение частоты бронирований на субъекта
type BookingLimiter interface {
	Allow(subjectID string) bool
}

// Handler обрабатывает нажатия inline-кнопок
type Handler struct {
	bookingService *service.BookingService
	subjectService *service.SubjectService
	limiter        BookingLimiter
	isAdmin        func(telegramID int64) bool
	location       *time.Location
	logger         *zap.Logger
}

func NewHandler(
	bookingService *service.BookingService,
	subjectService *service.SubjectService,
	limiter BookingLimiter,
	isAdmin func(telegramID int64) bool,
	location *time.Location,
	logger *zap.Logger,
) *Handler {
	if location == nil {
		location = time.UTC
	}

	return &Handler{
		bookingService: bookingService,
		subjectService: subjectService,
		limiter:        limiter,
		isAdmin:        isAdmin,
		location:       location,
		logger:         logger,
	}
}

// HandleCallbackQuery маршрутизирует callback по префиксу данных
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery
	data := callback.Data

	h.logger.Debug("Callback received",
		zap.Int64("telegram_id", callback.From.ID),
		zap.String("data", data),
	)

	switch {
	case strings.HasPrefix(data, keyboard.BookSlotPrefix):
		h.handleBookSlot(ctx, b, callback)
	default:
		h.logger.Warn("Unknown callback", zap.String("data", data))
		common.AnswerCallback(ctx, b, callback.ID, common.ErrorMessage(common.ErrInvalidFormat))
	}
}
