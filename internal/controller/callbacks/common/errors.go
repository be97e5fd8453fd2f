package common

import (
	"errors"

	"github.com/Freeeeeet/slot_booking/internal/model"
	"github.com/Freeeeeet/slot_booking/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrInvalidFormat = errors.New("invalid callback format")
	ErrRateLimited   = errors.New("too many booking attempts")
	ErrNotAdmin      = errors.New("subject is not an admin")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrSlotNotFound):
		return "❌ Слот не найден"
	case errors.Is(err, model.ErrSlotAlreadyBooked):
		return "😔 Этот слот уже занят. Выберите другое время: /slots"
	case errors.Is(err, model.ErrStorageUnavailable):
		return "⚠️ Сервис временно недоступен. Попробуйте ещё раз через минуту."
	case errors.Is(err, model.ErrEmptySubject):
		return "❌ Пользователь не найден. Используйте /start"
	case errors.Is(err, service.ErrInvalidDateRange):
		return "❌ Неверные даты. Формат: /slots 2024-06-03 2024-06-09"
	case errors.Is(err, ErrRateLimited):
		return "⏳ Слишком много попыток. Подождите немного."
	case errors.Is(err, ErrNotAdmin):
		return "❌ Эта команда доступна только администраторам"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Неверный формат данных"
	default:
		return "❌ Произошла ошибка"
	}
}
