package keyboard

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/slot_booking/internal/model"
	"github.com/go-telegram/bot/models"
)

// BookSlotPrefix префикс callback бронирования: book:<slot_id>
const BookSlotPrefix = "book:"

// MaxSlotButtons ограничение числа кнопок в одной клавиатуре
const MaxSlotButtons = 48

// Builder упрощает создание inline клавиатур
type Builder struct {
	rows [][]models.InlineKeyboardButton
}

// NewBuilder создаёт новый builder клавиатуры
func NewBuilder() *Builder {
	return &Builder{
		rows: make([][]models.InlineKeyboardButton, 0),
	}
}

// Row добавляет новый ряд кнопок
func (b *Builder) Row(buttons ...models.InlineKeyboardButton) *Builder {
	if len(buttons) > 0 {
		b.rows = append(b.rows, buttons)
	}
	return b
}

// Button создаёт кнопку
func Button(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// Build создаёт финальную клавиатуру
func (b *Builder) Build() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: b.rows,
	}
}

// FreeSlots клавиатура со свободными слотами, по две кнопки в ряд
func FreeSlots(items []model.SlotAvailability, loc *time.Location) *models.InlineKeyboardMarkup {
	b := NewBuilder()

	row := make([]models.InlineKeyboardButton, 0, 2)
	count := 0
	for _, item := range items {
		if item.IsBooked {
			continue
		}
		if count == MaxSlotButtons {
			break
		}

		start := item.Slot.StartAt.In(loc)
		end := item.Slot.EndAt.In(loc)
		text := fmt.Sprintf("%s %s-%s", start.Format("02.01"), start.Format("15:04"), end.Format("15:04"))

		row = append(row, Button(text, BookSlotPrefix+item.Slot.ID))
		count++
		if len(row) == 2 {
			b.Row(row...)
			row = make([]models.InlineKeyboardButton, 0, 2)
		}
	}
	b.Row(row...)

	return b.Build()
}
