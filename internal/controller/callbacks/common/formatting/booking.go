package formatting

import (
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/slot_booking/internal/model"
)

// MaxListedSlots сколько слотов выводить в одном сообщении
const MaxListedSlots = 64

// FormatSubject имя субъекта для вывода, ID если профиль пуст
func FormatSubject(p *model.SubjectProfile) string {
	if p == nil {
		return "неизвестно"
	}

	name := p.DisplayName
	if name == "" {
		name = "ID " + p.ID
	}
	if p.Contact != "" {
		name += " (" + p.Contact + ")"
	}
	return name
}

// FormatAvailability список слотов по дням. showBookedBy показывает, кем занят слот.
func FormatAvailability(items []model.SlotAvailability, loc *time.Location, showBookedBy bool) string {
	if len(items) == 0 {
		return "📭 В выбранные даты слотов нет."
	}

	var sb strings.Builder
	sb.WriteString("🗓 Расписание:\n")

	free := 0
	currentDay := ""
	for i, item := range items {
		if !item.IsBooked {
			free++
		}
		if i >= MaxListedSlots {
			continue
		}

		start := item.Slot.StartAt.In(loc)
		end := item.Slot.EndAt.In(loc)

		if day := FormatDateWithWeekday(start); day != currentDay {
			currentDay = day
			sb.WriteString("\n📅 " + day + "\n")
		}

		switch {
		case !item.IsBooked:
			sb.WriteString(fmt.Sprintf("🟢 %s свободно\n", FormatTimeRange(start, end)))
		case showBookedBy:
			sb.WriteString(fmt.Sprintf("🔴 %s занято: %s\n", FormatTimeRange(start, end), FormatSubject(item.BookedBy)))
		default:
			sb.WriteString(fmt.Sprintf("🔴 %s занято\n", FormatTimeRange(start, end)))
		}
	}

	if hidden := len(items) - MaxListedSlots; hidden > 0 {
		sb.WriteString(fmt.Sprintf("\n…и ещё %d. Сузьте диапазон дат.\n", hidden))
	}
	sb.WriteString(fmt.Sprintf("\nСвободно: %d из %d", free, len(items)))

	return sb.String()
}

// FormatBooking форматирует бронирование для отображения
func FormatBooking(booking *model.Booking, loc *time.Location, showSubject bool) string {
	var sb strings.Builder

	if booking.Slot != nil {
		start := booking.Slot.StartAt.In(loc)
		end := booking.Slot.EndAt.In(loc)
		sb.WriteString(fmt.Sprintf("📅 %s %s", FormatDate(start), FormatTimeRange(start, end)))
	} else {
		sb.WriteString("📅 слот " + booking.SlotID)
	}

	if showSubject {
		sb.WriteString("\n👤 " + FormatSubject(booking.Subject))
	}
	sb.WriteString("\n🕐 Создана: " + FormatDateTime(booking.CreatedAt.In(loc)))

	return sb.String()
}

// FormatBookings список броней, новые первыми
func FormatBookings(title string, bookings []*model.Booking, loc *time.Location, showSubject bool) string {
	if len(bookings) == 0 {
		return title + "\n\nЗаписей пока нет."
	}

	var sb strings.Builder
	sb.WriteString(title)
	for _, booking := range bookings {
		sb.WriteString("\n\n")
		sb.WriteString(FormatBooking(booking, loc, showSubject))
	}
	return sb.String()
}
