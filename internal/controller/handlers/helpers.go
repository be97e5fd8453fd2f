package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/slot_booking/internal/service"
)

// ParseSlotsCommand разбирает "/slots [from] [to]".
// Без аргументов возвращает окно из days дней начиная с today.
func ParseSlotsCommand(text string, today time.Time, days int) (time.Time, time.Time, error) {
	args := strings.Fields(text)
	if len(args) > 0 {
		args = args[1:]
	}

	switch len(args) {
	case 0:
		year, month, day := today.Date()
		from := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if days < 1 {
			days = 1
		}
		return from, from.AddDate(0, 0, days-1), nil
	case 1:
		return service.ParseDateRange(args[0], "")
	case 2:
		return service.ParseDateRange(args[0], args[1])
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: too many arguments", service.ErrInvalidDateRange)
	}
}
