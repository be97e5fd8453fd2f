package service

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout формат дат во входящих запросах
const DateLayout = "2006-01-02"

// ErrInvalidDateRange неверная дата или from позже to
var ErrInvalidDateRange = errors.New("invalid date range")

// ParseDateRange разбирает пару дат YYYY-MM-DD. Пустой to означает from.
func ParseDateRange(from, to string) (time.Time, time.Time, error) {
	fromDate, err := time.ParseInLocation(DateLayout, from, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from %q", ErrInvalidDateRange, from)
	}

	if to == "" {
		return fromDate, fromDate, nil
	}

	toDate, err := time.ParseInLocation(DateLayout, to, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to %q", ErrInvalidDateRange, to)
	}

	if toDate.Before(fromDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s is before %s", ErrInvalidDateRange, to, from)
	}

	return fromDate, toDate, nil
}
