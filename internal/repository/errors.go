package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/Freeeeeet/slot_booking/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
)

// storageError оборачивает ошибку драйвера. Временные сбои дополнительно помечаются
// model.ErrStorageUnavailable, чтобы вызывающий мог повторить операцию целиком.
func storageError(op string, err error) error {
	if isTransient(err) {
		return fmt.Errorf("%s: %w: %w", op, model.ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isTransient определяет сбои соединения, таймауты и конфликты сериализации
func isTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "08"): // connection_exception
			return true
		case strings.HasPrefix(pgErr.Code, "53"): // insufficient_resources
			return true
		case strings.HasPrefix(pgErr.Code, "57P"): // admin/crash shutdown, cannot_connect_now
			return true
		case pgErr.Code == "40001", pgErr.Code == "40P01":
			return true
		}
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return pgconn.SafeToRetry(err)
}
