package model

import (
	"time"

	"github.com/google/uuid"
)

// slotNamespace пространство имён для детерминированных идентификаторов слотов
var slotNamespace = uuid.MustParse("6f1c5c8e-2b7a-4d43-9a53-3a1de7c0f0a1")

// Slot неизменяемый интервал [StartAt, EndAt) фиксированной длительности
type Slot struct {
	ID      string    `json:"id"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

// NewSlot создаёт определение слота. Идентификатор однозначно выводится из интервала,
// поэтому повторная генерация того же интервала всегда даёт тот же слот.
func NewSlot(startAt, endAt time.Time) Slot {
	startAt = startAt.UTC()
	endAt = endAt.UTC()

	return Slot{
		ID:      SlotID(startAt, endAt),
		StartAt: startAt,
		EndAt:   endAt,
	}
}

// SlotID возвращает UUIDv5 интервала
func SlotID(startAt, endAt time.Time) string {
	key := startAt.UTC().Format(time.RFC3339) + "/" + endAt.UTC().Format(time.RFC3339)
	return uuid.NewSHA1(slotNamespace, []byte(key)).String()
}

// Duration длительность слота
func (s Slot) Duration() time.Duration {
	return s.EndAt.Sub(s.StartAt)
}

// BusinessHours рабочие часы: StartHour включительно, EndHour исключительно
type BusinessHours struct {
	StartHour int
	EndHour   int
}

// SlotAvailability слот вместе с производным состоянием бронирования
type SlotAvailability struct {
	Slot     Slot            `json:"slot"`
	IsBooked bool            `json:"is_booked"`
	BookedBy *SubjectProfile `json:"booked_by,omitempty"` // только если IsBooked
}
