package repository

import (
	"time"

	"github.com/Freeeeeet/slot_booking/internal/repository/base"
	"github.com/Masterminds/squirrel"
)

const insertSlotIfAbsentQuery = `
	INSERT INTO slots (id, start_at, end_at)
	VALUES ($1, $2, $3)
	ON CONFLICT DO NOTHING
`

// Вставка проходит только если слот существует и на него ещё нет брони.
// Уникальный индекс bookings(slot_id) делает проверку и захват одной операцией.
const claimSlotQuery = `
	INSERT INTO bookings (id, subject_id, slot_id, created_at)
	SELECT $1, $2, s.id, clock_timestamp()
	FROM slots s
	WHERE s.id = $3
	ON CONFLICT (slot_id) DO NOTHING
	RETURNING created_at
`

const slotExistsQuery = `SELECT EXISTS(SELECT 1 FROM slots WHERE id = $1)`

const getSlotQuery = `
	SELECT id, start_at, end_at
	FROM slots
	WHERE id = $1
`

const getSubjectProfileQuery = `
	SELECT id, display_name, contact
	FROM subjects
	WHERE id = $1
`

// listSlotsQuery слоты с началом в [from, to) по возрастанию
func listSlotsQuery(from, to time.Time) (string, []interface{}, error) {
	return base.Builder().
		Select("id", "start_at", "end_at").
		From("slots").
		Where(squirrel.GtOrEq{"start_at": from}).
		Where(squirrel.Lt{"start_at": to}).
		OrderBy("start_at ASC").
		ToSql()
}

// availabilityQuery слоты в [from, to) вместе с бронью и проекцией субъекта
func availabilityQuery(from, to time.Time) (string, []interface{}, error) {
	return base.Builder().
		Select(
			"s.id",
			"s.start_at",
			"s.end_at",
			"b.subject_id",
			"COALESCE(u.display_name, '')",
			"COALESCE(u.contact, '')",
		).
		From("slots s").
		LeftJoin("bookings b ON b.slot_id = s.id").
		LeftJoin("subjects u ON u.id = b.subject_id").
		Where(squirrel.GtOrEq{"s.start_at": from}).
		Where(squirrel.Lt{"s.start_at": to}).
		OrderBy("s.start_at ASC").
		ToSql()
}

// bookingsQuery брони с проекциями, новые первыми. Пустой subjectID означает все брони.
func bookingsQuery(subjectID string) (string, []interface{}, error) {
	q := base.Builder().
		Select(
			"b.id",
			"b.subject_id",
			"b.slot_id",
			"b.created_at",
			"s.start_at",
			"s.end_at",
			"COALESCE(u.display_name, '')",
			"COALESCE(u.contact, '')",
		).
		From("bookings b").
		Join("slots s ON s.id = b.slot_id").
		LeftJoin("subjects u ON u.id = b.subject_id")

	if subjectID != "" {
		q = q.Where(squirrel.Eq{"b.subject_id": subjectID})
	}

	return q.OrderBy("b.created_at DESC", "b.id DESC").ToSql()
}
