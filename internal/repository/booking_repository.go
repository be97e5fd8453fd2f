package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/slot_booking/internal/model"
	"github.com/Freeeeeet/slot_booking/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TryClaim атомарно бронирует слот за субъектом.
// Возвращает model.ErrSlotNotFound, если слота нет, и model.ErrSlotAlreadyBooked,
// если на слот уже есть бронь. В обоих случаях ничего не записывается.
func (r *SlotRepository) TryClaim(ctx context.Context, slotID, subjectID string) (*model.Booking, error) {
	booking := &model.Booking{
		ID:        uuid.NewString(),
		SubjectID: subjectID,
		SlotID:    slotID,
	}

	err := r.InTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, claimSlotQuery, booking.ID, subjectID, slotID).Scan(&booking.CreatedAt)
		if err != nil {
			if !base.IsNotFound(err) {
				return err
			}

			// Ни одной строки не вставлено: либо слота нет, либо он уже занят.
			// Слоты никогда не удаляются, поэтому проверка после вставки однозначна.
			var exists bool
			if err := tx.QueryRow(ctx, slotExistsQuery, slotID).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return model.ErrSlotNotFound
			}
			return model.ErrSlotAlreadyBooked
		}

		var slot model.Slot
		if err := tx.QueryRow(ctx, getSlotQuery, slotID).Scan(&slot.ID, &slot.StartAt, &slot.EndAt); err != nil {
			return err
		}
		slot.StartAt = slot.StartAt.UTC()
		slot.EndAt = slot.EndAt.UTC()
		booking.Slot = &slot

		profile := model.SubjectProfile{ID: subjectID}
		err = tx.QueryRow(ctx, getSubjectProfileQuery, subjectID).Scan(&profile.ID, &profile.DisplayName, &profile.Contact)
		if err != nil && !base.IsNotFound(err) {
			return err
		}
		booking.Subject = &profile

		return nil
	})

	switch {
	case err == nil:
		booking.CreatedAt = booking.CreatedAt.UTC()
		return booking, nil
	case errors.Is(err, model.ErrSlotNotFound), errors.Is(err, model.ErrSlotAlreadyBooked):
		return nil, fmt.Errorf("claim slot %s: %w", slotID, err)
	default:
		return nil, storageError("claim slot", err)
	}
}

// ListBookingsBySubject получает все брони субъекта, новые первыми
func (r *SlotRepository) ListBookingsBySubject(ctx context.Context, subjectID string) ([]*model.Booking, error) {
	return r.listBookings(ctx, subjectID)
}

// ListAllBookings получает все брони, новые первыми
func (r *SlotRepository) ListAllBookings(ctx context.Context) ([]*model.Booking, error) {
	return r.listBookings(ctx, "")
}

func (r *SlotRepository) listBookings(ctx context.Context, subjectID string) ([]*model.Booking, error) {
	query, args, err := bookingsQuery(subjectID)
	if err != nil {
		return nil, fmt.Errorf("build bookings query: %w", err)
	}

	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError("list bookings", err)
	}
	defer rows.Close()

	bookings := make([]*model.Booking, 0)
	for rows.Next() {
		var (
			booking model.Booking
			slot    model.Slot
			profile model.SubjectProfile
		)

		err := rows.Scan(
			&booking.ID,
			&booking.SubjectID,
			&booking.SlotID,
			&booking.CreatedAt,
			&slot.StartAt,
			&slot.EndAt,
			&profile.DisplayName,
			&profile.Contact,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}

		booking.CreatedAt = booking.CreatedAt.UTC()
		slot.ID = booking.SlotID
		slot.StartAt = slot.StartAt.UTC()
		slot.EndAt = slot.EndAt.UTC()
		profile.ID = booking.SubjectID

		booking.Slot = &slot
		booking.Subject = &profile
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("iterate bookings", err)
	}

	return bookings, nil
}
