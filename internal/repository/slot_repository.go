package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/slot_booking/internal/model"
	"github.com/Freeeeeet/slot_booking/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SlotRepository хранилище слотов и броней в PostgreSQL.
// Брони создаются только через TryClaim (booking_repository.go).
type SlotRepository struct {
	*base.Repository
}

func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{Repository: base.NewRepository(pool)}
}

// GetSlot получает слот по ID
func (r *SlotRepository) GetSlot(ctx context.Context, id string) (*model.Slot, error) {
	var slot model.Slot
	err := r.QueryRow(ctx, getSlotQuery, id).Scan(&slot.ID, &slot.StartAt, &slot.EndAt)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, fmt.Errorf("get slot %s: %w", id, model.ErrSlotNotFound)
		}
		return nil, storageError("get slot by id", err)
	}

	slot.StartAt = slot.StartAt.UTC()
	slot.EndAt = slot.EndAt.UTC()

	return &slot, nil
}

// ListSlots получает слоты, начинающиеся в [from, to), по возрастанию start_at
func (r *SlotRepository) ListSlots(ctx context.Context, from, to time.Time) ([]model.Slot, error) {
	query, args, err := listSlotsQuery(from, to)
	if err != nil {
		return nil, fmt.Errorf("build list slots query: %w", err)
	}

	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError("list slots", err)
	}
	defer rows.Close()

	slots := make([]model.Slot, 0)
	for rows.Next() {
		var slot model.Slot
		if err := rows.Scan(&slot.ID, &slot.StartAt, &slot.EndAt); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slot.StartAt = slot.StartAt.UTC()
		slot.EndAt = slot.EndAt.UTC()
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("iterate slots", err)
	}

	return slots, nil
}

// CreateSlotIfAbsent создаёт слот, если его ещё нет. Возвращает true, если слот вставлен.
func (r *SlotRepository) CreateSlotIfAbsent(ctx context.Context, slot model.Slot) (bool, error) {
	affected, err := r.ExecAffected(ctx, insertSlotIfAbsentQuery, slot.ID, slot.StartAt, slot.EndAt)
	if err != nil {
		return false, storageError("create slot", err)
	}

	return affected == 1, nil
}

// CreateSlotsIfAbsent вставляет пачку слотов в одной транзакции.
// Уже существующие слоты пропускаются, возвращается число вставленных.
func (r *SlotRepository) CreateSlotsIfAbsent(ctx context.Context, slots []model.Slot) (int, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	inserted := 0
	err := r.InTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, slot := range slots {
			batch.Queue(insertSlotIfAbsentQuery, slot.ID, slot.StartAt, slot.EndAt)
		}

		results := tx.SendBatch(ctx, batch)
		for range slots {
			tag, err := results.Exec()
			if err != nil {
				results.Close()
				return err
			}
			inserted += int(tag.RowsAffected())
		}

		return results.Close()
	})
	if err != nil {
		return 0, storageError("create slots batch", err)
	}

	return inserted, nil
}

// ListAvailability получает слоты в [from, to) с признаком занятости и проекцией субъекта
func (r *SlotRepository) ListAvailability(ctx context.Context, from, to time.Time) ([]model.SlotAvailability, error) {
	query, args, err := availabilityQuery(from, to)
	if err != nil {
		return nil, fmt.Errorf("build availability query: %w", err)
	}

	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError("list availability", err)
	}
	defer rows.Close()

	result := make([]model.SlotAvailability, 0)
	for rows.Next() {
		var (
			item        model.SlotAvailability
			subjectID   *string
			displayName string
			contact     string
		)

		err := rows.Scan(
			&item.Slot.ID,
			&item.Slot.StartAt,
			&item.Slot.EndAt,
			&subjectID,
			&displayName,
			&contact,
		)
		if err != nil {
			return nil, fmt.Errorf("scan availability: %w", err)
		}

		item.Slot.StartAt = item.Slot.StartAt.UTC()
		item.Slot.EndAt = item.Slot.EndAt.UTC()

		if subjectID != nil {
			item.IsBooked = true
			item.BookedBy = &model.SubjectProfile{
				ID:          *subjectID,
				DisplayName: displayName,
				Contact:     contact,
			}
		}

		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("iterate availability", err)
	}

	return result, nil
}
