// Package memory хранилище слотов и броней в памяти процесса для тестов сервисов.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Freeeeeet/slot_booking/internal/model"
	"github.com/google/uuid"
)

type interval struct {
	start int64
	end   int64
}

type storedBooking struct {
	booking model.Booking
	seq     uint64
}

// Store хранилище в памяти. Транзакций нет, поэтому все изменения
// сериализуются через mu: проверка и захват слота выполняются под одной блокировкой.
type Store struct {
	mu sync.RWMutex

	slots      map[string]model.Slot
	byInterval map[interval]string
	bookings   map[string]*storedBooking // ключ: slot id
	subjects   map[string]*model.Subject
	seq        uint64

	now func() time.Time
}

// NewStore создаёт пустое хранилище
func NewStore() *Store {
	return &Store{
		slots:      make(map[string]model.Slot),
		byInterval: make(map[interval]string),
		bookings:   make(map[string]*storedBooking),
		subjects:   make(map[string]*model.Subject),
		now:        time.Now,
	}
}

// GetSlot получает слот по ID
func (s *Store) GetSlot(ctx context.Context, id string) (*model.Slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.slots[id]
	if !ok {
		return nil, fmt.Errorf("get slot %s: %w", id, model.ErrSlotNotFound)
	}

	return &slot, nil
}

// ListSlots получает слоты, начинающиеся в [from, to), по возрастанию
func (s *Store) ListSlots(ctx context.Context, from, to time.Time) ([]model.Slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.slotsInRange(from, to), nil
}

// CreateSlotIfAbsent создаёт слот, если слота с таким интервалом ещё нет
func (s *Store) CreateSlotIfAbsent(ctx context.Context, slot model.Slot) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertSlot(slot), nil
}

// CreateSlotsIfAbsent вставляет пачку слотов под одной блокировкой
func (s *Store) CreateSlotsIfAbsent(ctx context.Context, slots []model.Slot) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inserted := 0
	for _, slot := range slots {
		if s.insertSlot(slot) {
			inserted++
		}
	}

	return inserted, nil
}

// TryClaim атомарно бронирует слот за субъектом
func (s *Store) TryClaim(ctx context.Context, slotID, subjectID string) (*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[slotID]
	if !ok {
		return nil, fmt.Errorf("claim slot %s: %w", slotID, model.ErrSlotNotFound)
	}

	if _, booked := s.bookings[slotID]; booked {
		return nil, fmt.Errorf("claim slot %s: %w", slotID, model.ErrSlotAlreadyBooked)
	}

	s.seq++
	stored := &storedBooking{
		booking: model.Booking{
			ID:        uuid.NewString(),
			SubjectID: subjectID,
			SlotID:    slotID,
			CreatedAt: s.now().UTC(),
		},
		seq: s.seq,
	}
	s.bookings[slotID] = stored

	return s.project(stored.booking, slot), nil
}

// ListAvailability получает слоты в [from, to) с признаком занятости
func (s *Store) ListAvailability(ctx context.Context, from, to time.Time) ([]model.SlotAvailability, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	slots := s.slotsInRange(from, to)
	result := make([]model.SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		item := model.SlotAvailability{Slot: slot}
		if stored, ok := s.bookings[slot.ID]; ok {
			profile := s.profile(stored.booking.SubjectID)
			item.IsBooked = true
			item.BookedBy = &profile
		}
		result = append(result, item)
	}

	return result, nil
}

// ListBookingsBySubject получает брони субъекта, новые первыми
func (s *Store) ListBookingsBySubject(ctx context.Context, subjectID string) ([]*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listBookings(func(b model.Booking) bool { return b.SubjectID == subjectID }), nil
}

// ListAllBookings получает все брони, новые первыми
func (s *Store) ListAllBookings(ctx context.Context) ([]*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listBookings(func(model.Booking) bool { return true }), nil
}

// Upsert создаёт или обновляет субъекта
func (s *Store) Upsert(ctx context.Context, subject *model.Subject) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	if existing, ok := s.subjects[subject.ID]; ok {
		subject.CreatedAt = existing.CreatedAt
	} else {
		subject.CreatedAt = now
	}
	subject.UpdatedAt = now

	stored := *subject
	s.subjects[subject.ID] = &stored

	return nil
}

// GetByID получает субъекта по ID, nil если не зарегистрирован
func (s *Store) GetByID(ctx context.Context, id string) (*model.Subject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	subject, ok := s.subjects[id]
	if !ok {
		return nil, nil
	}

	result := *subject
	return &result, nil
}

func (s *Store) insertSlot(slot model.Slot) bool {
	key := interval{start: slot.StartAt.UnixNano(), end: slot.EndAt.UnixNano()}
	if _, exists := s.byInterval[key]; exists {
		return false
	}
	if _, exists := s.slots[slot.ID]; exists {
		return false
	}

	slot.StartAt = slot.StartAt.UTC()
	slot.EndAt = slot.EndAt.UTC()
	s.slots[slot.ID] = slot
	s.byInterval[key] = slot.ID

	return true
}

func (s *Store) slotsInRange(from, to time.Time) []model.Slot {
	result := make([]model.Slot, 0)
	for _, slot := range s.slots {
		if !slot.StartAt.Before(from) && slot.StartAt.Before(to) {
			result = append(result, slot)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartAt.Before(result[j].StartAt)
	})

	return result
}

func (s *Store) listBookings(match func(model.Booking) bool) []*model.Booking {
	stored := make([]*storedBooking, 0)
	for _, b := range s.bookings {
		if match(b.booking) {
			stored = append(stored, b)
		}
	}

	sort.Slice(stored, func(i, j int) bool {
		if !stored[i].booking.CreatedAt.Equal(stored[j].booking.CreatedAt) {
			return stored[i].booking.CreatedAt.After(stored[j].booking.CreatedAt)
		}
		return stored[i].seq > stored[j].seq
	})

	result := make([]*model.Booking, 0, len(stored))
	for _, b := range stored {
		result = append(result, s.project(b.booking, s.slots[b.booking.SlotID]))
	}

	return result
}

func (s *Store) project(booking model.Booking, slot model.Slot) *model.Booking {
	profile := s.profile(booking.SubjectID)
	booking.Slot = &slot
	booking.Subject = &profile
	return &booking
}

func (s *Store) profile(subjectID string) model.SubjectProfile {
	if subject, ok := s.subjects[subjectID]; ok {
		return subject.Profile()
	}
	return model.SubjectProfile{ID: subjectID}
}
