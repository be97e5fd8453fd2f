package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Freeeeeet/slot_booking/internal/model"
	"github.com/Freeeeeet/slot_booking/internal/repository/memory"
	"github.com/stretchr/testify/require"
)

var workday = model.BusinessHours{StartHour: 9, EndHour: 17}

// monday 2024-06-03
func monday() time.Time {
	return time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
}

type fakeRecorder struct {
	mu         sync.Mutex
	outcomes   map[string]int
	generated  int
	genErrors  int
	claimCalls int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{outcomes: make(map[string]int)}
}

func (r *fakeRecorder) RecordBooking(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes[outcome]++
}

func (r *fakeRecorder) RecordClaimLatency(time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.claimCalls++
}

func (r *fakeRecorder) RecordGeneration(created int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.genErrors++
		return
	}
	r.generated += created
}

func (r *fakeRecorder) outcome(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcomes[name]
}

// seededStore хранилище со сгенерированным окном из days дней начиная с monday()
func seededStore(t *testing.T, days int) *memory.Store {
	t.Helper()

	store := memory.NewStore()
	slots, err := GenerateSlots(monday(), days, workday, 30, time.UTC)
	require.NoError(t, err)

	_, err = store.CreateSlotsIfAbsent(context.Background(), slots)
	require.NoError(t, err)

	return store
}
