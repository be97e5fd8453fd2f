package common

import (
	"fmt"
	"testing"

	"github.com/Freeeeeet/slot_booking/internal/model"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValueFromCallback(t *testing.T) {
	value, err := ParseValueFromCallback("book:3f0c8a52-1111-5222-8333-444455556666", "book:")
	require.NoError(t, err)
	assert.Equal(t, "3f0c8a52-1111-5222-8333-444455556666", value)

	for _, data := range []string{"book:", "cancel:123", "book:a:b"} {
		_, err := ParseValueFromCallback(data, "book:")
		assert.ErrorIs(t, err, ErrInvalidFormat, data)
	}
}

func TestSubjectIdentity(t *testing.T) {
	user := &models.User{ID: 123456789, FirstName: "Alice", LastName: "Smith", Username: "alice"}

	assert.Equal(t, "123456789", SubjectID(user.ID))
	assert.Equal(t, "Alice Smith", DisplayName(user))
	assert.Equal(t, "@alice", Contact(user))

	anon := &models.User{ID: 1, FirstName: "Bob"}
	assert.Equal(t, "Bob", DisplayName(anon))
	assert.Empty(t, Contact(anon))
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("claim slot x: %w", model.ErrSlotAlreadyBooked), "😔 Этот слот уже занят. Выберите другое время: /slots"},
		{fmt.Errorf("claim slot x: %w", model.ErrSlotNotFound), "❌ Слот не найден"},
		{fmt.Errorf("claim slot: %w", model.ErrStorageUnavailable), "⚠️ Сервис временно недоступен. Попробуйте ещё раз через минуту."},
		{ErrRateLimited, "⏳ Слишком много попыток. Подождите немного."},
		{fmt.Errorf("other"), "❌ Произошла ошибка"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorMessage(tt.err))
	}
}
