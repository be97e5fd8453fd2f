package common

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Helper functions для всех callback handlers

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// ParseValueFromCallback извлекает значение после префикса
// Например: "book:3f0c...", "book:" -> "3f0c..."
func ParseValueFromCallback(data, prefix string) (string, error) {
	if !strings.HasPrefix(data, prefix) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}
	value := strings.TrimPrefix(data, prefix)
	if value == "" || strings.Contains(value, ":") {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}
	return value, nil
}

// SubjectID идентификатор субъекта для пользователя Telegram
func SubjectID(telegramID int64) string {
	return strconv.FormatInt(telegramID, 10)
}

// DisplayName имя пользователя для проекций
func DisplayName(user *models.User) string {
	if user == nil {
		return ""
	}
	return strings.TrimSpace(user.FirstName + " " + user.LastName)
}

// Contact контакт пользователя, @username если есть
func Contact(user *models.User) string {
	if user == nil || user.Username == "" {
		return ""
	}
	return "@" + user.Username
}
