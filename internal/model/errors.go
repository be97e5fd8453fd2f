package model

import "errors"

var (
	// ErrSlotNotFound слот с таким идентификатором не существует
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotAlreadyBooked слот уже занят (тем же или другим субъектом)
	ErrSlotAlreadyBooked = errors.New("slot already booked")

	// ErrStorageUnavailable хранилище временно не смогло выполнить операцию, повтор безопасен
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidGenerationParameters неверные параметры генерации календаря
	ErrInvalidGenerationParameters = errors.New("invalid generation parameters")

	// ErrEmptySubject пустой идентификатор субъекта
	ErrEmptySubject = errors.New("subject id is required")
)
