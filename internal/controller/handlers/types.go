package handlers

import (
	"time"

	"github.com/Freeeeeet/slot_booking/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	subjectService *service.SubjectService
	queryService   *service.QueryService
	isAdmin        func(telegramID int64) bool
	location       *time.Location
	windowDays     int
	now            func() time.Time
	logger         *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	subjectService *service.SubjectService,
	queryService *service.QueryService,
	isAdmin func(telegramID int64) bool,
	location *time.Location,
	windowDays int,
	logger *zap.Logger,
) *Handlers {
	if location == nil {
		location = time.UTC
	}

	return &Handlers{
		subjectService: subjectService,
		queryService:   queryService,
		isAdmin:        isAdmin,
		location:       location,
		windowDays:     windowDays,
		now:            time.Now,
		logger:         logger,
	}
}
