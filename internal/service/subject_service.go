package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/slot_booking/internal/model"
	"go.uber.org/zap"
)

// SubjectService справочник субъектов для проекций bookedBy
type SubjectService struct {
	subjects SubjectDirectory
	logger   *zap.Logger
}

func NewSubjectService(subjects SubjectDirectory, logger *zap.Logger) *SubjectService {
	return &SubjectService{
		subjects: subjects,
		logger:   logger,
	}
}

// RegisterSubject регистрирует или обновляет субъекта
func (s *SubjectService) RegisterSubject(ctx context.Context, id, displayName, contact string, isAdmin bool) (*model.Subject, error) {
	if id == "" {
		return nil, model.ErrEmptySubject
	}

	subject := &model.Subject{
		ID:          id,
		DisplayName: displayName,
		Contact:     contact,
		IsAdmin:     isAdmin,
	}

	if err := s.subjects.Upsert(ctx, subject); err != nil {
		return nil, fmt.Errorf("upsert subject: %w", err)
	}

	s.logger.Info("Subject registered",
		zap.String("subject_id", id),
		zap.Bool("is_admin", isAdmin),
	)

	return subject, nil
}

// GetByID получает субъекта по ID, nil если не зарегистрирован
func (s *SubjectService) GetByID(ctx context.Context, id string) (*model.Subject, error) {
	return s.subjects.GetByID(ctx, id)
}
