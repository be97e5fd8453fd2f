package repository

import (
	"context"

	"github.com/Freeeeeet/slot_booking/internal/model"
	"github.com/Freeeeeet/slot_booking/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubjectRepository справочник субъектов (отображаемое имя и контакт)
type SubjectRepository struct {
	*base.Repository
}

func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{Repository: base.NewRepository(pool)}
}

// Upsert создаёт субъекта или обновляет его данные
func (r *SubjectRepository) Upsert(ctx context.Context, subject *model.Subject) error {
	query := `
		INSERT INTO subjects (id, display_name, contact, is_admin)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    contact = EXCLUDED.contact,
		    is_admin = EXCLUDED.is_admin,
		    updated_at = now()
		RETURNING created_at, updated_at
	`

	err := r.QueryRow(
		ctx, query,
		subject.ID,
		subject.DisplayName,
		subject.Contact,
		subject.IsAdmin,
	).Scan(&subject.CreatedAt, &subject.UpdatedAt)

	if err != nil {
		return storageError("upsert subject", err)
	}

	return nil
}

// GetByID получает субъекта по ID
func (r *SubjectRepository) GetByID(ctx context.Context, id string) (*model.Subject, error) {
	query := `
		SELECT id, display_name, contact, is_admin, created_at, updated_at
		FROM subjects
		WHERE id = $1
	`

	var subject model.Subject
	err := r.QueryRow(ctx, query, id).Scan(
		&subject.ID,
		&subject.DisplayName,
		&subject.Contact,
		&subject.IsAdmin,
		&subject.CreatedAt,
		&subject.UpdatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil // Субъект не зарегистрирован
		}
		return nil, storageError("get subject by id", err)
	}

	return &subject, nil
}
