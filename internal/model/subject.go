package model

import "time"

// SubjectProfile минимальная проекция субъекта, которую можно показывать другим
type SubjectProfile struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name,omitempty"`
	Contact     string `json:"contact,omitempty"`
}

// Subject запись справочника субъектов. Ведётся внешним слоем идентификации,
// ядро бронирования использует только SubjectProfile.
type Subject struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Contact     string    `json:"contact"`
	IsAdmin     bool      `json:"is_admin"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Profile возвращает публичную проекцию субъекта
func (s *Subject) Profile() SubjectProfile {
	return SubjectProfile{
		ID:          s.ID,
		DisplayName: s.DisplayName,
		Contact:     s.Contact,
	}
}
