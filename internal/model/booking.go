package model

import "time"

// Booking заявка ровно одного субъекта на ровно один слот. После создания не меняется.
type Booking struct {
	ID        string    `json:"id"`
	SubjectID string    `json:"subject_id"`
	SlotID    string    `json:"slot_id"`
	CreatedAt time.Time `json:"created_at"`

	// Проекции для отображения (не хранятся в bookings)
	Slot    *Slot           `json:"slot,omitempty"`
	Subject *SubjectProfile `json:"subject,omitempty"`
}
