package model

import "time"

type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "pending"
	ConsultationStatusConfirmed ConsultationStatus = "confirmed"
	ConsultationStatusCompleted ConsultationStatus = "completed"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

var consultationTransitions = map[ConsultationStatus][]ConsultationStatus{
	ConsultationStatusPending:   {ConsultationStatusConfirmed, ConsultationStatusCancelled},
	ConsultationStatusConfirmed: {ConsultationStatusCompleted, ConsultationStatusCancelled},
}

func (s ConsultationStatus) Valid() bool {
	switch s {
	case ConsultationStatusPending, ConsultationStatusConfirmed, ConsultationStatusCompleted, ConsultationStatusCancelled:
		return true
	}
	return false
}

func (s ConsultationStatus) CanTransitionTo(next ConsultationStatus) bool {
	for _, allowed := range consultationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Consultation struct {
	ID          int64              `json:"id"`
	AcademyID   int64              `json:"academy_id"`
	UserID      int64              `json:"user_id"`
	ChildID     *int64             `json:"child_id,omitempty"`
	PreferredAt *time.Time         `json:"preferred_at,omitempty"`
	Message     string             `json:"message"`
	Status      ConsultationStatus `json:"status"`
	AcademyNote *string            `json:"academy_note,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
