package dto

import "time"

type ConsultationRequest struct {
	ChildID     *int64     `json:"child_id,omitempty"`
	PreferredAt *time.Time `json:"preferred_at,omitempty"`
	Message     string     `json:"message" binding:"required"`
}

type UpdateConsultationRequest struct {
	Status      string  `json:"status" binding:"required"`
	AcademyNote *string `json:"academy_note,omitempty" binding:"omitempty,max=1000"`
}
