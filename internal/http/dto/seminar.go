package dto

import "time"

type SeminarRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description" binding:"max=5000"`
	Location    string    `json:"location" binding:"max=200"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	Capacity    int32     `json:"capacity" binding:"required,min=1"`
}

type RegisterSeminarRequest struct {
	ChildID       *int64 `json:"child_id,omitempty"`
	AttendeeCount int32  `json:"attendee_count" binding:"omitempty,min=1,max=4"`
}
