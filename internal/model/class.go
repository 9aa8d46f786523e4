package model

import "time"

type Class struct {
	ID          int64     `json:"id"`
	AcademyID   int64     `json:"academy_id"`
	TeacherID   *int64    `json:"teacher_id,omitempty"`
	Name        string    `json:"name"`
	Subject     string    `json:"subject"`
	TargetGrade string    `json:"target_grade"`
	Schedule    string    `json:"schedule"` // canonical schedule.Build form
	Tuition     *int32    `json:"tuition,omitempty"`
	Capacity    *int32    `json:"capacity,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
