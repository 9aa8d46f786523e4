package model

import "time"

type Teacher struct {
	ID        int64     `json:"id"`
	AcademyID int64     `json:"academy_id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Bio       *string   `json:"bio,omitempty"`
	PhotoKey  *string   `json:"photo_key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
