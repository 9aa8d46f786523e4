package model

import "time"

type Post struct {
	ID          int64     `json:"id"`
	AcademyID   int64     `json:"academy_id"`
	AuthorID    int64     `json:"author_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	ImageKeys   []string  `json:"image_keys"`
	AcademyName string    `json:"academy_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
