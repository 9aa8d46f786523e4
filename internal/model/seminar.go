package model

import "time"

type SeminarStatus string

const (
	SeminarStatusOpen      SeminarStatus = "open"
	SeminarStatusClosed    SeminarStatus = "closed"
	SeminarStatusCancelled SeminarStatus = "cancelled"
)

type Seminar struct {
	ID          int64         `json:"id"`
	AcademyID   int64         `json:"academy_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	StartsAt    time.Time     `json:"starts_at"`
	Capacity    int32         `json:"capacity"`
	Status      SeminarStatus `json:"status"`
	SeatsTaken  int32         `json:"seats_taken"`
	AcademyName string        `json:"academy_name,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// AcceptsRegistrations reports whether the seminar is open and not yet started.
func (s *Seminar) AcceptsRegistrations(now time.Time) bool {
	return s.Status == SeminarStatusOpen && now.Before(s.StartsAt)
}

func (s *Seminar) SeatsLeft() int32 {
	return max(s.Capacity-s.SeatsTaken, 0)
}

type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "registered"
	RegistrationStatusCancelled  RegistrationStatus = "cancelled"
)

const MaxAttendeesPerRegistration = 4

type SeminarRegistration struct {
	ID            int64              `json:"id"`
	SeminarID     int64              `json:"seminar_id"`
	UserID        int64              `json:"user_id"`
	ChildID       *int64             `json:"child_id,omitempty"`
	AttendeeCount int32              `json:"attendee_count"`
	Status        RegistrationStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Populated by list queries only.
	UserName        string     `json:"user_name,omitempty"`
	UserEmail       string     `json:"user_email,omitempty"`
	SeminarTitle    string     `json:"seminar_title,omitempty"`
	SeminarStartsAt *time.Time `json:"seminar_starts_at,omitempty"`
}
