package model

import "time"

type Academy struct {
	ID             int64     `json:"id"`
	OwnerUserID    int64     `json:"owner_user_id"`
	VerificationID *int64    `json:"verification_id,omitempty"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	Region         string    `json:"region"`
	Address        string    `json:"address"`
	Phone          *string   `json:"phone,omitempty"`
	Tags           []string  `json:"tags"`
	LogoKey        *string   `json:"logo_key,omitempty"`
	JoinCode       string    `json:"-"`
	IsDeleted      bool      `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type AcademyFilter struct {
	Region  *string
	Subject *string // matched against the "subject:<v>" tag
	Query   *string // name substring
	Limit   int32
	Offset  int32
}
