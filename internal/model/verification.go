package model

import "time"

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"
)

func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationStatusPending, VerificationStatusApproved, VerificationStatusRejected:
		return true
	}
	return false
}

// BusinessVerification is an academy owner's proof of business registration.
// An approved verification can be spent on exactly one academy.
type BusinessVerification struct {
	ID                 int64              `json:"id"`
	UserID             int64              `json:"user_id"`
	BusinessNumber     string             `json:"business_number"`
	BusinessName       string             `json:"business_name"`
	RepresentativeName string             `json:"representative_name"`
	DocumentKey        *string            `json:"document_key,omitempty"`
	Status             VerificationStatus `json:"status"`
	RejectReason       *string            `json:"reject_reason,omitempty"`
	ReviewedBy         *int64             `json:"reviewed_by,omitempty"`
	ReviewedAt         *time.Time         `json:"reviewed_at,omitempty"`
	ConsumedAt         *time.Time         `json:"consumed_at,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func (v *BusinessVerification) IsUsable() bool {
	return v.Status == VerificationStatusApproved && v.ConsumedAt == nil
}
