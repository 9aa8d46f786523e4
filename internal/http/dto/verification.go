package dto

type SubmitVerificationRequest struct {
	BusinessNumber     string  `json:"business_number" binding:"required,bizno"`
	BusinessName       string  `json:"business_name" binding:"required,max=100"`
	RepresentativeName string  `json:"representative_name" binding:"required,max=50"`
	DocumentKey        *string `json:"document_key,omitempty"`
}

type RejectVerificationRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type ResendVerificationEmailRequest struct {
	VerificationID int64 `json:"verification_id" binding:"required"`
}
