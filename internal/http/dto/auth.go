package dto

import "academyhub.app/server/internal/model"

type AuthURLResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	State            string `json:"state"`
}

type ExchangeRequest struct {
	Code string `json:"code" binding:"required"`
}

type ExchangeResponse struct {
	User      *UserResponse `json:"user"`
	SessionID string        `json:"session_id"`
	ExpiresIn int           `json:"expires_in"` // hours
}

type LogoutRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

type LogoutResponse struct {
	Message   string  `json:"message"`
	LogoutURL *string `json:"logout_url,omitempty"`
}

type UserResponse struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	AvatarURL *string      `json:"avatar_url,omitempty"`
	Phone     *string      `json:"phone,omitempty"`
	Region    *string      `json:"region,omitempty"`
	Roles     []model.Role `json:"roles"`
}

func ToUserResponse(u *model.User) *UserResponse {
	roles := u.Roles
	if roles == nil {
		roles = []model.Role{}
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		Phone:     u.Phone,
		Region:    u.Region,
		Roles:     roles,
	}
}
