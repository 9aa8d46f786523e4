package dto

import "academyhub.app/server/internal/model"

type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Phone  *string `json:"phone,omitempty" binding:"omitempty,max=20"`
	Region *string `json:"region,omitempty"`
}

type ProfileResponse struct {
	User        *UserResponse         `json:"user"`
	Memberships []model.AcademyMember `json:"memberships"`
}
