package dto

type CreateAcademyRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description" binding:"max=2000"`
	Region      string   `json:"region" binding:"required"`
	Address     string   `json:"address" binding:"max=200"`
	Phone       *string  `json:"phone,omitempty" binding:"omitempty,max=20"`
	Tags        []string `json:"tags"`
	LogoKey     *string  `json:"logo_key,omitempty"`
}

type UpdateAcademyRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string  `json:"description,omitempty"`
	Region      *string  `json:"region,omitempty"`
	Address     *string  `json:"address,omitempty" binding:"omitempty,max=200"`
	Phone       *string  `json:"phone,omitempty" binding:"omitempty,max=20"`
	Tags        []string `json:"tags,omitempty"`
	LogoKey     *string  `json:"logo_key,omitempty"`
}

type JoinAcademyRequest struct {
	Code string `json:"code" binding:"required"`
}

type SetPermissionsRequest struct {
	Permissions []string `json:"permissions" binding:"required"`
}

type JoinCodeResponse struct {
	JoinCode string `json:"join_code"`
}
