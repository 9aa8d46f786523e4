package dto

type ChildRequest struct {
	Name      string   `json:"name" binding:"required"`
	Grade     string   `json:"grade"`
	BirthYear *int32   `json:"birth_year,omitempty"`
	Tags      []string `json:"tags"`
}
