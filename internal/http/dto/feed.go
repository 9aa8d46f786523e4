package dto

type PostRequest struct {
	Title     string   `json:"title" binding:"required"`
	Body      string   `json:"body" binding:"required"`
	ImageKeys []string `json:"image_keys"`
}
