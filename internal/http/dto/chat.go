package dto

type OpenRoomRequest struct {
	AcademyID int64 `json:"academy_id" binding:"required"`
}

type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}
