package model

import "time"

const MaxChatMessageLength = 2000

type ChatRoom struct {
	ID                int64      `json:"id"`
	AcademyID         int64      `json:"academy_id"`
	UserID            int64      `json:"user_id"`
	UserLastReadID    int64      `json:"user_last_read_id"`
	AcademyLastReadID int64      `json:"academy_last_read_id"`
	LastMessageAt     *time.Time `json:"last_message_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`

	// Populated by ListRooms only.
	AcademyName string `json:"academy_name,omitempty"`
	UserName    string `json:"user_name,omitempty"`
	UnreadCount int64  `json:"unread_count"`
}

type ChatMessage struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id"`
	SenderID  int64     `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
