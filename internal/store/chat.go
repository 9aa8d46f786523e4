package store

import (
	"context"
	"time"

	"academyhub.app/server/core/db/sqlc"
	"academyhub.app/server/internal/model"
)

type chatStore struct {
	queries *sqlc.Queries
}

func newChatStore(queries *sqlc.Queries) ChatStore {
	return &chatStore{queries: queries}
}

// GetOrCreateRoom returns the existing (academy, user) room. id is used only
// when a new room is inserted.
func (s *chatStore) GetOrCreateRoom(ctx context.Context, id, academyID, userID int64) (*model.ChatRoom, error) {
	row, err := s.queries.GetOrCreateChatRoom(ctx, sqlc.GetOrCreateChatRoomParams{
		ID:        id,
		AcademyID: academyID,
		UserID:    userID,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toChatRoomModel(row), nil
}

func (s *chatStore) GetRoom(ctx context.Context, id int64) (*model.ChatRoom, error) {
	row, err := s.queries.GetChatRoom(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toChatRoomModel(row), nil
}

func (s *chatStore) ListRoomsForViewer(ctx context.Context, viewerID int64) ([]model.ChatRoom, error) {
	rows, err := s.queries.ListChatRoomsForViewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	out := make([]model.ChatRoom, len(rows))
	for i, r := range rows {
		m := toChatRoomModel(sqlc.ChatRoom{
			ID: r.ID, AcademyID: r.AcademyID, UserID: r.UserID,
			UserLastReadID: r.UserLastReadID, AcademyLastReadID: r.AcademyLastReadID,
			LastMessageAt: r.LastMessageAt, CreatedAt: r.CreatedAt,
		})
		m.AcademyName = r.AcademyName
		m.UserName = r.UserName
		m.UnreadCount = r.UnreadCount
		out[i] = *m
	}
	return out, nil
}

func (s *chatStore) CreateMessage(ctx context.Context, msg *model.ChatMessage) error {
	row, err := s.queries.CreateChatMessage(ctx, sqlc.CreateChatMessageParams{
		ID:       msg.ID,
		RoomID:   msg.RoomID,
		SenderID: msg.SenderID,
		Body:     msg.Body,
	})
	if err != nil {
		return translate(err)
	}
	*msg = *toChatMessageModel(row)
	return nil
}

func (s *chatStore) TouchRoom(ctx context.Context, roomID int64, at time.Time) error {
	return s.queries.TouchChatRoom(ctx, sqlc.TouchChatRoomParams{
		ID:            roomID,
		LastMessageAt: timestamptz(at),
	})
}

func (s *chatStore) ListMessages(ctx context.Context, roomID int64, before *int64, limit int32) ([]model.ChatMessage, error) {
	rows, err := s.queries.ListChatMessages(ctx, sqlc.ListChatMessagesParams{
		RoomID: roomID,
		Before: before,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.ChatMessage, len(rows))
	for i, r := range rows {
		out[i] = *toChatMessageModel(r)
	}
	return out, nil
}

func (s *chatStore) LatestMessageID(ctx context.Context, roomID int64) (int64, error) {
	return s.queries.GetLatestChatMessageID(ctx, roomID)
}

func (s *chatStore) MarkReadByUser(ctx context.Context, roomID, messageID int64) error {
	return s.queries.MarkChatRoomReadByUser(ctx, sqlc.MarkChatRoomReadByUserParams{
		ID:         roomID,
		LastReadID: messageID,
	})
}

func (s *chatStore) MarkReadByAcademy(ctx context.Context, roomID, messageID int64) error {
	return s.queries.MarkChatRoomReadByAcademy(ctx, sqlc.MarkChatRoomReadByAcademyParams{
		ID:         roomID,
		LastReadID: messageID,
	})
}

func toChatRoomModel(row sqlc.ChatRoom) *model.ChatRoom {
	return &model.ChatRoom{
		ID:                row.ID,
		AcademyID:         row.AcademyID,
		UserID:            row.UserID,
		UserLastReadID:    row.UserLastReadID,
		AcademyLastReadID: row.AcademyLastReadID,
		LastMessageAt:     timePtr(row.LastMessageAt),
		CreatedAt:         row.CreatedAt.Time,
	}
}

func toChatMessageModel(row sqlc.ChatMessage) *model.ChatMessage {
	return &model.ChatMessage{
		ID:        row.ID,
		RoomID:    row.RoomID,
		SenderID:  row.SenderID,
		Body:      row.Body,
		CreatedAt: row.CreatedAt.Time,
	}
}
