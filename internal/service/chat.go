package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"academyhub.app/server/common/id"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/realtime"
	"academyhub.app/server/internal/store"
)

// ChatBroker fans sent messages out to live subscribers of a room.
type ChatBroker interface {
	Publish(ctx context.Context, msg model.ChatMessage) error
	Subscribe(ctx context.Context, roomID int64) (realtime.Subscription, error)
}

type ChatService interface {
	OpenRoom(ctx context.Context, userID, academyID int64) (*model.ChatRoom, error)
	ListRooms(ctx context.Context, viewerID int64) ([]model.ChatRoom, error)
	Messages(ctx context.Context, viewerID, roomID int64, before *int64, limit int32) ([]model.ChatMessage, error)
	Send(ctx context.Context, senderID, roomID int64, body string) (*model.ChatMessage, error)
	MarkRead(ctx context.Context, viewerID, roomID int64) error
	Subscribe(ctx context.Context, viewerID, roomID int64) (realtime.Subscription, error)
}

type chatService struct {
	txRunner     TxRunner
	academyStore store.AcademyStore
	memberStore  store.MemberStore
	chatStore    store.ChatStore
	broker       ChatBroker
	now          func() time.Time
}

func NewChatService(
	txRunner TxRunner,
	academyStore store.AcademyStore,
	memberStore store.MemberStore,
	chatStore store.ChatStore,
	broker ChatBroker,
) ChatService {
	return &chatService{
		txRunner:     txRunner,
		academyStore: academyStore,
		memberStore:  memberStore,
		chatStore:    chatStore,
		broker:       broker,
		now:          time.Now,
	}
}

func (s *chatService) OpenRoom(ctx context.Context, userID, academyID int64) (*model.ChatRoom, error) {
	if _, err := s.academyStore.GetByID(ctx, academyID); err != nil {
		return nil, notFound(err, "academy")
	}

	room, err := s.chatStore.GetOrCreateRoom(ctx, id.New(), academyID, userID)
	if err != nil {
		return nil, fmt.Errorf("opening chat room: %w", err)
	}
	return room, nil
}

func (s *chatService) ListRooms(ctx context.Context, viewerID int64) ([]model.ChatRoom, error) {
	return s.chatStore.ListRoomsForViewer(ctx, viewerID)
}

func (s *chatService) Messages(ctx context.Context, viewerID, roomID int64, before *int64, limit int32) ([]model.ChatMessage, error) {
	if _, _, err := s.authorize(ctx, viewerID, roomID); err != nil {
		return nil, err
	}
	limit, _ = Page(limit, 0)
	return s.chatStore.ListMessages(ctx, roomID, before, limit)
}

func (s *chatService) Send(ctx context.Context, senderID, roomID int64, body string) (*model.ChatMessage, error) {
	body, err := requireText("body", body, model.MaxChatMessageLength)
	if err != nil {
		return nil, err
	}

	_, asUser, err := s.authorize(ctx, senderID, roomID)
	if err != nil {
		return nil, err
	}

	msg := &model.ChatMessage{
		ID:       id.New(),
		RoomID:   roomID,
		SenderID: senderID,
		Body:     body,
	}

	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		chat := sp.Chat()
		if err := chat.CreateMessage(ctx, msg); err != nil {
			return fmt.Errorf("creating message: %w", err)
		}
		if err := chat.TouchRoom(ctx, roomID, s.now()); err != nil {
			return fmt.Errorf("touching room: %w", err)
		}
		// The sender has read everything up to their own message.
		if asUser {
			return chat.MarkReadByUser(ctx, roomID, msg.ID)
		}
		return chat.MarkReadByAcademy(ctx, roomID, msg.ID)
	})
	if err != nil {
		return nil, err
	}

	if err := s.broker.Publish(ctx, *msg); err != nil {
		slog.WarnContext(ctx, "failed to publish chat message",
			"error", err,
			"room_id", roomID,
			"message_id", msg.ID)
	}

	return msg, nil
}

func (s *chatService) MarkRead(ctx context.Context, viewerID, roomID int64) error {
	_, asUser, err := s.authorize(ctx, viewerID, roomID)
	if err != nil {
		return err
	}

	latest, err := s.chatStore.LatestMessageID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("getting latest message: %w", err)
	}
	if latest == 0 {
		return nil
	}

	if asUser {
		return s.chatStore.MarkReadByUser(ctx, roomID, latest)
	}
	return s.chatStore.MarkReadByAcademy(ctx, roomID, latest)
}

func (s *chatService) Subscribe(ctx context.Context, viewerID, roomID int64) (realtime.Subscription, error) {
	if _, _, err := s.authorize(ctx, viewerID, roomID); err != nil {
		return nil, err
	}
	return s.broker.Subscribe(ctx, roomID)
}

// authorize reports which side of the room the viewer is on. The room's user
// wins when they are also a member of the academy.
func (s *chatService) authorize(ctx context.Context, viewerID, roomID int64) (*model.ChatRoom, bool, error) {
	room, err := s.chatStore.GetRoom(ctx, roomID)
	if err != nil {
		return nil, false, notFound(err, "chat room")
	}
	if room.UserID == viewerID {
		return room, true, nil
	}
	if _, err := requirePermission(ctx, s.memberStore, room.AcademyID, viewerID, model.PermissionChat); err != nil {
		return nil, false, err
	}
	return room, false, nil
}
